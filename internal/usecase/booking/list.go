package booking

import (
	"context"

	domain "github.com/harramos25/GlamBook/internal/domain/booking"
	"github.com/harramos25/GlamBook/internal/dto"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

func (uc *ListBookings) Execute(ctx context.Context) ([]dto.BookingListDTO, error) {
	bookings, err := uc.repo.ListBookings(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewBookingList(bookings), nil
}
