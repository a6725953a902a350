package booking

import (
	"context"

	domain "github.com/harramos25/GlamBook/internal/domain/booking"
	"github.com/harramos25/GlamBook/internal/models"
)

// ListDayBookings feeds the admin calendar: every booking on one date.
type ListDayBookings struct {
	repo domain.Repository
}

func NewListDayBookings(repo domain.Repository) *ListDayBookings {
	return &ListDayBookings{repo: repo}
}

func (uc *ListDayBookings) Execute(ctx context.Context, date string) ([]models.Booking, error) {
	day, err := ParseBookingDate(date)
	if err != nil {
		return nil, err
	}
	return uc.repo.ListBookingsForDay(ctx, domain.DayOf(day))
}
