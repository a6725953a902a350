package booking

import (
	"context"

	"github.com/harramos25/GlamBook/internal/models"
)

type Repository interface {
	// -------- User --------
	FindUserByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	CreateUser(
		ctx context.Context,
		user *models.User,
	) error

	// -------- Booking --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// ListBookings preloads User, Stylist and Service, oldest date first.
	ListBookings(
		ctx context.Context,
	) ([]models.Booking, error)

	// ListRecentBookings preloads User, Stylist and Service, newest date first.
	ListRecentBookings(
		ctx context.Context,
		limit int,
	) ([]models.Booking, error)

	ListBookingsForDay(
		ctx context.Context,
		day DayRange,
	) ([]models.Booking, error)

	// -------- Stats --------
	CountBookings(ctx context.Context) (int64, error)
	CountUsers(ctx context.Context) (int64, error)

	// SumBookedRevenue adds the service price of every booking, whatever its status.
	SumBookedRevenue(ctx context.Context) (float64, error)
}
