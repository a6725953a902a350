// Package frontend holds the client-side logic of the booking wizard and the
// admin console, decoupled from any rendering through DataPort.
package frontend

import (
	"context"

	"github.com/harramos25/GlamBook/internal/dto"
	"github.com/harramos25/GlamBook/internal/models"
)

// DataPort is what the booking wizard needs from the API.
// apiclient.Client implements it over HTTP; tests use in-memory fakes.
type DataPort interface {
	FetchCatalog(ctx context.Context) ([]models.Service, error)
	FetchStaff(ctx context.Context) ([]models.Stylist, error)
	SubmitBooking(ctx context.Context, req dto.CreateBookingRequest) (*models.Booking, error)
}

// ConsolePort is what the admin console needs. FetchCalendar is an admin
// route, so the implementation must carry a token.
type ConsolePort interface {
	FetchStats(ctx context.Context) (*dto.DashboardStats, error)
	FetchBookings(ctx context.Context) ([]dto.BookingListDTO, error)
	FetchCalendar(ctx context.Context, date string) (*dto.CalendarDay, error)
}
