package frontend

import (
	"context"
	"time"

	"github.com/harramos25/GlamBook/internal/dto"
)

// Console is the admin dashboard: KPIs, the full booking list and one day
// of the stylist timeline.
type Console struct {
	port ConsolePort

	Stats    Loadable[*dto.DashboardStats]
	Bookings Loadable[[]dto.BookingListDTO]
	Calendar Loadable[*dto.CalendarDay]
}

func NewConsole(port ConsolePort) *Console {
	return &Console{port: port}
}

func (c *Console) Refresh(ctx context.Context) {
	c.Stats.Load(ctx, "dashboard stats", c.port.FetchStats)
	c.Bookings.Load(ctx, "bookings", c.port.FetchBookings)
}

// ShowDay loads the timeline for the calendar day of day.
func (c *Console) ShowDay(ctx context.Context, day time.Time) {
	date := day.Format("2006-01-02")
	c.Calendar.Load(ctx, "calendar "+date, func(ctx context.Context) (*dto.CalendarDay, error) {
		return c.port.FetchCalendar(ctx, date)
	})
}

// BookingsOn filters the loaded list to one calendar day, compared in UTC
// like the stored dates.
func (c *Console) BookingsOn(day time.Time) []dto.BookingListDTO {
	y, m, d := day.Date()
	out := []dto.BookingListDTO{}
	for _, b := range c.Bookings.Data {
		by, bm, bd := b.Date.UTC().Date()
		if by == y && bm == m && bd == d {
			out = append(out, b)
		}
	}
	return out
}
