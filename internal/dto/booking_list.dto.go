package dto

import (
	"time"

	"github.com/harramos25/GlamBook/internal/models"
)

type BookingUserDTO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type BookingStylistDTO struct {
	Name string `json:"name"`
}

type BookingServiceDTO struct {
	Name     string `json:"name"`
	Duration int    `json:"duration"`
}

type RecentServiceDTO struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// BookingListDTO is a booking row joined with the display fields of its
// user, stylist and service.
type BookingListDTO struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	StylistID string    `json:"stylistId"`
	ServiceID string    `json:"serviceId"`
	Date      time.Time `json:"date"`
	Time      string    `json:"time"`
	Notes     *string   `json:"notes"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`

	User    BookingUserDTO    `json:"user"`
	Stylist BookingStylistDTO `json:"stylist"`
	Service BookingServiceDTO `json:"service"`
}

func newBookingListDTO(b models.Booking) BookingListDTO {
	return BookingListDTO{
		ID:        b.ID,
		UserID:    b.UserID,
		StylistID: b.StylistID,
		ServiceID: b.ServiceID,
		Date:      b.Date,
		Time:      b.Time,
		Notes:     b.Notes,
		Status:    b.Status,
		CreatedAt: b.CreatedAt,
		User:      BookingUserDTO{Name: b.User.Name, Email: b.User.Email},
		Stylist:   BookingStylistDTO{Name: b.Stylist.Name},
	}
}

// RecentBookingDTO is the dashboard variant of BookingListDTO.
type RecentBookingDTO struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	StylistID string    `json:"stylistId"`
	ServiceID string    `json:"serviceId"`
	Date      time.Time `json:"date"`
	Time      string    `json:"time"`
	Notes     *string   `json:"notes"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`

	User    BookingUserDTO    `json:"user"`
	Stylist BookingStylistDTO `json:"stylist"`
	Service RecentServiceDTO  `json:"service"`
}

// NewBookingList shapes bookings for GET /bookings: service carries name and duration.
func NewBookingList(bookings []models.Booking) []BookingListDTO {
	out := make([]BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		d := newBookingListDTO(b)
		d.Service = BookingServiceDTO{Name: b.Service.Name, Duration: b.Service.Duration}
		out = append(out, d)
	}
	return out
}

// NewRecentBookings shapes the dashboard feed: service carries name and price.
func NewRecentBookings(bookings []models.Booking) []RecentBookingDTO {
	out := make([]RecentBookingDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, RecentBookingDTO{
			ID:        b.ID,
			UserID:    b.UserID,
			StylistID: b.StylistID,
			ServiceID: b.ServiceID,
			Date:      b.Date,
			Time:      b.Time,
			Notes:     b.Notes,
			Status:    b.Status,
			CreatedAt: b.CreatedAt,
			User:      BookingUserDTO{Name: b.User.Name, Email: b.User.Email},
			Stylist:   BookingStylistDTO{Name: b.Stylist.Name},
			Service:   RecentServiceDTO{Name: b.Service.Name, Price: b.Service.Price},
		})
	}
	return out
}
