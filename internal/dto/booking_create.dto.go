package dto

import "github.com/harramos25/GlamBook/internal/models"

// CreateBookingRequest is the wizard's submission body. Field presence is
// checked by the wizard form, not by the endpoint.
type CreateBookingRequest struct {
	UserName  string  `json:"userName"`
	UserEmail string  `json:"userEmail"`
	UserPhone string  `json:"userPhone"`
	ServiceID string  `json:"serviceId"`
	StylistID string  `json:"stylistId"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Notes     *string `json:"notes,omitempty"`
}

type CreateBookingResponse struct {
	Success bool           `json:"success"`
	Booking models.Booking `json:"booking"`
}
