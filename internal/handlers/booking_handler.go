package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/harramos25/GlamBook/internal/dto"
	"github.com/harramos25/GlamBook/internal/httperr"
	"github.com/harramos25/GlamBook/internal/httpresp"
	"github.com/harramos25/GlamBook/internal/models"
	ucbooking "github.com/harramos25/GlamBook/internal/usecase/booking"
)

type BookingCreator interface {
	Execute(ctx context.Context, in ucbooking.CreateBookingInput) (*models.Booking, error)
}

type BookingLister interface {
	Execute(ctx context.Context) ([]dto.BookingListDTO, error)
}

type BookingHandler struct {
	create BookingCreator
	list   BookingLister
}

func NewBookingHandler(
	create BookingCreator,
	list BookingLister,
) *BookingHandler {
	return &BookingHandler{
		create: create,
		list:   list,
	}
}

// POST /api/bookings
//
// Any failure, including an unreadable body, is a generic 500.
func (h *BookingHandler) Create(c *gin.Context) {
	logger := zerolog.Ctx(c.Request.Context())

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error().Err(err).Msg("create booking: bad body")
		httperr.Internal(c, "", "Error creating booking")
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucbooking.CreateBookingInput{
		UserName:  req.UserName,
		UserEmail: req.UserEmail,
		UserPhone: req.UserPhone,
		ServiceID: req.ServiceID,
		StylistID: req.StylistID,
		Date:      req.Date,
		Time:      req.Time,
		Notes:     req.Notes,
	})
	if err != nil {
		logger.Error().Err(err).Str("email", req.UserEmail).Msg("create booking")
		httperr.Internal(c, "", "Error creating booking")
		return
	}

	httpresp.OK(c, dto.CreateBookingResponse{
		Success: true,
		Booking: *b,
	})
}

// GET /api/bookings
func (h *BookingHandler) List(c *gin.Context) {
	list, err := h.list.Execute(c.Request.Context())
	if err != nil {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("list bookings")
		httperr.Internal(c, "", "Error fetching bookings")
		return
	}
	httpresp.List(c, list)
}
