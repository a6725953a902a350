package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/harramos25/GlamBook/internal/dto"
	"github.com/harramos25/GlamBook/internal/httperr"
	"github.com/harramos25/GlamBook/internal/httpresp"
	"github.com/harramos25/GlamBook/internal/models"
	"github.com/harramos25/GlamBook/internal/timezone"
	ucbooking "github.com/harramos25/GlamBook/internal/usecase/booking"
	"github.com/harramos25/GlamBook/internal/viewmodel"
)

type DayBookingsLister interface {
	Execute(ctx context.Context, date string) ([]models.Booking, error)
}

type CalendarHandler struct {
	days    DayBookingsLister
	catalog CatalogLister
}

func NewCalendarHandler(days DayBookingsLister, catalog CatalogLister) *CalendarHandler {
	return &CalendarHandler{days: days, catalog: catalog}
}

// GET /api/admin/calendar?date=YYYY-MM-DD
//
// Defaults to today in the salon's timezone.
func (h *CalendarHandler) Day(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = timezone.Now().Format(ucbooking.DateLayout)
	}
	if _, err := ucbooking.ParseBookingDate(date); err != nil {
		httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD")
		return
	}

	ctx := c.Request.Context()

	bookings, err := h.days.Execute(ctx, date)
	if err != nil {
		writeAdminError(c, err, "calendar_failed")
		return
	}

	stylists, err := h.catalog.Stylists(ctx)
	if err != nil {
		writeAdminError(c, err, "calendar_failed")
		return
	}

	rows, skipped := viewmodel.CalendarRows(stylists, bookings)
	if skipped > 0 {
		zerolog.Ctx(ctx).Warn().Int("skipped", skipped).Str("date", date).Msg("calendar bookings not placed")
	}

	httpresp.OK(c, dto.CalendarDay{
		Date:    date,
		Hours:   viewmodel.HourLabels(),
		Rows:    rows,
		Skipped: skipped,
	})
}
