package viewmodel

import "github.com/harramos25/GlamBook/internal/models"

// The admin calendar is a 9AM..7PM strip with one column per hour label.
const (
	TimelineStartHour = 9
	TimelineEndHour   = 19
	TimelineColumns   = TimelineEndHour - TimelineStartHour + 1
)

// ColumnWidth is the share of the strip, in percent, taken by one hour.
const ColumnWidth = 100.0 / TimelineColumns

// Placement positions a block on the strip in percent. Values are never
// clamped: early bookings get a negative Left, late ones run past 100.
type Placement struct {
	Left  float64 `json:"left"`
	Width float64 `json:"width"`
}

func Position(startHour float64, durationMinutes int) Placement {
	return Placement{
		Left:  (startHour - TimelineStartHour) * ColumnWidth,
		Width: float64(durationMinutes) / 60 * ColumnWidth,
	}
}

func (p Placement) OffGrid() bool {
	return p.Left < 0 || p.Left+p.Width > 100
}

// HourLabels returns 9..19, one per column.
func HourLabels() []int {
	out := make([]int, 0, TimelineColumns)
	for h := TimelineStartHour; h <= TimelineEndHour; h++ {
		out = append(out, h)
	}
	return out
}

type CalendarBlock struct {
	BookingID   string    `json:"bookingId"`
	ClientName  string    `json:"clientName"`
	ServiceName string    `json:"serviceName"`
	Time        string    `json:"time"`
	StartHour   float64   `json:"startHour"`
	Duration    int       `json:"duration"`
	Position    Placement `json:"position"`
}

// NewCalendarBlock needs the booking's Service and User loaded.
func NewCalendarBlock(b models.Booking) (CalendarBlock, error) {
	start, err := DecimalHour(b.Time)
	if err != nil {
		return CalendarBlock{}, err
	}

	return CalendarBlock{
		BookingID:   b.ID,
		ClientName:  b.User.Name,
		ServiceName: b.Service.Name,
		Time:        b.Time,
		StartHour:   start,
		Duration:    b.Service.Duration,
		Position:    Position(start, b.Service.Duration),
	}, nil
}

type CalendarRow struct {
	StylistID   string          `json:"stylistId"`
	StylistName string          `json:"stylistName"`
	Image       string          `json:"image"`
	Blocks      []CalendarBlock `json:"blocks"`
}

// CalendarRows builds one row per stylist, in stylist order, each holding that
// stylist's bookings. Bookings with an unreadable time are skipped and
// counted.
func CalendarRows(stylists []models.Stylist, bookings []models.Booking) ([]CalendarRow, int) {
	rows := make([]CalendarRow, 0, len(stylists))
	index := make(map[string]int, len(stylists))
	for i, st := range stylists {
		index[st.ID] = i
		rows = append(rows, CalendarRow{
			StylistID:   st.ID,
			StylistName: st.Name,
			Image:       st.Image,
			Blocks:      []CalendarBlock{},
		})
	}

	skipped := 0
	for _, b := range bookings {
		i, ok := index[b.StylistID]
		if !ok {
			skipped++
			continue
		}
		block, err := NewCalendarBlock(b)
		if err != nil {
			skipped++
			continue
		}
		rows[i].Blocks = append(rows[i].Blocks, block)
	}
	return rows, skipped
}
