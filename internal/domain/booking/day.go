package booking

import "time"

// DayRange is a half-open [Start, End) window over Booking.Date.
type DayRange struct {
	Start time.Time
	End   time.Time
}

func DayOf(t time.Time) DayRange {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return DayRange{Start: start, End: start.AddDate(0, 0, 1)}
}
