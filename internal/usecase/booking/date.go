package booking

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// ParseBookingDate accepts a calendar date, stored as UTC midnight, or a
// full RFC 3339 timestamp.
func ParseBookingDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid booking date %q", s)
}
