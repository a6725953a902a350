package frontend

import (
	"strings"
	"time"
)

type SlotGroup struct {
	Label string
	Times []string
}

// The offered times are fixed; they do not reflect stylist availability or
// existing bookings.
var slotGroups = []SlotGroup{
	{Label: "Morning", Times: []string{"09:00", "09:30", "10:00", "11:00", "11:30"}},
	{Label: "Afternoon", Times: []string{"12:00", "13:30", "14:00", "14:30", "15:00", "16:30"}},
	{Label: "Evening", Times: []string{"17:00", "17:30", "18:00", "19:00"}},
}

func TimeSlots() []SlotGroup {
	out := make([]SlotGroup, len(slotGroups))
	for i, g := range slotGroups {
		out[i] = SlotGroup{Label: g.Label, Times: append([]string(nil), g.Times...)}
	}
	return out
}

func IsOfferedSlot(clock string) bool {
	for _, g := range slotGroups {
		for _, t := range g.Times {
			if t == clock {
				return true
			}
		}
	}
	return false
}

type Day struct {
	Date      time.Time
	DayName   string // "MON"
	DayNumber int
}

const BookingWindowDays = 14

// NextDays lists n consecutive calendar days starting with the day of now,
// each at local midnight.
func NextDays(now time.Time, n int) []Day {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	out := make([]Day, 0, n)
	for i := 0; i < n; i++ {
		d := start.AddDate(0, 0, i)
		out = append(out, Day{
			Date:      d,
			DayName:   strings.ToUpper(d.Format("Mon")),
			DayNumber: d.Day(),
		})
	}
	return out
}
