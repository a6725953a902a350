package viewmodel

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClock splits a 24h "HH:MM" string.
func ParseClock(s string) (hour, minute int, err error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid clock %q", s)
	}

	hour, err = strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid clock %q", s)
	}
	minute, err = strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid clock %q", s)
	}
	return hour, minute, nil
}

// DecimalHour converts "HH:MM" to H + M/60, so "09:30" is 9.5.
func DecimalHour(s string) (float64, error) {
	h, m, err := ParseClock(s)
	if err != nil {
		return 0, err
	}
	return float64(h) + float64(m)/60, nil
}
