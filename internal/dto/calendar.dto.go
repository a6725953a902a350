package dto

import "github.com/harramos25/GlamBook/internal/viewmodel"

// CalendarDay is one day of the admin timeline.
type CalendarDay struct {
	Date    string                  `json:"date"`
	Hours   []int                   `json:"hours"`
	Rows    []viewmodel.CalendarRow `json:"rows"`
	Skipped int                     `json:"skipped"`
}
