package viewmodel

import (
	"strings"

	"github.com/harramos25/GlamBook/internal/models"
)

const AnyStylistID = "any"

type StylistCard struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Image       string   `json:"image"`
	Specialties []string `json:"specialties"`
}

// SplitSpecialties splits the stored comma-joined text. Entries are kept as
// written; an empty string gives an empty list.
func SplitSpecialties(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}

func NewStylistCard(st models.Stylist) StylistCard {
	return StylistCard{
		ID:          st.ID,
		Name:        st.Name,
		Role:        st.RoleTitle,
		Rating:      st.Rating,
		Reviews:     st.Reviews,
		Image:       st.Image,
		Specialties: SplitSpecialties(st.Specialties),
	}
}

// AnyStylist is the "first available" choice offered by the wizard. It only
// exists on the selection screen.
func AnyStylist() StylistCard {
	return StylistCard{
		ID:          AnyStylistID,
		Name:        "Any Stylist",
		Role:        "First Available",
		Rating:      5.0,
		Reviews:     999,
		Image:       "",
		Specialties: []string{"Fastest Service"},
	}
}

// WithAnyStylist returns the selection list: the sentinel first, then one
// card per fetched stylist.
func WithAnyStylist(stylists []models.Stylist) []StylistCard {
	out := make([]StylistCard, 0, len(stylists)+1)
	out = append(out, AnyStylist())
	for _, st := range stylists {
		out = append(out, NewStylistCard(st))
	}
	return out
}
