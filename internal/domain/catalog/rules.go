package catalog

import (
	"strings"

	"github.com/harramos25/GlamBook/internal/httperr"
	"github.com/harramos25/GlamBook/internal/models"
)

// ValidateService enforces the catalog invariants before anything is stored.
func ValidateService(s *models.Service) error {
	if strings.TrimSpace(s.Name) == "" {
		return httperr.ErrBusiness("invalid_name")
	}
	if s.Price < 0 {
		return httperr.ErrBusiness("invalid_price")
	}
	if s.Duration <= 0 {
		return httperr.ErrBusiness("invalid_duration")
	}
	return nil
}

// JoinSpecialties is the write-side counterpart of viewmodel.SplitSpecialties.
func JoinSpecialties(list []string) string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return strings.Join(out, ",")
}
