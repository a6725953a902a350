package catalog

import (
	"context"

	"github.com/harramos25/GlamBook/internal/models"
)

type Repository interface {
	ListServices(ctx context.Context) ([]models.Service, error)
	ListStylists(ctx context.Context) ([]models.Stylist, error)

	CreateService(ctx context.Context, s *models.Service) error

	// CreateStylist stores the STYLIST user and its stylist profile together.
	CreateStylist(ctx context.Context, user *models.User, s *models.Stylist) error
}
