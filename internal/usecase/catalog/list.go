package catalog

import (
	"context"

	domain "github.com/harramos25/GlamBook/internal/domain/catalog"
	"github.com/harramos25/GlamBook/internal/models"
)

type ListCatalog struct {
	repo domain.Repository
}

func NewListCatalog(repo domain.Repository) *ListCatalog {
	return &ListCatalog{repo: repo}
}

func (uc *ListCatalog) Services(ctx context.Context) ([]models.Service, error) {
	return uc.repo.ListServices(ctx)
}

func (uc *ListCatalog) Stylists(ctx context.Context) ([]models.Stylist, error) {
	return uc.repo.ListStylists(ctx)
}
