package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/harramos25/GlamBook/internal/httperr"
	"github.com/harramos25/GlamBook/internal/httpresp"
	"github.com/harramos25/GlamBook/internal/models"
)

type CatalogLister interface {
	Services(ctx context.Context) ([]models.Service, error)
	Stylists(ctx context.Context) ([]models.Stylist, error)
}

type CatalogHandler struct {
	catalog CatalogLister
}

func NewCatalogHandler(catalog CatalogLister) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// GET /api/services
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.catalog.Services(c.Request.Context())
	if err != nil {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("list services")
		httperr.Internal(c, "", "Error fetching services")
		return
	}
	httpresp.List(c, services)
}

// GET /api/stylists
func (h *CatalogHandler) ListStylists(c *gin.Context) {
	stylists, err := h.catalog.Stylists(c.Request.Context())
	if err != nil {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("list stylists")
		httperr.Internal(c, "", "Error fetching stylists")
		return
	}
	httpresp.List(c, stylists)
}
