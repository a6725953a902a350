package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/harramos25/GlamBook/internal/dto"
	"github.com/harramos25/GlamBook/internal/httperr"
	"github.com/harramos25/GlamBook/internal/httpresp"
)

type StatsProvider interface {
	Execute(ctx context.Context) (*dto.DashboardStats, error)
}

type DashboardHandler struct {
	stats StatsProvider
}

func NewDashboardHandler(stats StatsProvider) *DashboardHandler {
	return &DashboardHandler{stats: stats}
}

// GET /api/dashboard/stats
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.stats.Execute(c.Request.Context())
	if err != nil {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("dashboard stats")
		httperr.Internal(c, "", "Error fetching stats")
		return
	}
	httpresp.OK(c, stats)
}
