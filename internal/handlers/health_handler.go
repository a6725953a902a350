package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/harramos25/GlamBook/internal/httperr"
)

const healthTimeout = 2 * time.Second

type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("health: database unreachable")
		httperr.Unavailable(c, "database_unavailable", "database unavailable")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// NoRoute answers unknown paths with the JSON error body.
func NoRoute(c *gin.Context) {
	httperr.NotFound(c, "not_found", "route not found")
}
