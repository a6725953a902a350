package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/harramos25/GlamBook/internal/dto"
	"github.com/harramos25/GlamBook/internal/httpresp"
	"github.com/harramos25/GlamBook/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogLister interface {
	List(ctx context.Context, action string, page, limit int) ([]models.AuditLog, int64, error)
}

type AuditLogsHandler struct {
	logs AuditLogLister
}

func NewAuditLogsHandler(logs AuditLogLister) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs}
}

// GET /api/admin/audit-logs?action=&page=&limit=
func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	logs, total, err := h.logs.List(c.Request.Context(), c.Query("action"), page, limit)
	if err != nil {
		writeAdminError(c, err, "audit_list_failed")
		return
	}

	out := make([]dto.AuditLogDTO, 0, len(logs))
	for _, l := range logs {
		item := dto.AuditLogDTO{
			ID:        l.ID,
			Action:    l.Action,
			Entity:    l.Entity,
			Metadata:  l.Metadata,
			CreatedAt: l.CreatedAt.UTC().Format(time.RFC3339),
		}
		if l.UserID != nil {
			item.UserID = *l.UserID
		}
		if l.EntityID != nil {
			item.EntityID = *l.EntityID
		}
		out = append(out, item)
	}

	httpresp.Page(c, page, limit, total, out)
}
