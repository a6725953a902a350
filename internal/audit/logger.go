package audit

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	"github.com/harramos25/GlamBook/internal/models"
)

// Logger persists events into audit_logs.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

var _ Sink = (*Logger)(nil)

func (l *Logger) Write(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	row := models.AuditLog{
		UserID:   ev.UserID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: metaJSON,
	}
	if !ev.At.IsZero() {
		row.CreatedAt = ev.At
	}

	return l.db.WithContext(ctx).Create(&row).Error
}
