package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/harramos25/GlamBook/internal/models"
)

type AuditLogGormRepository struct {
	db *gorm.DB
}

func NewAuditLogGormRepository(db *gorm.DB) *AuditLogGormRepository {
	return &AuditLogGormRepository{db: db}
}

// List returns one page of audit rows, newest first, plus the total count.
func (r *AuditLogGormRepository) List(
	ctx context.Context,
	action string,
	page int,
	limit int,
) ([]models.AuditLog, int64, error) {

	base := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&models.AuditLog{})
		if action != "" {
			q = q.Where("action = ?", action)
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	if err := base().
		Order("id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
