package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/harramos25/GlamBook/internal/domain/catalog"
	"github.com/harramos25/GlamBook/internal/models"
)

const pgUniqueViolation = "23505"

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

var _ domain.Repository = (*CatalogGormRepository)(nil)

func (r *CatalogGormRepository) ListServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *CatalogGormRepository) ListStylists(ctx context.Context) ([]models.Stylist, error) {
	var stylists []models.Stylist
	if err := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&stylists).Error; err != nil {
		return nil, err
	}
	return stylists, nil
}

func (r *CatalogGormRepository) CreateService(ctx context.Context, s *models.Service) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *CatalogGormRepository) CreateStylist(
	ctx context.Context,
	user *models.User,
	s *models.Stylist,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			if isUniqueViolation(err) {
				return domain.ErrEmailTaken
			}
			return err
		}

		s.UserID = user.ID
		return tx.Omit("User").Create(s).Error
	})
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
