// Package seed loads the starting catalog, staff and admin account.
package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/harramos25/GlamBook/internal/models"
)

// Run is idempotent: rows that already exist (by primary key or email) are
// left untouched.
func Run(ctx context.Context, db *gorm.DB, adminEmail, adminPassword string) error {
	admin, err := NewAdmin(adminEmail, adminPassword)
	if err != nil {
		return err
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		skip := clause.OnConflict{DoNothing: true}

		for _, s := range Services() {
			s := s
			if err := tx.Clauses(skip).Create(&s).Error; err != nil {
				return fmt.Errorf("seed service %s: %w", s.ID, err)
			}
		}

		for _, m := range Staff() {
			m := m
			if err := tx.Clauses(skip).Create(&m.User).Error; err != nil {
				return fmt.Errorf("seed user %s: %w", m.User.Email, err)
			}
			if err := tx.Clauses(skip).Omit("User").Create(&m.Stylist).Error; err != nil {
				return fmt.Errorf("seed stylist %s: %w", m.Stylist.ID, err)
			}
		}

		if err := tx.Clauses(skip).Create(admin).Error; err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}

		log.Info().
			Int("services", len(Services())).
			Int("stylists", len(Staff())).
			Str("admin", admin.Email).
			Msg("seed applied")
		return nil
	})
}

// NewAdmin stores the email lower-cased, as login looks it up.
func NewAdmin(email, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return &models.User{
		ID:           "u-admin",
		Email:        strings.ToLower(strings.TrimSpace(email)),
		Name:         "Boss Admin",
		Role:         models.RoleAdmin,
		PasswordHash: string(hash),
	}, nil
}
