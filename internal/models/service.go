package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID          string  `gorm:"primaryKey;size:36" json:"id"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	Category    string  `gorm:"size:50;index" json:"category"`
	Price       float64 `gorm:"not null;check:price >= 0" json:"price"`
	Duration    int     `gorm:"not null;check:duration > 0" json:"duration"` // minutes
	Description string  `gorm:"type:text" json:"description"`
	Image       string  `gorm:"size:500" json:"image"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
