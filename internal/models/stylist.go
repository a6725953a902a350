package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Stylist struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"`
	UserID string `gorm:"size:36;uniqueIndex;not null" json:"userId"`
	User   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	Name      string  `gorm:"size:100;not null" json:"name"`
	RoleTitle string  `gorm:"size:100" json:"roleTitle"`
	Image     string  `gorm:"size:500" json:"image"`
	Rating    float64 `json:"rating"`
	Reviews   int     `json:"reviews"`

	// comma-joined, e.g. "Color,Silk Press"
	Specialties string `gorm:"size:255" json:"specialties"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Stylist) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
