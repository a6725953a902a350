package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Booking struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	UserID string `gorm:"size:36;index;not null" json:"userId"`
	User   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	StylistID string  `gorm:"size:36;index;not null" json:"stylistId"`
	Stylist   Stylist `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	ServiceID string  `gorm:"size:36;index;not null" json:"serviceId"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	Date   time.Time `gorm:"not null;index" json:"date"`
	Time   string    `gorm:"size:5;not null" json:"time"` // HH:MM
	Notes  *string   `gorm:"type:text" json:"notes"`
	Status string    `gorm:"size:20;not null" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
