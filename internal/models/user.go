package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleClient  = "CLIENT"
	RoleStylist = "STYLIST"
	RoleAdmin   = "ADMIN"
)

type User struct {
	ID    string  `gorm:"primaryKey;size:36" json:"id"`
	Email string  `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Name  string  `gorm:"size:100;not null" json:"name"`
	Phone *string `gorm:"size:30" json:"phone"`
	Role  string  `gorm:"size:20;not null" json:"role"`

	// only admins sign in; clients are created by their first booking
	PasswordHash string `gorm:"size:255" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
