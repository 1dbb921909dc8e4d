package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a staff account belonging to one medspa.
type User struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	MedspaID string `gorm:"size:36;not null;index" json:"medspa_id"`
	Medspa   Medspa `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	Name         string `gorm:"size:255;not null" json:"name"`
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		u.ID = id.String()
	}
	return nil
}
