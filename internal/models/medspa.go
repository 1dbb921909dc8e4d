package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Medspa is the tenant root: deleting one cascades to its services
// and appointments.
type Medspa struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Address     string `gorm:"type:text" json:"address"`
	PhoneNumber string `gorm:"size:50" json:"phone_number"`
	Email       string `gorm:"size:255" json:"email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Services     []Service     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Appointments []Appointment `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (m *Medspa) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		m.ID = id.String()
	}
	return nil
}
