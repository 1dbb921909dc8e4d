package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	MedspaID string `gorm:"size:36;not null;index" json:"medspa_id"`

	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	// Price in the smallest currency unit (cents), duration in minutes.
	Price    int `gorm:"not null;check:price > 0" json:"price"`
	Duration int `gorm:"not null;check:duration > 0" json:"duration"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		s.ID = id.String()
	}
	return nil
}
