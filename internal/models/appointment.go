package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment ids are UUIDv7: lexicographic order follows creation order,
// which the cursor pagination relies on.
type Appointment struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	MedspaID string `gorm:"size:36;not null;index" json:"medspa_id"`

	StartTime time.Time `gorm:"not null;index" json:"start_time"`

	Status string `gorm:"size:20;not null;default:'scheduled';check:status IN ('scheduled','completed','canceled')" json:"status"`

	// Frozen at creation time: later edits to a service never rewrite
	// past appointments.
	TotalPrice    int `gorm:"not null" json:"total_price"`
	TotalDuration int `gorm:"not null" json:"total_duration"`

	Services []Service `gorm:"many2many:appointment_services;constraint:OnDelete:CASCADE" json:"services"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		a.ID = id.String()
	}
	return nil
}

// EndTime is the exclusive end of the appointment's interval.
func (a *Appointment) EndTime() time.Time {
	return a.StartTime.Add(time.Duration(a.TotalDuration) * time.Minute)
}
