package models

import "time"

type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	MedspaID string  `gorm:"size:36;index" json:"medspa_id"`
	UserID   *string `gorm:"size:36" json:"user_id"`
	Action   string  `gorm:"size:50;not null" json:"action"`

	Entity   string  `gorm:"size:50" json:"entity"`
	EntityID *string `gorm:"size:36" json:"entity_id"`
	Metadata string  `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}
