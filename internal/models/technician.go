package models

import (
	"time"

	"github.com/google/uuid"
)

type Technician struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FullName string    `gorm:"size:100;not null" json:"full_name"`
	Phone    *string   `gorm:"size:20" json:"phone"`
	IsActive bool      `gorm:"not null;index" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
