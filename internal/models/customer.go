package models

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a walk-in client identified by phone number, no login.
type Customer struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FullName string    `gorm:"size:100;not null" json:"full_name"`
	Phone    string    `gorm:"size:20;not null;uniqueIndex" json:"phone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
