package models

import (
	"time"

	"github.com/google/uuid"
)

// Service is an entry of the salon menu. Rows are maintained through the
// catalog seed file, never over HTTP.
type Service struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Category    string `gorm:"size:50;not null;uniqueIndex:idx_service_category_name" json:"category"`
	Name        string `gorm:"size:100;not null;uniqueIndex:idx_service_category_name" json:"name"`
	PriceCents  int64  `gorm:"not null" json:"price_cents"`
	DurationMin int    `gorm:"not null" json:"duration_min"`
	IsAddon     bool   `gorm:"not null" json:"is_addon"`
	IsActive    bool   `gorm:"not null;index" json:"is_active"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Duration falls back to one hour for rows without a duration.
func (s Service) Duration() time.Duration {
	if s.DurationMin <= 0 {
		return time.Hour
	}
	return time.Duration(s.DurationMin) * time.Minute
}
