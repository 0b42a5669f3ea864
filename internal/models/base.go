package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ensureID fills an unset primary key before insert.
func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func (s *Service) BeforeCreate(_ *gorm.DB) error {
	ensureID(&s.ID)
	return nil
}

func (t *Technician) BeforeCreate(_ *gorm.DB) error {
	ensureID(&t.ID)
	return nil
}

func (c *Customer) BeforeCreate(_ *gorm.DB) error {
	ensureID(&c.ID)
	return nil
}

func (b *Booking) BeforeCreate(_ *gorm.DB) error {
	ensureID(&b.ID)
	return nil
}
