package models

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	ServiceID uuid.UUID `gorm:"type:uuid;not null;index" json:"service_id"`
	Service   Service   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service"`

	TechnicianID *uuid.UUID  `gorm:"type:uuid;index" json:"technician_id"`
	Technician   *Technician `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"technician"`

	CustomerID uuid.UUID `gorm:"type:uuid;not null;index" json:"customer_id"`
	Customer   Customer  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"customer"`

	StartAt time.Time `gorm:"not null;index" json:"start_at"`
	EndAt   time.Time `gorm:"not null" json:"end_at"`

	Status         string     `gorm:"size:20;not null;index" json:"status"`
	ReminderSentAt *time.Time `json:"reminder_sent_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
