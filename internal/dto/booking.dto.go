package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

// BookingListItem is one row of the admin day schedule.
type BookingListItem struct {
	ID             uuid.UUID `json:"id"`
	StartAt        time.Time `json:"start_at"`
	EndAt          time.Time `json:"end_at"`
	Status         string    `json:"status"`
	ServiceName    string    `json:"service_name"`
	CustomerName   string    `json:"customer_name"`
	CustomerPhone  string    `json:"customer_phone"`
	TechnicianName *string   `json:"technician_name"`
}

type BookingService struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	PriceCents  int64  `json:"price_cents"`
	DurationMin int    `json:"duration_min"`
}

type BookingCustomer struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

type BookingTechnician struct {
	FullName string `json:"full_name"`
}

// BookingDetail is what the confirmation page shows.
type BookingDetail struct {
	ID         uuid.UUID          `json:"id"`
	Status     string             `json:"status"`
	StartAt    time.Time          `json:"start_at"`
	EndAt      time.Time          `json:"end_at"`
	Service    BookingService     `json:"service"`
	Customer   BookingCustomer    `json:"customer"`
	Technician *BookingTechnician `json:"technician"`
}

// BookingListItemFrom expects Service, Customer and Technician preloaded.
// Times are rendered in loc.
func BookingListItemFrom(b models.Booking, loc *time.Location) BookingListItem {
	item := BookingListItem{
		ID:            b.ID,
		StartAt:       b.StartAt.In(loc),
		EndAt:         b.EndAt.In(loc),
		Status:        b.Status,
		ServiceName:   b.Service.Name,
		CustomerName:  b.Customer.FullName,
		CustomerPhone: b.Customer.Phone,
	}
	if b.Technician != nil {
		name := b.Technician.FullName
		item.TechnicianName = &name
	}
	return item
}

func BookingDetailFrom(b models.Booking, loc *time.Location) BookingDetail {
	out := BookingDetail{
		ID:      b.ID,
		Status:  b.Status,
		StartAt: b.StartAt.In(loc),
		EndAt:   b.EndAt.In(loc),
		Service: BookingService{
			Name:        b.Service.Name,
			Category:    b.Service.Category,
			PriceCents:  b.Service.PriceCents,
			DurationMin: b.Service.DurationMin,
		},
		Customer: BookingCustomer{
			FullName: b.Customer.FullName,
			Phone:    b.Customer.Phone,
		},
	}
	if b.Technician != nil {
		out.Technician = &BookingTechnician{FullName: b.Technician.FullName}
	}
	return out
}
