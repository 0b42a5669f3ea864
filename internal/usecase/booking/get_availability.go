package booking

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

type AvailabilityInput struct {
	Date         string
	TechnicianID *uuid.UUID
	ServiceID    *uuid.UUID
}

type Availability struct {
	Date  string            `json:"date"`
	Slots []domain.TimeSlot `json:"slots"`
}

type GetAvailability struct {
	repo     domain.Repository
	settings Settings
}

func NewGetAvailability(repo domain.Repository, settings Settings) *GetAvailability {
	return &GetAvailability{repo: repo, settings: settings}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) (*Availability, error) {

	date := strings.TrimSpace(in.Date)
	if date == "" {
		return nil, httperr.ErrBusiness("missing_date")
	}

	loc := uc.settings.loc()
	day, err := timezone.ParseDate(date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	out := &Availability{Date: date, Slots: []domain.TimeSlot{}}

	// --------------------------------------------------
	// Slot length follows the service when one is picked
	// --------------------------------------------------
	step := uc.settings.step()
	length := step
	if in.ServiceID != nil {
		svc, err := uc.repo.GetService(ctx, *in.ServiceID)
		if errors.Is(err, domain.ErrNotFound) || (err == nil && !svc.IsActive) {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		if err != nil {
			return nil, err
		}
		length = svc.Duration()
	}

	if in.TechnicianID != nil {
		tech, err := uc.repo.GetTechnician(ctx, *in.TechnicianID)
		if errors.Is(err, domain.ErrNotFound) || (err == nil && !tech.IsActive) {
			return nil, httperr.ErrBusiness("technician_not_found")
		}
		if err != nil {
			return nil, err
		}
	}

	wh, err := uc.repo.GetWorkingHours(ctx, int(day.Weekday()))
	if err != nil {
		return nil, err
	}
	if wh == nil || wh.IsClosed {
		return out, nil
	}

	from, to := timezone.DayBounds(day, loc)
	bookings, err := uc.repo.ListActiveBookingsBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	reserved := make([]domain.Reservation, 0, len(bookings))
	for _, b := range bookings {
		reserved = append(reserved, domain.ReservationOf(b))
	}

	out.Slots = domain.ComputeSlots(domain.SlotQuery{
		Day:          day,
		Hours:        wh,
		Step:         step,
		Length:       length,
		MaxPerHour:   uc.settings.MaxBookingsPerHour,
		TechnicianID: in.TechnicianID,
		Reserved:     reserved,
		Now:          uc.settings.now(),
	})

	return out, nil
}
