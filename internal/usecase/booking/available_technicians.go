package booking

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

// AvailableTechnicians lists the active technicians with no active
// booking starting in the salon-local hour that holds start_at.
type AvailableTechnicians struct {
	repo     domain.Repository
	settings Settings
}

func NewAvailableTechnicians(repo domain.Repository, settings Settings) *AvailableTechnicians {
	return &AvailableTechnicians{repo: repo, settings: settings}
}

func (uc *AvailableTechnicians) Execute(ctx context.Context, startAt string) ([]models.Technician, error) {
	if strings.TrimSpace(startAt) == "" {
		return nil, httperr.ErrBusiness("missing_start_at")
	}

	loc := uc.settings.loc()
	start, err := timezone.ParseTimestamp(startAt, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_start_at")
	}

	techs, err := uc.repo.ListTechnicians(ctx, true)
	if err != nil {
		return nil, err
	}

	hour := timezone.HourStart(start, loc)
	bookings, err := uc.repo.ListActiveBookingsBetween(ctx, hour, hour.Add(time.Hour))
	if err != nil {
		return nil, err
	}

	busy := make(map[uuid.UUID]bool, len(bookings))
	for _, b := range bookings {
		if b.TechnicianID != nil {
			busy[*b.TechnicianID] = true
		}
	}

	out := make([]models.Technician, 0, len(techs))
	for _, t := range techs {
		if !busy[t.ID] {
			out = append(out, t)
		}
	}
	return out, nil
}
