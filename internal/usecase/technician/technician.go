package technician

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	FullName string
	Phone    *string
}

// UpdateInput leaves nil fields untouched. An empty Phone clears it.
type UpdateInput struct {
	FullName *string
	Phone    *string
	IsActive *bool
}

// ======================================================
// USE CASE
// ======================================================

type Manage struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewManage(repo domain.Repository, audit *audit.Dispatcher) *Manage {
	return &Manage{repo: repo, audit: audit}
}

// ListAll is the admin roster: inactive included, active first.
func (uc *Manage) ListAll(ctx context.Context) ([]models.Technician, error) {
	return uc.repo.ListTechnicians(ctx, false)
}

// ListPublic returns active technicians with a name, by name.
func (uc *Manage) ListPublic(ctx context.Context) ([]models.Technician, error) {
	techs, err := uc.repo.ListTechnicians(ctx, true)
	if err != nil {
		return nil, err
	}

	out := make([]models.Technician, 0, len(techs))
	for _, t := range techs {
		if strings.TrimSpace(t.FullName) != "" {
			out = append(out, t)
		}
	}
	return out, nil
}

func (uc *Manage) Create(ctx context.Context, in CreateInput) (*models.Technician, error) {
	name := strings.TrimSpace(in.FullName)
	if name == "" {
		return nil, httperr.ErrBusiness("missing_full_name")
	}

	phone, err := normalizePhone(in.Phone)
	if err != nil {
		return nil, err
	}

	t := &models.Technician{FullName: name, Phone: phone, IsActive: true}
	if err := uc.repo.CreateTechnician(ctx, t); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionTechnicianCreated,
		Entity:   "technician",
		EntityID: &t.ID,
		Metadata: map[string]string{"full_name": t.FullName},
	})

	return t, nil
}

func (uc *Manage) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*models.Technician, error) {
	t, err := uc.repo.GetTechnician(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrBusiness("technician_not_found")
	}
	if err != nil {
		return nil, err
	}

	if in.FullName != nil {
		name := strings.TrimSpace(*in.FullName)
		if name == "" {
			return nil, httperr.ErrBusiness("missing_full_name")
		}
		t.FullName = name
	}
	if in.Phone != nil {
		phone, err := normalizePhone(in.Phone)
		if err != nil {
			return nil, err
		}
		t.Phone = phone
	}
	if in.IsActive != nil {
		t.IsActive = *in.IsActive
	}

	if err := uc.repo.UpdateTechnician(ctx, t); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionTechnicianUpdated,
		Entity:   "technician",
		EntityID: &t.ID,
	})

	return t, nil
}

// Delete removes a technician without bookings. One with booking history
// is deactivated instead so the history keeps its name; deactivated
// reports which happened.
func (uc *Manage) Delete(ctx context.Context, id uuid.UUID) (deactivated bool, err error) {
	err = uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		t, err := tx.GetTechnician(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			return httperr.ErrBusiness("technician_not_found")
		}
		if err != nil {
			return err
		}

		count, err := tx.CountBookingsForTechnician(ctx, id)
		if err != nil {
			return err
		}

		if count == 0 {
			return tx.DeleteTechnician(ctx, id)
		}

		deactivated = true
		t.IsActive = false
		return tx.UpdateTechnician(ctx, t)
	})
	if err != nil {
		return false, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionTechnicianDeleted,
		Entity:   "technician",
		EntityID: &id,
		Metadata: map[string]bool{"deactivated": deactivated},
	})

	return deactivated, nil
}

func normalizePhone(p *string) (*string, error) {
	if p == nil || strings.TrimSpace(*p) == "" {
		return nil, nil
	}
	if !validators.IsPhoneValid(*p) {
		return nil, httperr.ErrBusiness("invalid_phone")
	}
	n := validators.NormalizePhone(*p)
	return &n, nil
}
