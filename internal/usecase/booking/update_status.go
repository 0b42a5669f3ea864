package booking

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type UpdateBookingStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateBookingStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateBookingStatus {
	return &UpdateBookingStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	id uuid.UUID,
	status string,
) (*models.Booking, error) {

	to, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	var (
		b    *models.Booking
		from domain.Status
	)
	err = uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		var err error
		b, err = tx.GetBooking(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			return httperr.ErrBusiness("booking_not_found")
		}
		if err != nil {
			return err
		}

		from = domain.Status(b.Status)
		if err := domain.CanTransition(from, to); err != nil {
			return err
		}
		if from == to {
			return nil
		}

		if err := tx.UpdateBookingStatus(ctx, id, to); err != nil {
			return err
		}
		b.Status = string(to)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if from != to {
		uc.audit.Dispatch(audit.Event{
			Action:   audit.ActionBookingStatusChanged,
			Entity:   "booking",
			EntityID: &b.ID,
			Metadata: map[string]string{"from": string(from), "to": string(to)},
		})
	}

	return b, nil
}
