package booking

import (
	"context"
	"errors"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/dto"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
)

type GetBooking struct {
	repo     domain.Repository
	settings Settings
}

func NewGetBooking(repo domain.Repository, settings Settings) *GetBooking {
	return &GetBooking{repo: repo, settings: settings}
}

func (uc *GetBooking) Execute(ctx context.Context, id uuid.UUID) (*dto.BookingDetail, error) {
	b, err := uc.repo.GetBooking(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrBusiness("booking_not_found")
	}
	if err != nil {
		return nil, err
	}

	out := dto.BookingDetailFrom(*b, uc.settings.loc())
	return &out, nil
}
