package booking

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/dto"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

type ListBookingsByDate struct {
	repo     domain.Repository
	settings Settings
}

func NewListBookingsByDate(repo domain.Repository, settings Settings) *ListBookingsByDate {
	return &ListBookingsByDate{repo: repo, settings: settings}
}

// Bookings returns the raw rows of the salon-local day, any status.
func (uc *ListBookingsByDate) Bookings(ctx context.Context, date string) ([]models.Booking, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return nil, httperr.ErrBusiness("missing_date")
	}

	loc := uc.settings.loc()
	day, err := timezone.ParseDate(date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	from, to := timezone.DayBounds(day, loc)
	return uc.repo.ListBookingsBetween(ctx, from, to)
}

func (uc *ListBookingsByDate) Execute(ctx context.Context, date string) ([]dto.BookingListItem, error) {
	bookings, err := uc.Bookings(ctx, date)
	if err != nil {
		return nil, err
	}

	loc := uc.settings.loc()
	out := make([]dto.BookingListItem, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingListItemFrom(b, loc))
	}
	return out, nil
}
