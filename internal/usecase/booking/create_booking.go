package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/guard"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/metrics"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/notify"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
	"github.com/BruksfildServices01/salon-booking/internal/validators"
)

const smsTimeout = 10 * time.Second

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ServiceID    uuid.UUID
	TechnicianID *uuid.UUID
	StartAt      string

	FullName string
	Phone    string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     domain.Repository
	guard    *guard.SubmissionGuard
	notifier notify.Notifier
	audit    *audit.Dispatcher
	log      zerolog.Logger
	settings Settings
}

func NewCreateBooking(
	repo domain.Repository,
	guard *guard.SubmissionGuard,
	notifier notify.Notifier,
	audit *audit.Dispatcher,
	log zerolog.Logger,
	settings Settings,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		guard:    guard,
		notifier: notifier,
		audit:    audit,
		log:      log,
		settings: settings,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	b, err := uc.execute(ctx, in)
	if err != nil {
		outcome := "error"
		if code, ok := httperr.Code(err); ok {
			outcome = code
		}
		metrics.IncBooking(outcome)
		return nil, err
	}

	metrics.IncBooking("created")
	return b, nil
}

func (uc *CreateBooking) execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1. Required fields
	// --------------------------------------------------
	fullName := strings.TrimSpace(in.FullName)
	if in.ServiceID == uuid.Nil || strings.TrimSpace(in.StartAt) == "" ||
		fullName == "" || strings.TrimSpace(in.Phone) == "" {
		return nil, httperr.ErrBusiness("missing_fields")
	}
	if !validators.IsPhoneValid(in.Phone) {
		return nil, httperr.ErrBusiness("invalid_phone")
	}
	phone := validators.NormalizePhone(in.Phone)

	// --------------------------------------------------
	// 2. Service
	// --------------------------------------------------
	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if errors.Is(err, domain.ErrNotFound) || (err == nil && !svc.IsActive) {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Interval in the salon time zone
	// --------------------------------------------------
	loc := uc.settings.loc()
	start, err := timezone.ParseTimestamp(in.StartAt, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_start_at")
	}
	start = start.In(loc)
	end := start.Add(svc.Duration())

	if start.Before(uc.settings.now()) {
		return nil, httperr.ErrBusiness("start_in_past")
	}

	// --------------------------------------------------
	// 4. Working hours
	// --------------------------------------------------
	wh, err := uc.repo.GetWorkingHours(ctx, int(start.Weekday()))
	if err != nil {
		return nil, err
	}
	if !domain.IsWithinWorkingHours(wh, start, end) {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	// --------------------------------------------------
	// 5. Technician
	// --------------------------------------------------
	if in.TechnicianID != nil {
		tech, err := uc.repo.GetTechnician(ctx, *in.TechnicianID)
		if errors.Is(err, domain.ErrNotFound) || (err == nil && !tech.IsActive) {
			return nil, httperr.ErrBusiness("technician_not_found")
		}
		if err != nil {
			return nil, err
		}
	}

	// --------------------------------------------------
	// 6. Duplicate submission
	// --------------------------------------------------
	first, err := uc.guard.Acquire(ctx, phone, start)
	if err != nil {
		uc.log.Warn().Err(err).Msg("submission guard unavailable, continuing")
		first = true
	}
	if !first {
		return nil, httperr.ErrBusiness("duplicate_submission")
	}

	// --------------------------------------------------
	// 7. Capacity check and insert, atomically
	// --------------------------------------------------
	var b *models.Booking
	err = uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		from, to := timezone.DayBounds(start, loc)
		if err := tx.LockDay(ctx, from); err != nil {
			return err
		}
		active, err := tx.ListActiveBookingsBetween(ctx, from, to)
		if err != nil {
			return err
		}

		reserved := make([]domain.Reservation, 0, len(active))
		for _, r := range active {
			reserved = append(reserved, domain.ReservationOf(r))
		}
		if err := domain.Conflict(
			reserved, loc, in.TechnicianID, start, end, uc.settings.MaxBookingsPerHour,
		); err != nil {
			return err
		}

		customer, err := tx.GetOrCreateCustomer(ctx, fullName, phone)
		if err != nil {
			return err
		}

		b = &models.Booking{
			ServiceID:    svc.ID,
			TechnicianID: in.TechnicianID,
			CustomerID:   customer.ID,
			StartAt:      start,
			EndAt:        end,
			Status:       string(domain.InitialStatus()),
		}
		if err := tx.CreateBooking(ctx, b); err != nil {
			return err
		}

		b.Service = *svc
		b.Customer = *customer
		return nil
	})
	if err != nil {
		if relErr := uc.guard.Release(ctx, phone, start); relErr != nil {
			uc.log.Warn().Err(relErr).Msg("submission guard release failed")
		}
		return nil, err
	}

	// --------------------------------------------------
	// 8. Texts, best effort
	// --------------------------------------------------
	uc.sendTexts(ctx, b, fullName, start)

	// --------------------------------------------------
	// 9. Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionBookingCreated,
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{
			"service_id":    svc.ID,
			"technician_id": in.TechnicianID,
			"start_at":      start.UTC(),
		},
	})

	return b, nil
}

func (uc *CreateBooking) sendTexts(ctx context.Context, b *models.Booking, fullName string, start time.Time) {
	if uc.notifier == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), smsTimeout)
	defer cancel()

	err := uc.notifier.Send(ctx, b.Customer.Phone, notify.Confirmation(uc.settings.Business, b.Service.Name, start))
	metrics.IncSMS("confirmation", err)
	if err != nil {
		uc.log.Warn().Err(err).Str("booking_id", b.ID.String()).Msg("confirmation sms failed")
	}

	if uc.settings.AdminPhone == "" {
		return
	}
	err = uc.notifier.Send(ctx, uc.settings.AdminPhone, notify.AdminNotice(fullName, b.Customer.Phone, b.Service.Name, start))
	metrics.IncSMS("admin_notice", err)
	if err != nil {
		uc.log.Warn().Err(err).Str("booking_id", b.ID.String()).Msg("admin sms failed")
	}
}
