package booking

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/metrics"
	"github.com/BruksfildServices01/salon-booking/internal/notify"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

// SendReminders texts every confirmed booking of the next salon-local day
// that was not reminded yet. A failed text leaves the booking unstamped
// so the next run retries it.
type SendReminders struct {
	repo     domain.Repository
	notifier notify.Notifier
	audit    *audit.Dispatcher
	log      zerolog.Logger
	settings Settings
}

func NewSendReminders(
	repo domain.Repository,
	notifier notify.Notifier,
	audit *audit.Dispatcher,
	log zerolog.Logger,
	settings Settings,
) *SendReminders {
	return &SendReminders{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
		log:      log,
		settings: settings,
	}
}

// Execute returns how many reminders went out.
func (uc *SendReminders) Execute(ctx context.Context) (int, error) {
	loc := uc.settings.loc()
	now := uc.settings.now()
	from, to := timezone.DayBounds(now.AddDate(0, 0, 1), loc)

	due, err := uc.repo.ListRemindersDue(ctx, from, to)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, b := range due {
		if err := ctx.Err(); err != nil {
			return sent, err
		}

		msg := notify.Reminder(uc.settings.Business, b.Service.Name, b.StartAt.In(loc))
		err := uc.notifier.Send(ctx, b.Customer.Phone, msg)
		metrics.IncSMS("reminder", err)
		if err != nil {
			uc.log.Warn().Err(err).Str("booking_id", b.ID.String()).Msg("reminder sms failed")
			continue
		}

		if err := uc.repo.MarkReminderSent(ctx, b.ID, uc.settings.now()); err != nil {
			return sent, err
		}
		sent++

		id := b.ID
		uc.audit.Dispatch(audit.Event{
			Action:   audit.ActionReminderSent,
			Entity:   "booking",
			EntityID: &id,
		})
	}

	return sent, nil
}
