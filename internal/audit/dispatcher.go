package audit

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	ActionBookingCreated       = "booking_created"
	ActionBookingStatusChanged = "booking_status_changed"
	ActionTechnicianCreated    = "technician_created"
	ActionTechnicianUpdated    = "technician_updated"
	ActionTechnicianDeleted    = "technician_deleted"
	ActionWorkingHoursSaved    = "working_hours_saved"
	ActionReminderSent         = "reminder_sent"
)

type Event struct {
	Action   string
	Entity   string
	EntityID *uuid.UUID
	Metadata any
}

// Dispatcher writes audit events from a single background worker so the
// request path never waits on them. A nil Dispatcher drops everything.
type Dispatcher struct {
	logger *Logger
	log    zerolog.Logger
	queue  chan Event
	done   chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(logger *Logger, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		log:    log.With().Str("component", "audit").Logger(),
		queue:  make(chan Event, 100),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		if err := d.logger.Log(
			context.Background(),
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.log.Error().Err(err).Str("action", ev.Action).Msg("audit write failed")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return
	}

	select {
	case d.queue <- ev:
	default:
		// queue full, the API never blocks on audit
		d.log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}

// Close stops accepting events and waits for the queued ones to be written.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	<-d.done
}
