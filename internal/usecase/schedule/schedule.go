package schedule

import (
	"context"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/db"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type WorkingHours struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewWorkingHours(repo domain.Repository, audit *audit.Dispatcher) *WorkingHours {
	return &WorkingHours{repo: repo, audit: audit}
}

// Get returns exactly seven rows, Sunday first. Weekdays without a stored
// row get the defaults.
func (uc *WorkingHours) Get(ctx context.Context) ([]models.WorkingHours, error) {
	rows, err := uc.repo.ListWorkingHours(ctx)
	if err != nil {
		return nil, err
	}

	week := db.DefaultWorkingHours()
	for _, r := range rows {
		if r.Weekday >= 0 && r.Weekday < len(week) {
			week[r.Weekday] = r
		}
	}
	return week, nil
}

// Save validates the rows and upserts them on weekday. Weekdays not sent
// keep their current values.
func (uc *WorkingHours) Save(ctx context.Context, rows []models.WorkingHours) ([]models.WorkingHours, error) {
	if err := domain.ValidateWeek(rows); err != nil {
		return nil, err
	}

	defaults := db.DefaultWorkingHours()
	clean := make([]models.WorkingHours, 0, len(rows))
	for _, r := range rows {
		// closed days keep a well-formed window for the next reopening
		if r.IsClosed && (!domain.ValidClock(r.Open) || !domain.ValidClock(r.Close)) {
			r.Open, r.Close = defaults[r.Weekday].Open, defaults[r.Weekday].Close
		}
		clean = append(clean, models.WorkingHours{
			Weekday:  r.Weekday,
			Open:     r.Open,
			Close:    r.Close,
			IsClosed: r.IsClosed,
		})
	}

	if err := uc.repo.UpsertWorkingHours(ctx, clean); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionWorkingHoursSaved,
		Entity:   "working_hours",
		Metadata: clean,
	})

	return uc.Get(ctx)
}
