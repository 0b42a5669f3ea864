package booking

import (
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

// Window places a weekday's hours on day (any instant on the local date).
// ok is false when the salon is closed or the row is unusable.
func Window(wh *models.WorkingHours, day time.Time) (openAt, closeAt time.Time, ok bool) {
	if wh == nil || wh.IsClosed {
		return time.Time{}, time.Time{}, false
	}

	openAt, err := timezone.ClockOn(day, wh.Open)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	closeAt, err = timezone.ClockOn(day, wh.Close)
	if err != nil || !closeAt.After(openAt) {
		return time.Time{}, time.Time{}, false
	}

	return openAt, closeAt, true
}

// IsWithinWorkingHours reports whether [start,end) fits the window of
// start's local day.
func IsWithinWorkingHours(wh *models.WorkingHours, start, end time.Time) bool {
	openAt, closeAt, ok := Window(wh, start)
	if !ok {
		return false
	}
	return !start.Before(openAt) && !end.After(closeAt)
}

// ValidateWeek checks a set of rows before they replace the schedule.
func ValidateWeek(rows []models.WorkingHours) error {
	seen := make(map[int]bool, len(rows))

	for _, r := range rows {
		if r.Weekday < 0 || r.Weekday > 6 || seen[r.Weekday] {
			return httperr.ErrBusiness("invalid_working_hours")
		}
		seen[r.Weekday] = true

		if r.IsClosed {
			continue
		}

		if !ValidClock(r.Open) || !ValidClock(r.Close) || r.Close <= r.Open {
			return httperr.ErrBusiness("invalid_working_hours")
		}
	}

	return nil
}

// ValidClock accepts zero-padded "HH:MM" between 00:00 and 23:59.
func ValidClock(s string) bool {
	if len(s) != 5 {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}
