package booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

const DefaultMaxBookingsPerHour = 5

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Reservation is the part of an active booking that occupies capacity.
type Reservation struct {
	Start        time.Time
	End          time.Time
	TechnicianID *uuid.UUID
}

func ReservationOf(b models.Booking) Reservation {
	return Reservation{Start: b.StartAt, End: b.EndAt, TechnicianID: b.TechnicianID}
}

// SlotQuery carries everything the calculator needs for one local day.
type SlotQuery struct {
	Day          time.Time // any instant on the local date, in the salon location
	Hours        *models.WorkingHours
	Step         time.Duration
	Length       time.Duration // zero means Step
	MaxPerHour   int
	TechnicianID *uuid.UUID
	Reserved     []Reservation
	Now          time.Time // slots starting before Now are dropped; zero disables
}

// Conflict applies the capacity and exclusivity rules to [start,end).
// The starting hour may hold fewer than maxPerHour reservations, and the
// technician, when given, must neither have a reservation in that hour
// nor one overlapping the interval.
func Conflict(
	reserved []Reservation,
	loc *time.Location,
	technicianID *uuid.UUID,
	start, end time.Time,
	maxPerHour int,
) error {
	if maxPerHour <= 0 {
		maxPerHour = DefaultMaxBookingsPerHour
	}

	hour := timezone.HourStart(start, loc)
	inHour := 0
	techBusy := false

	for _, r := range reserved {
		sameHour := timezone.HourStart(r.Start, loc).Equal(hour)
		if sameHour {
			inHour++
		}

		if technicianID == nil || r.TechnicianID == nil || *r.TechnicianID != *technicianID {
			continue
		}
		if sameHour || (start.Before(r.End) && end.After(r.Start)) {
			techBusy = true
		}
	}

	if inHour >= maxPerHour {
		return httperr.ErrBusiness("hour_fully_booked")
	}
	if techBusy {
		return httperr.ErrBusiness("technician_busy")
	}
	return nil
}

// ComputeSlots walks the day's window in Step increments and keeps the
// slots that fit before closing and pass Conflict.
func ComputeSlots(q SlotQuery) []TimeSlot {
	slots := []TimeSlot{}

	openAt, closeAt, ok := Window(q.Hours, q.Day)
	if !ok || q.Step <= 0 {
		return slots
	}

	length := q.Length
	if length <= 0 {
		length = q.Step
	}
	loc := q.Day.Location()

	for cur := openAt; !cur.Add(length).After(closeAt); cur = cur.Add(q.Step) {
		end := cur.Add(length)

		if !q.Now.IsZero() && cur.Before(q.Now) {
			continue
		}
		if Conflict(q.Reserved, loc, q.TechnicianID, cur, end, q.MaxPerHour) != nil {
			continue
		}

		slots = append(slots, TimeSlot{
			Start: cur.In(loc).Format(timezone.LocalLayout),
			End:   end.In(loc).Format(timezone.LocalLayout),
		})
	}

	return slots
}
