package booking

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

var chicago = timezone.Location("America/Chicago")

func at(hour, min int) time.Time {
	return time.Date(2025, 9, 1, hour, min, 0, 0, chicago)
}

func starts(slots []TimeSlot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Start[11:16])
	}
	return out
}

func weekday() *models.WorkingHours {
	return &models.WorkingHours{Weekday: 1, Open: "09:00", Close: "13:00"}
}

func TestComputeSlotsHourly(t *testing.T) {
	slots := ComputeSlots(SlotQuery{
		Day:        at(0, 0),
		Hours:      weekday(),
		Step:       time.Hour,
		MaxPerHour: 5,
	})

	assert.Equal(t, []string{"09:00", "10:00", "11:00", "12:00"}, starts(slots))
	assert.Equal(t, "2025-09-01T09:00:00", slots[0].Start)
	assert.Equal(t, "2025-09-01T10:00:00", slots[0].End)
}

func TestComputeSlotsLengthMustFitBeforeClose(t *testing.T) {
	slots := ComputeSlots(SlotQuery{
		Day:        at(0, 0),
		Hours:      weekday(),
		Step:       time.Hour,
		Length:     90 * time.Minute,
		MaxPerHour: 5,
	})

	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, starts(slots))
	assert.Equal(t, "2025-09-01T12:30:00", slots[2].End)
}

func TestComputeSlotsClosedDay(t *testing.T) {
	closed := &models.WorkingHours{Weekday: 0, Open: "09:00", Close: "19:00", IsClosed: true}

	assert.Empty(t, ComputeSlots(SlotQuery{Day: at(0, 0), Hours: closed, Step: time.Hour}))
	assert.Empty(t, ComputeSlots(SlotQuery{Day: at(0, 0), Hours: nil, Step: time.Hour}))
	assert.NotNil(t, ComputeSlots(SlotQuery{Day: at(0, 0), Hours: nil, Step: time.Hour}))
}

func TestComputeSlotsCapacityCap(t *testing.T) {
	reserved := []Reservation{
		{Start: at(10, 0), End: at(11, 0)},
		{Start: at(10, 30), End: at(11, 30)},
		{Start: at(11, 0), End: at(12, 0)},
	}

	slots := ComputeSlots(SlotQuery{
		Day:        at(0, 0),
		Hours:      weekday(),
		Step:       time.Hour,
		MaxPerHour: 2,
		Reserved:   reserved,
	})

	assert.Equal(t, []string{"09:00", "11:00", "12:00"}, starts(slots))
}

func TestComputeSlotsTechnicianExclusivity(t *testing.T) {
	anna := uuid.New()
	bea := uuid.New()

	reserved := []Reservation{
		{Start: at(10, 15), End: at(10, 45), TechnicianID: &anna},
		{Start: at(11, 0), End: at(12, 30), TechnicianID: &bea},
	}

	annaSlots := ComputeSlots(SlotQuery{
		Day: at(0, 0), Hours: weekday(), Step: time.Hour, MaxPerHour: 5,
		TechnicianID: &anna, Reserved: reserved,
	})
	assert.Equal(t, []string{"09:00", "11:00", "12:00"}, starts(annaSlots))

	// bea's 11:00 booking runs past noon, so the 12:00 slot overlaps too
	beaSlots := ComputeSlots(SlotQuery{
		Day: at(0, 0), Hours: weekday(), Step: time.Hour, MaxPerHour: 5,
		TechnicianID: &bea, Reserved: reserved,
	})
	assert.Equal(t, []string{"09:00", "10:00"}, starts(beaSlots))
}

func TestComputeSlotsDropsPast(t *testing.T) {
	slots := ComputeSlots(SlotQuery{
		Day:        at(0, 0),
		Hours:      weekday(),
		Step:       time.Hour,
		MaxPerHour: 5,
		Now:        at(10, 5),
	})

	assert.Equal(t, []string{"11:00", "12:00"}, starts(slots))
}

func TestComputeSlotsHalfHourStep(t *testing.T) {
	slots := ComputeSlots(SlotQuery{
		Day:        at(0, 0),
		Hours:      &models.WorkingHours{Open: "09:00", Close: "10:30"},
		Step:       30 * time.Minute,
		Length:     time.Hour,
		MaxPerHour: 5,
	})

	assert.Equal(t, []string{"09:00", "09:30"}, starts(slots))
}

func TestConflictOrder(t *testing.T) {
	tech := uuid.New()
	reserved := []Reservation{{Start: at(10, 0), End: at(11, 0), TechnicianID: &tech}}

	err := Conflict(reserved, chicago, &tech, at(10, 30), at(11, 30), 1)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "hour_fully_booked"))

	err = Conflict(reserved, chicago, &tech, at(10, 30), at(11, 30), 5)
	assert.True(t, httperr.IsBusiness(err, "technician_busy"))

	other := uuid.New()
	assert.NoError(t, Conflict(reserved, chicago, &other, at(10, 30), at(11, 30), 5))
	assert.NoError(t, Conflict(reserved, chicago, nil, at(10, 30), at(11, 30), 5))
}

func TestConflictBucketsInSalonTime(t *testing.T) {
	// 15:10 UTC is 10:10 in Chicago during daylight time
	reserved := []Reservation{{
		Start: time.Date(2025, 9, 1, 15, 10, 0, 0, time.UTC),
		End:   time.Date(2025, 9, 1, 16, 10, 0, 0, time.UTC),
	}}

	err := Conflict(reserved, chicago, nil, at(10, 0), at(11, 0), 1)
	assert.True(t, httperr.IsBusiness(err, "hour_fully_booked"))
	assert.NoError(t, Conflict(reserved, chicago, nil, at(11, 0), at(12, 0), 1))
}

func TestConflictDefaultCap(t *testing.T) {
	var reserved []Reservation
	for i := 0; i < DefaultMaxBookingsPerHour; i++ {
		reserved = append(reserved, Reservation{Start: at(9, 0), End: at(10, 0)})
	}
	err := Conflict(reserved, chicago, nil, at(9, 0), at(10, 0), 0)
	assert.True(t, httperr.IsBusiness(err, "hour_fully_booked"))
}
