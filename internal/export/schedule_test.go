package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/BruksfildServices01/salon-booking/internal/dto"
)

func TestWriteDaySchedule(t *testing.T) {
	start := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	amy := "Amy"

	items := []dto.BookingListItem{
		{
			ID: uuid.New(), StartAt: start, EndAt: start.Add(time.Hour), Status: "confirmed",
			ServiceName: "Gel Manicure", CustomerName: "Jane", CustomerPhone: "7156991258", TechnicianName: &amy,
		},
		{
			ID: uuid.New(), StartAt: start.Add(2 * time.Hour), EndAt: start.Add(3 * time.Hour), Status: "cancelled",
			ServiceName: "Pedicure", CustomerName: "Bob", CustomerPhone: "5550001111",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteDaySchedule(&buf, "2025-09-01", items))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheetName}, f.GetSheetList())

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Bookings for 2025-09-01", rows[0][0])
	assert.Equal(t, headers, rows[1])
	assert.Equal(t, []string{"10:00", "11:00", "confirmed", "Gel Manicure", "Jane", "7156991258", "Amy"}, rows[2])
	assert.Equal(t, "cancelled", rows[3][2])
	assert.Equal(t, "Bob", rows[3][4])
}

func TestWriteEmptySchedule(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDaySchedule(&buf, "2025-09-02", nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}
