package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/BruksfildServices01/salon-booking/internal/dto"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

func TestAdminBookingsByDate(t *testing.T) {
	s := newTestServer(t)
	first := s.book(t, 9, "7156991201")
	s.book(t, 11, "7156991202")

	w := s.do(t, http.MethodGet, "/api/admin/bookings?date=2025-09-01", nil)
	require.Equal(t, http.StatusOK, w.Code)

	out := decode[httpresp.ItemsResponse[dto.BookingListItem]](t, w)
	assert.True(t, out.OK)
	require.Len(t, out.Items, 2)
	assert.Equal(t, first, out.Items[0].ID.String())
	assert.Equal(t, "Gel Manicure", out.Items[0].ServiceName)
	assert.Equal(t, "7156991201", out.Items[0].CustomerPhone)

	w = s.do(t, http.MethodGet, "/api/admin/bookings?date=2025-09-02", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[httpresp.ItemsResponse[dto.BookingListItem]](t, w).Items)

	w = s.do(t, http.MethodGet, "/api/admin/bookings?date=09/01/2025", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_date", decode[errorBody](t, w).Code)
}

func TestAdminExport(t *testing.T) {
	s := newTestServer(t)
	s.book(t, 10, "7156991201")

	w := s.do(t, http.MethodGet, "/api/admin/bookings/export?date=2025-09-01", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "bookings-2025-09-01.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Schedule")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Gel Manicure", rows[2][3])
}

func TestAdminUpdateStatus(t *testing.T) {
	s := newTestServer(t)
	id := s.book(t, 10, "7156991201")

	w := s.do(t, http.MethodPatch, "/api/admin/bookings/"+id+"/status", map[string]string{"status": "cancelled"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	out := decode[map[string]any](t, w)
	assert.Equal(t, true, out["ok"])
	assert.Equal(t, "cancelled", out["status"])

	// cancelled is terminal
	w = s.do(t, http.MethodPatch, "/api/admin/bookings/"+id+"/status", map[string]string{"status": "confirmed"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_transition", decode[errorBody](t, w).Code)

	w = s.do(t, http.MethodPatch, "/api/admin/bookings/"+id+"/status", map[string]string{"status": "gone"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_status", decode[errorBody](t, w).Code)

	w = s.do(t, http.MethodPatch, "/api/admin/bookings/"+id+"/status", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_status", decode[errorBody](t, w).Code)

	w = s.do(t, http.MethodPatch, "/api/admin/bookings/"+uuid.NewString()+"/status", map[string]string{"status": "cancelled"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminTechnicians(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/admin/technicians", map[string]any{"full_name": "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "missing_full_name", decode[errorBody](t, w).Code)

	w = s.do(t, http.MethodPost, "/api/admin/technicians", map[string]any{"full_name": "Amy", "phone": "12"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_phone", decode[errorBody](t, w).Code)

	w = s.do(t, http.MethodPost, "/api/admin/technicians", map[string]any{"full_name": "Amy", "phone": "(715) 699-1258"})
	require.Equal(t, http.StatusCreated, w.Code)
	amy := decode[struct {
		Item models.Technician `json:"item"`
	}](t, w).Item
	assert.True(t, amy.IsActive)
	require.NotNil(t, amy.Phone)
	assert.Equal(t, "7156991258", *amy.Phone)

	inactive := false
	w = s.do(t, http.MethodPatch, "/api/admin/technicians/"+amy.ID.String(), map[string]any{"is_active": inactive})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[struct {
		Item models.Technician `json:"item"`
	}](t, w).Item
	assert.False(t, updated.IsActive)
	assert.Equal(t, "Amy", updated.FullName)

	w = s.do(t, http.MethodGet, "/api/admin/technicians", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[httpresp.ItemsResponse[models.Technician]](t, w).Items, 1)

	w = s.do(t, http.MethodDelete, "/api/admin/technicians/"+amy.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode[map[string]any](t, w)["deactivated"])

	w = s.do(t, http.MethodDelete, "/api/admin/technicians/"+amy.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "technician_not_found", decode[errorBody](t, w).Code)

	w = s.do(t, http.MethodPatch, "/api/admin/technicians/bad", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminDeleteTechnicianWithBookingsDeactivates(t *testing.T) {
	s := newTestServer(t)

	tech := models.Technician{FullName: "Bea", IsActive: true}
	require.NoError(t, s.repo.CreateTechnician(context.Background(), &tech))

	w := s.do(t, http.MethodPost, "/api/bookings", map[string]any{
		"service_id":    s.service.ID.String(),
		"technician_id": tech.ID.String(),
		"start_at":      "2025-09-01T10:00:00-05:00",
		"customer":      map[string]string{"full_name": "Jane", "phone": "7156991258"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(t, http.MethodDelete, "/api/admin/technicians/"+tech.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode[map[string]any](t, w)["deactivated"])

	got, err := s.repo.GetTechnician(context.Background(), tech.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestAdminWorkingHours(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/admin/working-hours", nil)
	require.Equal(t, http.StatusOK, w.Code)
	week := decode[httpresp.ItemsResponse[models.WorkingHours]](t, w).Items
	require.Len(t, week, 7)
	assert.True(t, week[0].IsClosed)

	t.Run("object form", func(t *testing.T) {
		w := s.do(t, http.MethodPut, "/api/admin/working-hours", map[string]any{
			"items": []map[string]any{
				{"weekday": 0, "open": "10:00", "close": "16:00", "is_closed": false},
			},
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		week := decode[httpresp.ItemsResponse[models.WorkingHours]](t, w).Items
		require.Len(t, week, 7)
		assert.False(t, week[0].IsClosed)
		assert.Equal(t, "10:00", week[0].Open)
		assert.Equal(t, "09:00", week[1].Open)
	})

	t.Run("bare array", func(t *testing.T) {
		w := s.do(t, http.MethodPut, "/api/admin/working-hours", `[{"weekday":6,"open":"","close":"","is_closed":true}]`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		week := decode[httpresp.ItemsResponse[models.WorkingHours]](t, w).Items
		assert.True(t, week[6].IsClosed)
	})

	bad := []struct {
		name string
		body any
	}{
		{"empty", map[string]any{"items": []any{}}},
		{"weekday out of range", `[{"weekday":7,"open":"09:00","close":"10:00"}]`},
		{"bad clock", `[{"weekday":1,"open":"9am","close":"10:00"}]`},
		{"inverted", `[{"weekday":1,"open":"18:00","close":"09:00"}]`},
		{"not json", `{`},
	}
	for _, tt := range bad {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, http.MethodPut, "/api/admin/working-hours", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestAdminSession(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/session", nil)
	req.SetBasicAuth("admin", "s3cret")
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	out := decode[map[string]any](t, w)
	assert.Equal(t, "Bearer", out["token_type"])
	assert.NotEmpty(t, out["token"])

	req = httptest.NewRequest(http.MethodPost, "/api/admin/session", nil)
	req.SetBasicAuth("admin", "wrong")
	w = httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, `Basic realm="Admin Area"`, w.Header().Get("WWW-Authenticate"))
}

func TestAdminAuditLogs(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	id := uuid.New()
	require.NoError(t, s.audit.Log(ctx, "booking_created", "booking", &id, map[string]string{"x": "y"}))
	require.NoError(t, s.audit.Log(ctx, "technician_created", "technician", nil, nil))

	w := s.do(t, http.MethodGet, "/api/admin/audit-logs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decode[httpresp.PageResponse[models.AuditLog]](t, w)
	assert.EqualValues(t, 2, page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 50, page.Limit)

	w = s.do(t, http.MethodGet, "/api/admin/audit-logs?action=booking_created&limit=1000", nil)
	require.Equal(t, http.StatusOK, w.Code)
	page = decode[httpresp.PageResponse[models.AuditLog]](t, w)
	assert.EqualValues(t, 1, page.Total)
	assert.Equal(t, 200, page.Limit)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "booking", page.Items[0].Entity)

	w = s.do(t, http.MethodGet, "/api/admin/audit-logs?from=yesterday", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_date", decode[errorBody](t, w).Code)
}
