package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/config"
	"github.com/BruksfildServices01/salon-booking/internal/db/dbtest"
	"github.com/BruksfildServices01/salon-booking/internal/infra/repository"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/notify"
	ucBooking "github.com/BruksfildServices01/salon-booking/internal/usecase/booking"
	ucSchedule "github.com/BruksfildServices01/salon-booking/internal/usecase/schedule"
	ucTechnician "github.com/BruksfildServices01/salon-booking/internal/usecase/technician"
	"github.com/BruksfildServices01/salon-booking/internal/validators"
	"github.com/BruksfildServices01/salon-booking/internal/web"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := validators.RegisterBindings(); err != nil {
		panic(err)
	}
}

var chicago = func() *time.Location {
	loc, err := time.LoadLocation("America/Chicago")
	if err != nil {
		panic(err)
	}
	return loc
}()

type recordingNotifier struct {
	mu   sync.Mutex
	sent []string
}

func (n *recordingNotifier) Send(_ context.Context, to, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, to)
	return nil
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}

type testServer struct {
	engine   *gin.Engine
	repo     *repository.BookingGormRepository
	audit    *audit.Logger
	notifier *recordingNotifier
	service  models.Service
}

// newTestServer wires every handler over an in-memory database. The clock
// is fixed at Sunday 2025-08-31 12:00 in Chicago.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db := dbtest.New(t)
	s := &testServer{
		engine:   gin.New(),
		repo:     repository.NewBookingGormRepository(db),
		audit:    audit.New(db),
		notifier: &recordingNotifier{},
	}

	cfg := &config.Config{AdminUser: "admin", AdminPass: "s3cret", JWTSecret: "test-secret"}
	now := time.Date(2025, 8, 31, 12, 0, 0, 0, chicago)
	settings := ucBooking.Settings{
		Location:           chicago,
		SlotMinutes:        60,
		MaxBookingsPerHour: 2,
		Business:           notify.Business{Name: "Lux Spa Nails", Phone: "715-699-1258"},
		Clock:              func() time.Time { return now },
	}

	ctx := context.Background()
	require.NoError(t, s.repo.UpsertServices(ctx, []models.Service{
		{Category: "Manicure", Name: "Gel Manicure", PriceCents: 3500, DurationMin: 60, IsActive: true},
	}))
	services, err := s.repo.ListActiveServices(ctx)
	require.NoError(t, err)
	s.service = services[0]

	listServices := ucBooking.NewListServices(s.repo)
	getBooking := ucBooking.NewGetBooking(s.repo, settings)
	listByDate := ucBooking.NewListBookingsByDate(s.repo, settings)
	techs := ucTechnician.NewManage(s.repo, nil)
	hours := ucSchedule.NewWorkingHours(s.repo, nil)

	public := NewPublicHandler(
		listServices,
		ucBooking.NewGetAvailability(s.repo, settings),
		ucBooking.NewAvailableTechnicians(s.repo, settings),
		ucBooking.NewCreateBooking(s.repo, nil, s.notifier, nil, zerolog.Nop(), settings),
		getBooking,
		techs,
	)
	admin := NewAdminBookingHandler(listByDate, ucBooking.NewUpdateBookingStatus(s.repo, nil))
	technicians := NewTechnicianHandler(techs)
	workingHours := NewWorkingHoursHandler(hours)
	session := NewSessionHandler(cfg)
	auditLogs := NewAuditLogsHandler(s.audit, chicago)
	pages := NewWebHandler(listServices, getBooking, listByDate, techs, hours, settings.Business, chicago)

	r := s.engine
	r.SetHTMLTemplate(web.Templates())

	r.GET("/", pages.Home)
	r.GET("/book", pages.BookPage)
	r.GET("/book/success", pages.SuccessPage)
	r.GET("/admin", pages.AdminDashboard)

	r.GET("/api/services", public.ListServices)
	r.GET("/api/availability", public.Availability)
	r.GET("/api/technicians", public.ListTechnicians)
	r.POST("/api/technicians/available", public.AvailableTechnicians)
	r.POST("/api/bookings", public.CreateBooking)
	r.GET("/api/bookings/:id", public.GetBooking)

	r.POST("/api/admin/session", session.Create)
	r.GET("/api/admin/bookings", admin.List)
	r.GET("/api/admin/bookings/export", admin.Export)
	r.PATCH("/api/admin/bookings/:id/status", admin.UpdateStatus)
	r.GET("/api/admin/technicians", technicians.List)
	r.POST("/api/admin/technicians", technicians.Create)
	r.PATCH("/api/admin/technicians/:id", technicians.Update)
	r.DELETE("/api/admin/technicians/:id", technicians.Delete)
	r.GET("/api/admin/working-hours", workingHours.Get)
	r.PUT("/api/admin/working-hours", workingHours.Update)
	r.GET("/api/admin/audit-logs", auditLogs.List)

	return s
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

type errorBody struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

type createdBody struct {
	OK        bool   `json:"ok"`
	BookingID string `json:"booking_id"`
}

// book creates a booking on Monday 2025-09-01 at hour:00 Chicago time.
func (s *testServer) book(t *testing.T, hour int, phone string) string {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/bookings", map[string]any{
		"service_id": s.service.ID.String(),
		"start_at":   time.Date(2025, 9, 1, hour, 0, 0, 0, chicago).Format(time.RFC3339),
		"customer":   map[string]string{"full_name": "Jane Doe", "phone": phone},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[createdBody](t, w).BookingID
}
