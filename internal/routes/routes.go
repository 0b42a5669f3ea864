package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/config"
	"github.com/BruksfildServices01/salon-booking/internal/guard"
	"github.com/BruksfildServices01/salon-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-booking/internal/infra/repository"
	"github.com/BruksfildServices01/salon-booking/internal/metrics"
	"github.com/BruksfildServices01/salon-booking/internal/middleware"
	"github.com/BruksfildServices01/salon-booking/internal/notify"
	ucBooking "github.com/BruksfildServices01/salon-booking/internal/usecase/booking"
	ucSchedule "github.com/BruksfildServices01/salon-booking/internal/usecase/schedule"
	ucTechnician "github.com/BruksfildServices01/salon-booking/internal/usecase/technician"
	"github.com/BruksfildServices01/salon-booking/internal/validators"
	"github.com/BruksfildServices01/salon-booking/internal/web"
)

// Deps are the process-wide singletons the routes are built from.
// Guard may be nil when Redis is not configured.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Settings ucBooking.Settings
	Log      zerolog.Logger
	Guard    *guard.SubmissionGuard
	Notifier notify.Notifier
	Audit    *audit.Dispatcher
}

func RegisterRoutes(r *gin.Engine, d Deps) error {
	if err := validators.RegisterBindings(); err != nil {
		return err
	}

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(d.Log),
		metrics.Middleware(),
		middleware.CORSMiddleware(d.Config.AllowedOrigins),
	)
	r.SetHTMLTemplate(web.Templates())
	metrics.Register()

	// ======================================================
	// INFRA
	// ======================================================
	repo := infraRepo.NewBookingGormRepository(d.DB)
	auditLogger := audit.New(d.DB)

	// ======================================================
	// USE CASES
	// ======================================================
	listServicesUC := ucBooking.NewListServices(repo)
	getAvailabilityUC := ucBooking.NewGetAvailability(repo, d.Settings)
	availableTechniciansUC := ucBooking.NewAvailableTechnicians(repo, d.Settings)
	createBookingUC := ucBooking.NewCreateBooking(
		repo,
		d.Guard,
		d.Notifier,
		d.Audit,
		d.Log,
		d.Settings,
	)
	getBookingUC := ucBooking.NewGetBooking(repo, d.Settings)
	listByDateUC := ucBooking.NewListBookingsByDate(repo, d.Settings)
	updateStatusUC := ucBooking.NewUpdateBookingStatus(repo, d.Audit)

	techniciansUC := ucTechnician.NewManage(repo, d.Audit)
	workingHoursUC := ucSchedule.NewWorkingHours(repo, d.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(
		listServicesUC,
		getAvailabilityUC,
		availableTechniciansUC,
		createBookingUC,
		getBookingUC,
		techniciansUC,
	)
	adminBookingHandler := handlers.NewAdminBookingHandler(listByDateUC, updateStatusUC)
	technicianHandler := handlers.NewTechnicianHandler(techniciansUC)
	workingHoursHandler := handlers.NewWorkingHoursHandler(workingHoursUC)
	sessionHandler := handlers.NewSessionHandler(d.Config)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger, d.Settings.Location)
	webHandler := handlers.NewWebHandler(
		listServicesUC,
		getBookingUC,
		listByDateUC,
		techniciansUC,
		workingHoursUC,
		d.Settings.Business,
		d.Settings.Location,
	)

	bookingLimiter := middleware.NewRateLimiter(d.Config.RateLimitRPS, d.Config.RateLimitBurst)

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// WEB (HTML)
	// ======================================================
	r.GET("/", webHandler.Home)
	r.GET("/book", webHandler.BookPage)
	r.GET("/book/success", webHandler.SuccessPage)

	adminWeb := r.Group("/admin")
	adminWeb.Use(middleware.AdminAuth(d.Config), middleware.NoStore())
	{
		adminWeb.GET("", webHandler.AdminDashboard)
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/services", publicHandler.ListServices)
		api.GET("/availability", publicHandler.Availability)
		api.GET("/technicians", publicHandler.ListTechnicians)
		api.POST("/technicians/available", publicHandler.AvailableTechnicians)
		api.POST("/bookings", bookingLimiter.Middleware(), publicHandler.CreateBooking)
		api.GET("/bookings/:id", publicHandler.GetBooking)

		// ------------------------------
		// ADMIN SESSION
		// ------------------------------
		api.POST("/admin/session", sessionHandler.Create)

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuth(d.Config), middleware.NoStore())
		{
			admin.GET("/bookings", adminBookingHandler.List)
			admin.GET("/bookings/export", adminBookingHandler.Export)
			admin.PATCH("/bookings/:id/status", adminBookingHandler.UpdateStatus)

			admin.GET("/technicians", technicianHandler.List)
			admin.POST("/technicians", technicianHandler.Create)
			admin.PATCH("/technicians/:id", technicianHandler.Update)
			admin.DELETE("/technicians/:id", technicianHandler.Delete)

			admin.GET("/working-hours", workingHoursHandler.Get)
			admin.PUT("/working-hours", workingHoursHandler.Update)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}

	return nil
}
