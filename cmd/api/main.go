package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/catalog"
	"github.com/BruksfildServices01/salon-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-booking/internal/db"
	"github.com/BruksfildServices01/salon-booking/internal/guard"
	infraRepo "github.com/BruksfildServices01/salon-booking/internal/infra/repository"
	"github.com/BruksfildServices01/salon-booking/internal/logging"
	"github.com/BruksfildServices01/salon-booking/internal/notify"
	"github.com/BruksfildServices01/salon-booking/internal/reminder"
	"github.com/BruksfildServices01/salon-booking/internal/routes"
	ucBooking "github.com/BruksfildServices01/salon-booking/internal/usecase/booking"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg, os.Stdout)

	if err := run(cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func run(cfg *config.Config, logger zerolog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := dbpkg.NewDB(cfg, logger)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	repo := infraRepo.NewBookingGormRepository(db)
	n, err := catalog.Seed(ctx, repo, cfg.CatalogFile)
	if err != nil {
		return fmt.Errorf("seed catalog %q: %w", cfg.CatalogFile, err)
	}
	if n > 0 {
		logger.Info().Int("services", n).Msg("catalog seeded")
	}

	// ======================================================
	// OPTIONAL INFRA
	// ======================================================
	var submissionGuard *guard.SubmissionGuard
	if cfg.RedisURL != "" {
		client, err := guard.NewRedisClient(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		defer client.Close()
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn().Err(err).Msg("redis unreachable, duplicate submissions are only caught by the database")
		}
		submissionGuard = guard.NewSubmissionGuard(client, cfg.SubmissionTTL)
	}

	var notifier notify.Notifier = notify.Noop{Log: logger}
	if cfg.SMSEnabled() {
		notifier = notify.NewTwilio(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFrom)
	} else {
		logger.Warn().Msg("twilio credentials missing, SMS disabled")
	}

	auditDispatcher := audit.NewDispatcher(audit.New(db), logger)
	defer auditDispatcher.Close()

	settings := ucBooking.SettingsFromConfig(cfg)

	if cfg.ReminderCron != "" {
		job := ucBooking.NewSendReminders(repo, notifier, auditDispatcher, logger, settings)
		scheduler, err := reminder.NewScheduler(cfg.ReminderCron, settings.Location, job, logger)
		if err != nil {
			return fmt.Errorf("schedule reminders: %w", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
		logger.Info().Time("next_run", scheduler.Next()).Msg("reminders scheduled")
	}

	// ======================================================
	// HTTP
	// ======================================================
	if cfg.AppEnvironment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	if err := routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Config:   cfg,
		Settings: settings,
		Log:      logger,
		Guard:    submissionGuard,
		Notifier: notifier,
		Audit:    auditDispatcher,
	}); err != nil {
		return fmt.Errorf("register routes: %w", err)
	}

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	return serve(ctx, srv, cfg.ShutdownTimeout, logger)
}

// serve runs srv until ctx is cancelled or the listener fails, then
// shuts it down within timeout.
func serve(ctx context.Context, srv *http.Server, timeout time.Duration, logger zerolog.Logger) error {
	listenErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
		close(listenErr)
	}()

	select {
	case err := <-listenErr:
		if err != nil {
			return fmt.Errorf("listen on %s: %w", srv.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}
