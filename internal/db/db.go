package db

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/salon-booking/internal/config"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

// DefaultWorkingHours is what a fresh install opens with: 09:00-19:00,
// closed on Sunday.
func DefaultWorkingHours() []models.WorkingHours {
	out := make([]models.WorkingHours, 0, 7)
	for wd := 0; wd < 7; wd++ {
		out = append(out, models.WorkingHours{
			Weekday:  wd,
			Open:     "09:00",
			Close:    "19:00",
			IsClosed: wd == 0,
		})
	}
	return out
}

func NewDB(cfg *config.Config, logger zerolog.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DBUrl)
	default:
		dialector = postgres.Open(cfg.DBUrl)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		PrepareStmt: true,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger: gormlogger.New(zerologWriter{logger}, gormlogger.Config{
			SlowThreshold:             500 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	if cfg.DBDriver == "sqlite" {
		// a single connection keeps in-memory databases shared
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
		sqlDB.SetConnMaxIdleTime(10 * time.Minute)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates the schema and seeds the weekly hours that are missing.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Service{},
		&models.Technician{},
		&models.Customer{},
		&models.Booking{},
		&models.WorkingHours{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	defaults := DefaultWorkingHours()
	if err := db.
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "weekday"}}, DoNothing: true}).
		Create(&defaults).Error; err != nil {
		return fmt.Errorf("seed working hours: %w", err)
	}

	return nil
}

type zerologWriter struct {
	logger zerolog.Logger
}

func (w zerologWriter) Printf(format string, args ...any) {
	w.logger.Warn().Str("component", "gorm").Msgf(format, args...)
}
