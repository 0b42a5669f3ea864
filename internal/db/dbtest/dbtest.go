// Package dbtest opens throwaway in-memory databases for tests.
package dbtest

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-booking/internal/config"
	"github.com/BruksfildServices01/salon-booking/internal/db"
)

// New returns a migrated sqlite database private to the calling test.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		DBDriver: "sqlite",
		DBUrl:    fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	}

	gdb, err := db.NewDB(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return gdb
}
