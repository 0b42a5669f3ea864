package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/salon-booking/internal/config"
)

// New builds the process logger. Unknown levels fall back to info and
// any format other than "console" produces JSON lines.
func New(cfg *config.Config, out io.Writer) zerolog.Logger {
	if out == nil {
		out = os.Stdout
	}

	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.LogLevel))); err == nil && parsed != zerolog.NoLevel {
		level = parsed
	}

	if strings.EqualFold(strings.TrimSpace(cfg.LogFormat), "console") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("app", "salon-booking").
		Str("env", cfg.AppEnvironment).
		Str("version", cfg.AppVersion).
		Logger()
}
