package booking

import (
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/config"
	"github.com/BruksfildServices01/salon-booking/internal/notify"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

// Settings are the salon-wide knobs every booking use case reads.
type Settings struct {
	Location           *time.Location
	SlotMinutes        int
	MaxBookingsPerHour int
	Business           notify.Business
	AdminPhone         string

	// Clock replaces time.Now in tests.
	Clock func() time.Time
}

func SettingsFromConfig(cfg *config.Config) Settings {
	return Settings{
		Location:           timezone.Location(cfg.Timezone),
		SlotMinutes:        cfg.SlotMinutes,
		MaxBookingsPerHour: cfg.MaxBookingsPerHour,
		Business: notify.Business{
			Name:    cfg.BusinessName,
			Address: cfg.BusinessAddress,
			Phone:   cfg.BusinessPhone,
		},
		AdminPhone: cfg.AdminPhone,
	}
}

func (s Settings) loc() *time.Location {
	if s.Location == nil {
		return timezone.Location("")
	}
	return s.Location
}

func (s Settings) now() time.Time {
	if s.Clock != nil {
		return s.Clock().In(s.loc())
	}
	return time.Now().In(s.loc())
}

func (s Settings) step() time.Duration {
	if s.SlotMinutes <= 0 {
		return 60 * time.Minute
	}
	return time.Duration(s.SlotMinutes) * time.Minute
}
