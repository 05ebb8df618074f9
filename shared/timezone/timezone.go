// Package timezone resolves the application location from APP_TIMEZONE once, on
// first use, and falls back to UTC when the name cannot be loaded.
package timezone

import (
	"sync"
	"time"

	"todoapi/config"

	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location
	loadOnce    sync.Once
)

func location() *time.Location {
	loadOnce.Do(func() {
		appLocation = Load(config.Get().App.Timezone)
	})

	return appLocation
}

// Load returns the named IANA location, or UTC when name is empty or unknown.
func Load(name string) *time.Location {
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")

		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC")

		return time.UTC
	}

	log.Info().Str("timezone", name).Msg("Application timezone initialized")

	return loc
}

// Now returns the current time in the application timezone.
func Now() time.Time {
	return time.Now().In(location())
}

func GetLocation() *time.Location {
	return location()
}

// Format formats t in the application timezone.
func Format(t time.Time, layout string) string {
	return t.In(location()).Format(layout)
}
