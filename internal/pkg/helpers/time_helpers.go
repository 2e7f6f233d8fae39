package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a config duration string, falling back to def when the
// value is empty or malformed.
func ParseDuration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		log.Warn().Err(err).Str("value", s).Dur("default", def).Msg("Invalid duration in config, using default")
		return def
	}
	return d
}
