package helpers

import (
	"time"

	"github.com/selim/gradepoint/internal/pkg/logger"
)

// ParseDuration parses a duration string, falling back to def when
// the string is empty or malformed.
func ParseDuration(value string, def time.Duration) time.Duration {
	if value == "" {
		return def
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		logger.Warn().Err(err).Str("value", value).Dur("default", def).Msg("Invalid duration, using default")
		return def
	}
	return duration
}
