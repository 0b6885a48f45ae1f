package poller

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidInterval = errors.New("invalid poll interval")

// AllowedIntervals are the refresh rates offered to live views.
var AllowedIntervals = []time.Duration{10 * time.Second, 30 * time.Second, 60 * time.Second}

const DefaultInterval = 30 * time.Second

func ParseInterval(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultInterval, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInterval, raw)
	}
	if !IsAllowed(d) {
		return 0, fmt.Errorf("%w: %s (allowed: 10s, 30s, 60s)", ErrInvalidInterval, d)
	}
	return d, nil
}

func IsAllowed(d time.Duration) bool {
	for _, allowed := range AllowedIntervals {
		if d == allowed {
			return true
		}
	}
	return false
}
