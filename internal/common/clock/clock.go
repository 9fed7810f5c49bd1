package clock

import "time"

// Clock is the source of time for sessions, alarms and rate limiting
//
//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/hydroquest/internal/common/clock Clock
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC so persisted timestamps compare equal after a round trip
type SystemClock struct{}

// New returns the system clock
func New() *SystemClock {
	return &SystemClock{}
}

// Now returns the current UTC time with the monotonic reading stripped
func (c *SystemClock) Now() time.Time {
	return time.Now().UTC().Round(0)
}
