package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/castaway/internal/common/clock Clock

// Clock stamps created and updated times on game records
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock with the wall clock in UTC
type SystemClock struct{}

// New creates a new system clock
func New() *SystemClock {
	return &SystemClock{}
}

// Now returns the current UTC time truncated to milliseconds
func (c *SystemClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
