package clock

import "time"

// Clock is the environment-supplied time source. Expiry and last-active
// bookkeeping compare against it; it is never used as a scheduling primitive.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time
func (c *RealClock) Now() time.Time {
	return time.Now()
}
