package ports

import "time"

// Clock provides the current time for timestamp injection.
// Tests substitute a fixed clock to make injected timestamps deterministic.
type Clock interface {
	// Now returns the current wall-clock time.
	Now() time.Time
}

// systemClock reads the real wall clock.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock {
	return systemClock{}
}
