package civil

import "time"

// Clock is the injected source of the current instant. The default clock
// reads the OS wall clock; tests substitute a FixedClock for determinism.
type Clock interface {
	Now() Instant
}

// SystemClock reads the OS wall clock via the standard library's time.Now.
type SystemClock struct{}

// Now returns the current instant according to the OS wall clock.
func (SystemClock) Now() Instant {
	now := time.Now()
	return Instant{epochSecond: now.Unix(), nanoOfSecond: uint32(now.Nanosecond())}
}

// FixedClock always returns the same Instant. Useful in tests.
type FixedClock struct {
	Instant Instant
}

// Now returns the fixed instant.
func (c FixedClock) Now() Instant { return c.Instant }

// DefaultClock is the clock used by package-level convenience constructors
// that need "now", such as Now(). It may be reassigned in tests.
var DefaultClock Clock = SystemClock{}

// Now returns the current instant using DefaultClock.
func Now() Instant { return DefaultClock.Now() }
