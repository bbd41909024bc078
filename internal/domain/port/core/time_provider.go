package core

import "time"

// Duration is a domain-specific wrapper around time.Duration
type Duration time.Duration

// Common duration constants
const (
	Nanosecond  Duration = Duration(time.Nanosecond)
	Millisecond          = Duration(time.Millisecond)
	Second               = Duration(time.Second)
	Minute               = Duration(time.Minute)
)

// Std converts domain Duration to time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Seconds returns the duration as whole seconds, rounded down
func (d Duration) Seconds() int64 {
	return int64(time.Duration(d) / time.Second)
}

// TimeProvider abstracts time operations for the domain.
// Lease expiry is always computed from Now, so tests can pin the clock.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) Duration
}
