// Package clock abstracts time for testability.
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/dmtoolbox/inserts-api/internal/pkg/clock Clock

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// Real reads the system clock.
type Real struct{}

// Now returns the current time.
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a real clock.
func New() Clock {
	return &Real{}
}

// Fixed always reports the same instant; for tests.
type Fixed struct {
	T time.Time
}

// Now returns the fixed instant.
func (c *Fixed) Now() time.Time {
	return c.T
}

// NewFixed returns a clock pinned to t.
func NewFixed(t time.Time) Clock {
	return &Fixed{T: t}
}
