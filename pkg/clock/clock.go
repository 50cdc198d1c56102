// Package clock abstracts time.Now so that date-dependent logic
// can be tested against a frozen point in time.
package clock

import "time"

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// FrozenClock always returns the same instant until advanced.
type FrozenClock struct {
	now time.Time
}

func (c *FrozenClock) Now() time.Time {
	return c.now
}

// Advance moves the frozen clock forward and returns the new instant.
func (c *FrozenClock) Advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

var current Clock = systemClock{}

// Now is a drop-in replacement for time.Now.
func Now() time.Time {
	return current.Now()
}

// FreezeAt pins the clock to a fixed instant. Tests must defer Unfreeze.
func FreezeAt(instant time.Time) *FrozenClock {
	frozen := &FrozenClock{now: instant}
	current = frozen
	return frozen
}

// Freeze pins the clock to the current instant.
func Freeze() *FrozenClock {
	return FreezeAt(time.Now())
}

// Unfreeze restores the system clock.
func Unfreeze() {
	current = systemClock{}
}
