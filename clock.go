package virtualclock

import (
	"sync/atomic"
	"time"

	"github.com/metamogul/virtualclock/internal/millis"
)

// Clock is a millisecond counter that only moves when told to. The zero
// value reads 0 and is ready to use. Every test should own its Clock so
// parallel tests don't observe each other's time.
type Clock struct {
	now atomic.Uint64
}

// NewClock returns a Clock reading start.
func NewClock(start uint64) *Clock {
	c := &Clock{}
	c.now.Store(start)

	return c
}

// SetTime overwrites the counter and returns its previous value.
func (c *Clock) SetTime(ms uint64) uint64 {
	return c.now.Swap(ms)
}

// AdvanceTime moves the counter forward by ms and returns the new value.
// The addition wraps around on overflow; use CheckedAdvanceTime to detect it.
func (c *Clock) AdvanceTime(ms uint64) uint64 {
	return c.now.Add(ms)
}

// CheckedAdvanceTime moves the counter forward by ms unless that would wrap
// around, in which case the counter is left as is and false is returned.
func (c *Clock) CheckedAdvanceTime(ms uint64) (uint64, bool) {
	for {
		current := c.now.Load()

		next, ok := millis.CheckedAdd(current, ms)
		if !ok {
			return current, false
		}

		if c.now.CompareAndSwap(current, next) {
			return next, true
		}
	}
}

func (c *Clock) Time() uint64 {
	return c.now.Load()
}

// Now returns an Instant capturing the current counter.
func (c *Clock) Now() Instant {
	return Instant{created: c.Time()}
}

// Since is the time passed from i until the current reading of c, floored
// at zero. It is shorthand for i.Elapsed(c).
func (c *Clock) Since(i Instant) time.Duration {
	return i.Elapsed(c)
}
