// Package virtualclocktest provides helpers to hand out virtual clocks to
// tests.
package virtualclocktest

import (
	"testing"

	"github.com/metamogul/virtualclock"
)

type options struct {
	start uint64
}

// Option configures a Clock created by New or Registry.Clock.
type Option func(*options)

// WithStart makes the clock start at ms instead of zero.
func WithStart(ms uint64) Option {
	return func(o *options) {
		o.start = ms
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// New returns a Clock owned by t.
func New(t testing.TB, opts ...Option) *virtualclock.Clock {
	t.Helper()

	o := newOptions(opts)

	return virtualclock.NewClock(o.start)
}

// Registry hands out one clock per test, keyed by the test's name, and
// drops it once the test has finished.
type Registry struct {
	clocks *virtualclock.Registry
}

func NewRegistry() *Registry {
	return &Registry{
		clocks: virtualclock.NewRegistry(),
	}
}

// Clock returns the clock of t. Options only apply when the clock is
// created, i.e. on the first call for t.
func (r *Registry) Clock(t testing.TB, opts ...Option) *virtualclock.Clock {
	t.Helper()

	key := t.Name()

	c, created := r.clocks.ClockAt(key, newOptions(opts).start)
	if created {
		t.Logf("virtual clock for %s starts at %d", key, c.Time())
		t.Cleanup(func() {
			r.clocks.Forget(key)
		})
	}

	return c
}

// Len returns the number of clocks of tests that haven't finished yet.
func (r *Registry) Len() int {
	return r.clocks.Len()
}
