// Package virtualclock is a millisecond clock for tests that only moves when
// told to, together with the Instant snapshots application code measures
// elapsed time with.
package virtualclock

import (
	"errors"
	"time"
)

// Reader reports the current reading of a clock in milliseconds.
type Reader interface {
	Time() uint64
}

// Source hands out snapshots of a clock.
type Source interface {
	Now() Instant
}

// Elapser measures the time passed since an earlier snapshot.
type Elapser interface {
	Since(Instant) time.Duration
}

// ErrOutOfRange is the panic value, wrapped, of Instant.Add and
// Instant.SubDuration when the result can't be represented.
var ErrOutOfRange = errors.New("instant out of range")

var (
	_ Reader  = (*Clock)(nil)
	_ Source  = (*Clock)(nil)
	_ Elapser = (*Clock)(nil)
)
