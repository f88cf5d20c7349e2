package virtualclock

import (
	"cmp"
	"fmt"
	"time"

	"github.com/metamogul/virtualclock/internal/millis"
)

// Instant is an immutable snapshot of a Clock. Instants are comparable and
// can be used as map keys; two Instants taken at the same reading are equal.
//
// Durations derived from Instants have millisecond resolution. Spans longer
// than the largest time.Duration saturate to it.
type Instant struct {
	created uint64
}

// FromMillis returns the Instant a Clock reading ms would produce.
func FromMillis(ms uint64) Instant {
	return Instant{created: ms}
}

// Millis returns the captured counter value.
func (i Instant) Millis() uint64 {
	return i.created
}

// DurationSince returns the time passed between earlier and i, or zero if
// earlier is actually after i.
func (i Instant) DurationSince(earlier Instant) time.Duration {
	d, _ := i.CheckedDurationSince(earlier)
	return d
}

// CheckedDurationSince returns the time passed between earlier and i. It
// reports false if earlier is after i.
func (i Instant) CheckedDurationSince(earlier Instant) (time.Duration, bool) {
	diff, ok := millis.CheckedSub(i.created, earlier.created)
	if !ok {
		return 0, false
	}

	return millis.ToDuration(diff), true
}

// SaturatingDurationSince returns the time passed between earlier and i, or
// zero if earlier is after i.
func (i Instant) SaturatingDurationSince(earlier Instant) time.Duration {
	return i.DurationSince(earlier)
}

// Elapsed returns the time passed from i until the current reading of r,
// floored at zero. The result is relative to r only: an Instant taken from
// one Clock and read against another measures against the latter.
func (i Instant) Elapsed(r Reader) time.Duration {
	return Instant{created: r.Time()}.DurationSince(i)
}

// CheckedAdd returns i shifted forward by d, truncated to whole
// milliseconds. It reports false if the result would overflow. A negative d
// shifts backwards.
func (i Instant) CheckedAdd(d time.Duration) (Instant, bool) {
	ms, negative := millis.FromDuration(d)
	if negative {
		return i.checkedSubMillis(ms)
	}

	return i.checkedAddMillis(ms)
}

// CheckedSub returns i shifted backwards by d, truncated to whole
// milliseconds. It reports false if the result would fall below zero. A
// negative d shifts forward.
func (i Instant) CheckedSub(d time.Duration) (Instant, bool) {
	ms, negative := millis.FromDuration(d)
	if negative {
		return i.checkedAddMillis(ms)
	}

	return i.checkedSubMillis(ms)
}

func (i Instant) checkedAddMillis(ms uint64) (Instant, bool) {
	created, ok := millis.CheckedAdd(i.created, ms)
	if !ok {
		return Instant{}, false
	}

	return Instant{created: created}, true
}

func (i Instant) checkedSubMillis(ms uint64) (Instant, bool) {
	created, ok := millis.CheckedSub(i.created, ms)
	if !ok {
		return Instant{}, false
	}

	return Instant{created: created}, true
}

// Add returns i shifted forward by d. It panics with an error wrapping
// ErrOutOfRange where CheckedAdd would report false.
func (i Instant) Add(d time.Duration) Instant {
	result, ok := i.CheckedAdd(d)
	if !ok {
		panic(fmt.Errorf("%w: overflow when adding duration to instant", ErrOutOfRange))
	}

	return result
}

// SubDuration returns i shifted backwards by d. It panics with an error
// wrapping ErrOutOfRange where CheckedSub would report false.
func (i Instant) SubDuration(d time.Duration) Instant {
	result, ok := i.CheckedSub(d)
	if !ok {
		panic(fmt.Errorf("%w: overflow when subtracting duration from instant", ErrOutOfRange))
	}

	return result
}

// Sub returns i - u, floored at zero like DurationSince.
func (i Instant) Sub(u Instant) time.Duration {
	return i.DurationSince(u)
}

// Compare returns -1 if i is before u, +1 if i is after u and 0 if both
// are equal.
func (i Instant) Compare(u Instant) int {
	return cmp.Compare(i.created, u.created)
}

func (i Instant) Before(u Instant) bool {
	return i.created < u.created
}

func (i Instant) After(u Instant) bool {
	return i.created > u.created
}

func (i Instant) Equal(u Instant) bool {
	return i.created == u.created
}

func (i Instant) String() string {
	return fmt.Sprintf("Instant{created: %d}", i.created)
}

func (i Instant) GoString() string {
	return "virtualclock." + i.String()
}
