package millis

import (
	"math"
	"math/bits"
	"time"
)

// MaxDuration is the longest span a time.Duration can hold, expressed in
// whole milliseconds.
const MaxDuration = uint64(math.MaxInt64 / int64(time.Millisecond))

// CheckedAdd returns a + b and whether the sum fits into a uint64.
func CheckedAdd(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	return sum, carry == 0
}

// CheckedSub returns a - b and whether the difference is not negative.
func CheckedSub(a, b uint64) (uint64, bool) {
	diff, borrow := bits.Sub64(a, b, 0)
	return diff, borrow == 0
}

// FromDuration converts d into whole milliseconds, truncating towards zero.
// The magnitude is returned together with the sign of d.
func FromDuration(d time.Duration) (ms uint64, negative bool) {
	m := d.Milliseconds()
	if m < 0 {
		return uint64(-m), true
	}

	return uint64(m), false
}

// ToDuration converts a millisecond count into a time.Duration. Counts beyond
// MaxDuration saturate to the largest representable duration.
func ToDuration(ms uint64) time.Duration {
	if ms > MaxDuration {
		return time.Duration(math.MaxInt64)
	}

	return time.Duration(ms) * time.Millisecond
}
