package virtualclock

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestNewClock(t *testing.T) {
	t.Parallel()

	clock := NewClock(1234)

	require.NotNil(t, clock)
	require.Equal(t, uint64(1234), clock.Time())
}

func TestClock_ZeroValue(t *testing.T) {
	t.Parallel()

	var clock Clock

	require.Equal(t, uint64(0), clock.Time())
	require.Equal(t, FromMillis(0), clock.Now())
}

func TestClock_SetTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		start    uint64
		newTime  uint64
		previous uint64
	}{
		{
			name:     "from zero",
			start:    0,
			newTime:  200,
			previous: 0,
		},
		{
			name:     "backwards",
			start:    500,
			newTime:  200,
			previous: 500,
		},
		{
			name:     "to max",
			start:    7,
			newTime:  math.MaxUint64,
			previous: 7,
		},
		{
			name:     "same value",
			start:    42,
			newTime:  42,
			previous: 42,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewClock(tt.start)

			require.Equal(t, tt.previous, c.SetTime(tt.newTime))
			require.Equal(t, tt.newTime, c.Time())
		})
	}
}

func TestClock_AdvanceTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		start    uint64
		delta    uint64
		expected uint64
	}{
		{
			name:     "from zero",
			start:    0,
			delta:    5300,
			expected: 5300,
		},
		{
			name:     "by zero",
			start:    200,
			delta:    0,
			expected: 200,
		},
		{
			name:     "up to max",
			start:    math.MaxUint64 - 10,
			delta:    10,
			expected: math.MaxUint64,
		},
		{
			name:     "wraps around",
			start:    math.MaxUint64,
			delta:    2,
			expected: 1,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := &Clock{}
			c.SetTime(tt.start)

			require.Equal(t, tt.expected, c.AdvanceTime(tt.delta))
			require.Equal(t, tt.expected, c.Time())
		})
	}
}

func TestClock_CheckedAdvanceTime(t *testing.T) {
	t.Parallel()

	t.Run("in range", func(t *testing.T) {
		t.Parallel()

		c := NewClock(math.MaxUint64 - 1)

		current, ok := c.CheckedAdvanceTime(1)
		require.True(t, ok)
		require.Equal(t, uint64(math.MaxUint64), current)
		require.Equal(t, uint64(math.MaxUint64), c.Time())
	})

	t.Run("would wrap", func(t *testing.T) {
		t.Parallel()

		c := NewClock(math.MaxUint64)

		current, ok := c.CheckedAdvanceTime(1)
		require.False(t, ok)
		require.Equal(t, uint64(math.MaxUint64), current)
		require.Equal(t, uint64(math.MaxUint64), c.Time())
	})
}

func TestClock_Now(t *testing.T) {
	t.Parallel()

	c := NewClock(200)
	before := c.Now()

	c.AdvanceTime(300)
	after := c.Now()

	require.Equal(t, uint64(200), before.Millis())
	require.Equal(t, uint64(500), after.Millis())
	require.Equal(t, 300*time.Millisecond, after.Sub(before))
}

func TestClock_Since(t *testing.T) {
	t.Parallel()

	const dur = 5300

	c := &Clock{}
	i := c.Now()
	c.AdvanceTime(dur)

	require.Equal(t, dur*time.Millisecond, c.Since(i))
	require.Equal(t, i.Elapsed(c), c.Since(i))
}

func TestClock_ConcurrentAdvance(t *testing.T) {
	t.Parallel()

	const (
		workers  = 8
		advances = 1000
	)

	c := &Clock{}

	var g errgroup.Group
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for i := 0; i < advances; i++ {
				c.AdvanceTime(1)
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
	require.Equal(t, uint64(workers*advances), c.Time())
}
