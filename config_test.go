// FILE: toobusy/config_test.go
package toobusy

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newQuiet returns a monitor whose ticker will not fire during the test, so
// state can be driven synthetically.
func newQuiet(t *testing.T, opts ...Option) *Monitor {
	t.Helper()
	m, err := New(append([]Option{WithSampleInterval(time.Hour)}, opts...)...)
	require.NoError(t, err)
	t.Cleanup(m.Shutdown)
	return m
}

// setLag force-sets the smoothed lag, bypassing the sampler.
func setLag(m *Monitor, ms float64) {
	m.mu.Lock()
	m.lagMs = ms
	m.mu.Unlock()
}

// TestSampleIntervalValidation tests the minimum bound and the reset side effect
func TestSampleIntervalValidation(t *testing.T) {
	m := newQuiet(t)

	t.Run("BelowMinimumFails", func(t *testing.T) {
		err := m.SetSampleInterval(15 * time.Millisecond)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrIntervalTooShort)
		assert.Equal(t, time.Hour, m.SampleInterval(), "failed set must not change state")
	})

	t.Run("AtMinimumSucceeds", func(t *testing.T) {
		setLag(m, 50)
		require.NoError(t, m.SetSampleInterval(16*time.Millisecond))
		assert.Equal(t, 16*time.Millisecond, m.SampleInterval())
		assert.Equal(t, time.Duration(0), m.Lag(), "interval change must reset current lag")
	})
}

// TestHighWaterValidation tests the minimum bound on the high-water mark
func TestHighWaterValidation(t *testing.T) {
	m := newQuiet(t)

	err := m.SetHighWater(9 * time.Millisecond)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHighWaterTooLow)
	assert.Equal(t, DefaultHighWater, m.HighWater())

	require.NoError(t, m.SetHighWater(10*time.Millisecond))
	assert.Equal(t, 10*time.Millisecond, m.HighWater())
}

// TestSmoothingFactorValidation tests the (0,1] range and the NaN guard
func TestSmoothingFactorValidation(t *testing.T) {
	m := newQuiet(t)

	for _, bad := range []float64{0, -0.25, 1.5, math.NaN()} {
		err := m.SetSmoothingFactor(bad)
		require.Error(t, err, "factor %v should be rejected", bad)
		assert.ErrorIs(t, err, ErrSmoothingOutOfRange)
	}
	assert.Equal(t, DefaultSmoothingFactor, m.SmoothingFactor())

	require.NoError(t, m.SetSmoothingFactor(0.5))
	assert.Equal(t, 0.5, m.SmoothingFactor())

	require.NoError(t, m.SetSmoothingFactor(1.0), "1 is inclusive")
}

// TestConsecutiveThresholdValidation tests the minimum debounce count
func TestConsecutiveThresholdValidation(t *testing.T) {
	m := newQuiet(t)

	err := m.SetConsecutiveThreshold(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrThresholdTooLow)

	require.NoError(t, m.SetConsecutiveThreshold(5))
	assert.Equal(t, 5, m.ConsecutiveThreshold())
}
