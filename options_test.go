// FILE: toobusy/options_test.go
package toobusy

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultOptionsValid verifies the construction baseline passes its own
// validation.
func TestDefaultOptionsValid(t *testing.T) {
	assert.NoError(t, defaultOptions().validate())
}

// TestOptionsApplied verifies New wires every option through to the monitor
func TestOptionsApplied(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	m, err := New(
		WithSampleInterval(time.Minute),
		WithHighWater(42*time.Millisecond),
		WithConsecutiveThreshold(7),
		WithSmoothingFactor(0.9),
		WithLagEventThreshold(55*time.Millisecond),
		WithLogger(logger),
	)
	require.NoError(t, err)
	t.Cleanup(m.Shutdown)

	assert.Equal(t, time.Minute, m.SampleInterval())
	assert.Equal(t, 42*time.Millisecond, m.HighWater())
	assert.Equal(t, 7, m.ConsecutiveThreshold())
	assert.Equal(t, 0.9, m.SmoothingFactor())
	assert.Equal(t, 55*time.Millisecond, m.LagEventThreshold())
}

// TestWithOptionsComposition verifies zero fields of a loaded Options keep
// prior values and later options still win.
func TestWithOptionsComposition(t *testing.T) {
	loaded := Options{HighWater: 100 * time.Millisecond}

	t.Run("ZeroFieldsKeepDefaults", func(t *testing.T) {
		o := defaultOptions()
		WithOptions(loaded)(&o)

		assert.Equal(t, 100*time.Millisecond, o.HighWater)
		assert.Equal(t, DefaultSampleInterval, o.SampleInterval)
		assert.Equal(t, DefaultSmoothingFactor, o.SmoothingFactor)
	})

	t.Run("LaterOptionsOverride", func(t *testing.T) {
		o := defaultOptions()
		WithOptions(loaded)(&o)
		WithHighWater(30 * time.Millisecond)(&o)

		assert.Equal(t, 30*time.Millisecond, o.HighWater)
	})
}
