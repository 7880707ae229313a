// FILE: toobusy/config.go
package toobusy

import (
	"fmt"
	"math"
	"time"
)

// settings holds the monitor's mutable tunables. It is guarded by the
// monitor mutex and mutated only through the validated setters below.
type settings struct {
	sampleInterval time.Duration
	highWater      time.Duration
	consecutive    int
	smoothing      float64

	// lagThreshold is the shared lag-event threshold. Zero means unset:
	// the hysteresis state machine performs no transitions until an OnLag
	// registration (or option) arms it.
	lagThreshold time.Duration
}

// SetSampleInterval updates the tick cadence. As a side effect it resets the
// smoothed lag to zero and restarts the sampling schedule at the new cadence,
// so the first tick after the change measures against a fresh baseline.
func (m *Monitor) SetSampleInterval(d time.Duration) error {
	if d < MinSampleInterval {
		return fmt.Errorf("%w: %v < %v", ErrIntervalTooShort, d, MinSampleInterval)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.settings.sampleInterval = d
	m.lagMs = 0
	m.lastTick = time.Now()
	if m.started.Load() {
		m.ticker.Reset(d)
	}
	m.logger.Debug("sample interval changed", "interval", d)
	return nil
}

// SampleInterval returns the current tick cadence.
func (m *Monitor) SampleInterval() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings.sampleInterval
}

// SetHighWater updates the lag value above which the monitor starts
// considering itself busy. It does not retroactively change a lag-event
// threshold captured by an earlier OnLag registration.
func (m *Monitor) SetHighWater(d time.Duration) error {
	if d < MinHighWater {
		return fmt.Errorf("%w: %v < %v", ErrHighWaterTooLow, d, MinHighWater)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings.highWater = d
	return nil
}

// HighWater returns the current high-water mark.
func (m *Monitor) HighWater() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings.highWater
}

// SetConsecutiveThreshold updates how many consecutive over-threshold ticks
// are required before a lag notification fires.
func (m *Monitor) SetConsecutiveThreshold(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: %d < 1", ErrThresholdTooLow, n)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings.consecutive = n
	return nil
}

// ConsecutiveThreshold returns the current consecutive-tick threshold.
func (m *Monitor) ConsecutiveThreshold() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings.consecutive
}

// SetSmoothingFactor updates the exponential smoothing factor. Values closer
// to 1 weight recent samples more heavily (a twitchier signal); values closer
// to 0 produce a slower-moving average.
func (m *Monitor) SetSmoothingFactor(f float64) error {
	if math.IsNaN(f) || f <= 0 || f > 1 {
		return fmt.Errorf("%w: %v", ErrSmoothingOutOfRange, f)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings.smoothing = f
	return nil
}

// SmoothingFactor returns the current smoothing factor.
func (m *Monitor) SmoothingFactor() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings.smoothing
}

// LagEventThreshold returns the shared lag-event threshold, or zero if lag
// event monitoring has not been armed.
func (m *Monitor) LagEventThreshold() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings.lagThreshold
}
