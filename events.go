// FILE: toobusy/events.go
package toobusy

import "time"

// LagFunc receives the smoothed lag value current at the moment the
// notification fired.
type LagFunc func(lag time.Duration)

// registries holds the two typed callback collections. Dispatch order is
// registration order. Guarded by the monitor mutex.
type registries struct {
	lag    []LagFunc
	easing []LagFunc
}

// OnLag registers a callback fired when the monitor transitions to lagging.
//
// Registration arms lag-event monitoring: with an explicit threshold, that
// value becomes the lag-event threshold; without one, the current high-water
// mark is captured at registration time and is not re-evaluated if the mark
// changes later. The threshold is shared monitor-wide across all lag
// subscribers, and the most recent registration overwrites it.
func (m *Monitor) OnLag(fn LagFunc, threshold ...time.Duration) {
	if fn == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if len(threshold) > 0 && threshold[0] > 0 {
		m.settings.lagThreshold = threshold[0]
	} else {
		m.settings.lagThreshold = m.settings.highWater
	}
	m.subs.lag = append(m.subs.lag, fn)
}

// OnEasing registers a callback fired when the monitor transitions back to
// normal after lagging. Registration is unconditional and does not touch the
// lag-event threshold.
func (m *Monitor) OnEasing(fn LagFunc) {
	if fn == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs.easing = append(m.subs.easing, fn)
}
