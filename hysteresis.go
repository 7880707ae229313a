// FILE: toobusy/hysteresis.go
package toobusy

import "time"

// phase is the hysteresis state machine's position.
type phase int

const (
	phaseNormal phase = iota
	phaseLagging
)

// event is the outcome of advancing the state machine by one tick.
type event int

const (
	eventNone event = iota
	eventLag
	eventEasing
)

// hysteresis tracks consecutive over/under-threshold ticks and debounces the
// lagging/easing transitions. Invariant: phaseLagging holds only while the
// counter has reached the configured threshold without having since counted
// back down to zero.
type hysteresis struct {
	phase       phase
	consecutive int
}

// advance consumes one smoothed lag sample and returns the transition it
// caused, if any. A zero threshold means lag-event monitoring is not armed
// and the machine does nothing.
//
// The counter grows only while in phaseNormal, so it caps at the point of
// transition and recovery requires the same sustained count that entry did.
func (h *hysteresis) advance(lagMs float64, threshold time.Duration, needed int) event {
	if threshold <= 0 {
		return eventNone
	}
	thresholdMs := float64(threshold) / float64(time.Millisecond)

	if lagMs > thresholdMs {
		if h.phase == phaseNormal {
			h.consecutive++
			if h.consecutive >= needed {
				h.phase = phaseLagging
				return eventLag
			}
		}
		return eventNone
	}

	if h.consecutive > 0 {
		h.consecutive--
		if h.consecutive == 0 && h.phase == phaseLagging {
			h.phase = phaseNormal
			return eventEasing
		}
	}
	return eventNone
}

func (h *hysteresis) reset() {
	*h = hysteresis{}
}
