// FILE: toobusy/timing.go
package toobusy

import "time"

// Core timing constants for production use.
// These define the fundamental sampling behavior of the monitor.
const (
	// Sampling bounds (ordered by magnitude)
	MinSampleInterval     = 16 * time.Millisecond  // Hard floor for the tick cadence
	MinHighWater          = 10 * time.Millisecond  // Hard floor for the busy high-water mark
	DefaultHighWater      = 70 * time.Millisecond  // Smoothed lag above this starts shedding
	DefaultSampleInterval = 500 * time.Millisecond // Standard tick cadence
)

// Default smoothing and debounce parameters.
const (
	// DefaultSmoothingFactor weights each raw delay sample against the
	// running average. 1/3 favors stability over reactivity.
	DefaultSmoothingFactor = 1.0 / 3.0

	// DefaultConsecutiveThreshold is how many consecutive over-threshold
	// ticks are required before a lag notification fires, and how many
	// under-threshold ticks before the matching easing notification.
	DefaultConsecutiveThreshold = 3
)
