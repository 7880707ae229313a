// FILE: toobusy/options.go
package toobusy

import (
	"fmt"
	"log/slog"
	"math"
	"time"
)

// Options holds the tunables a Monitor is constructed with. Zero fields are
// filled from the defaults in timing.go. The struct tags support option files
// loaded through LoadOptions.
type Options struct {
	// SampleInterval is the tick cadence. Minimum MinSampleInterval.
	SampleInterval time.Duration `toml:"sample_interval"`

	// HighWater is the smoothed lag above which IsBusy starts returning
	// true. Minimum MinHighWater.
	HighWater time.Duration `toml:"high_water"`

	// ConsecutiveThreshold is the debounce count for lagging/easing
	// transitions. Minimum 1.
	ConsecutiveThreshold int `toml:"consecutive_threshold"`

	// SmoothingFactor is the exponential smoothing weight, in (0,1].
	SmoothingFactor float64 `toml:"smoothing_factor"`

	// LagEventThreshold arms lag-event monitoring from construction.
	// Zero leaves it unarmed until the first OnLag registration.
	LagEventThreshold time.Duration `toml:"lag_event_threshold"`

	// Logger receives state-transition and lifecycle records. Nil means
	// logging is discarded.
	Logger *slog.Logger `toml:"-"`
}

// Option mutates Options during New.
type Option func(*Options)

// WithSampleInterval sets the tick cadence.
func WithSampleInterval(d time.Duration) Option {
	return func(o *Options) {
		o.SampleInterval = d
	}
}

// WithHighWater sets the busy high-water mark.
func WithHighWater(d time.Duration) Option {
	return func(o *Options) {
		o.HighWater = d
	}
}

// WithConsecutiveThreshold sets the lagging/easing debounce count.
func WithConsecutiveThreshold(n int) Option {
	return func(o *Options) {
		o.ConsecutiveThreshold = n
	}
}

// WithSmoothingFactor sets the exponential smoothing weight.
func WithSmoothingFactor(f float64) Option {
	return func(o *Options) {
		o.SmoothingFactor = f
	}
}

// WithLagEventThreshold arms lag-event monitoring from construction.
func WithLagEventThreshold(d time.Duration) Option {
	return func(o *Options) {
		o.LagEventThreshold = d
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithOptions applies a loaded Options struct wholesale. Zero fields keep
// the values already in place, so file-loaded options compose with other
// Option calls regardless of order.
func WithOptions(src Options) Option {
	return func(dst *Options) {
		if src.SampleInterval > 0 {
			dst.SampleInterval = src.SampleInterval
		}
		if src.HighWater > 0 {
			dst.HighWater = src.HighWater
		}
		if src.ConsecutiveThreshold > 0 {
			dst.ConsecutiveThreshold = src.ConsecutiveThreshold
		}
		if src.SmoothingFactor > 0 {
			dst.SmoothingFactor = src.SmoothingFactor
		}
		if src.LagEventThreshold > 0 {
			dst.LagEventThreshold = src.LagEventThreshold
		}
		if src.Logger != nil {
			dst.Logger = src.Logger
		}
	}
}

// defaultOptions returns the construction baseline.
func defaultOptions() Options {
	return Options{
		SampleInterval:       DefaultSampleInterval,
		HighWater:            DefaultHighWater,
		ConsecutiveThreshold: DefaultConsecutiveThreshold,
		SmoothingFactor:      DefaultSmoothingFactor,
	}
}

// validate checks every tunable against its bound. Validation failures
// surface synchronously from New; nothing is clamped silently.
func (o Options) validate() error {
	if o.SampleInterval < MinSampleInterval {
		return fmt.Errorf("%w: %v < %v", ErrIntervalTooShort, o.SampleInterval, MinSampleInterval)
	}
	if o.HighWater < MinHighWater {
		return fmt.Errorf("%w: %v < %v", ErrHighWaterTooLow, o.HighWater, MinHighWater)
	}
	if o.ConsecutiveThreshold < 1 {
		return fmt.Errorf("%w: %d < 1", ErrThresholdTooLow, o.ConsecutiveThreshold)
	}
	if math.IsNaN(o.SmoothingFactor) || o.SmoothingFactor <= 0 || o.SmoothingFactor > 1 {
		return fmt.Errorf("%w: %v", ErrSmoothingOutOfRange, o.SmoothingFactor)
	}
	return nil
}
