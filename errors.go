// FILE: toobusy/errors.go
package toobusy

import "errors"

var (
	// ErrIntervalTooShort is returned when a sample interval below
	// MinSampleInterval is supplied.
	ErrIntervalTooShort = errors.New("sample interval below minimum")

	// ErrHighWaterTooLow is returned when a high-water mark below
	// MinHighWater is supplied.
	ErrHighWaterTooLow = errors.New("high-water mark below minimum")

	// ErrSmoothingOutOfRange is returned when a smoothing factor outside
	// (0,1], or NaN, is supplied.
	ErrSmoothingOutOfRange = errors.New("smoothing factor outside (0,1]")

	// ErrThresholdTooLow is returned when a consecutive lag threshold
	// below 1 is supplied.
	ErrThresholdTooLow = errors.New("consecutive lag threshold below minimum")

	// ErrOptionsNotFound is returned by LoadOptions when the file does not exist.
	ErrOptionsNotFound = errors.New("options file not found")
)
