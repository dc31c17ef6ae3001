package monitor

import "errors"

var (
	// ErrInvalidEndpoint is returned when a registry entry has an unusable endpoint URL.
	ErrInvalidEndpoint = errors.New("invalid endpoint")

	// ErrInvalidTimeout is returned when an aggregator is configured without a positive timeout.
	ErrInvalidTimeout = errors.New("timeout must be positive")
)
