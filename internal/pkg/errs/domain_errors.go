package errs

import "errors"

// Sentinel errors shared across the validation and capacity layers.
var (
	// Resource errors
	ErrResourceNotFound    = errors.New("resource not found")
	ErrUpstreamUnavailable = errors.New("persistence collaborator unavailable")

	// Input errors
	ErrInvalidTimeRange = errors.New("invalid time range")
	ErrValidation       = errors.New("validation error")

	// Provider errors
	ErrProviderUnavailable = errors.New("video provider unavailable")
)
