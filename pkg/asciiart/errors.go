package asciiart

import "errors"

// Every error returned by this package wraps exactly one of these. Use errors.Is to classify.
var (
	// ErrInvalidSource is returned for zero-sized, malformed or unrecognised image sources.
	ErrInvalidSource = errors.New("invalid source")

	// ErrResourceLimit is returned when pixel or character dimensions exceed the allowed ceilings.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrCrossOrigin is returned when a source refuses pixel readback (tainted or cross-origin data).
	ErrCrossOrigin = errors.New("cross-origin pixel access denied")

	// ErrInvalidParameter is returned for malformed configuration or text options.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInputTooLarge is returned when text input exceeds the maximum length.
	ErrInputTooLarge = errors.New("input too large")
)
