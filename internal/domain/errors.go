package domain

import "errors"

var (
	// ErrUnrecognizedPlatform is returned when no platform matches the URL
	// and none was selected.
	ErrUnrecognizedPlatform = errors.New("unrecognized platform")

	// ErrURLPatternMismatch is returned when the selected or detected
	// platform does not accept the URL.
	ErrURLPatternMismatch = errors.New("url does not match platform pattern")

	// ErrExtractionFailed is returned when the URL matched but yielded no
	// usable identifier.
	ErrExtractionFailed = errors.New("embed identifier extraction failed")

	// ErrInvalidRequest is returned for malformed API payloads.
	ErrInvalidRequest = errors.New("invalid embed request")

	// ErrRateLimited is returned when a client exceeds its request budget.
	ErrRateLimited = errors.New("rate limit exceeded")
)
