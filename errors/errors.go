package errors

import "errors"

// Sentinel errors for common error conditions
var (
	// ErrBackendUnavailable indicates that no completion backend is configured.
	// The engine falls back to deterministic simulation instead of surfacing
	// this to callers.
	ErrBackendUnavailable = errors.New("completion backend unavailable")

	// ErrMalformedResponse indicates that the backend returned text that is
	// not valid JSON or is missing required keys
	ErrMalformedResponse = errors.New("malformed backend response")

	// ErrInvalidInput indicates that input validation failed
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("resource not found")
)
