package services

import "errors"

// Define common service errors
var (
	ErrNotFound          = errors.New("resource not found")
	ErrConflict          = errors.New("conflict")
	ErrValidation        = errors.New("validation failed")
	ErrInvalidTransition = errors.New("invalid state transition")
	// ErrStorage wraps key-value store failures; the original cause stays in the chain.
	ErrStorage = errors.New("storage failure")
)
