package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shiftmatch/internal/models"
	"shiftmatch/internal/storage"
)

// isValidApplicationTransition defines the allowed status changes.
func isValidApplicationTransition(from, to models.ApplicationStatus) bool {
	switch from {
	case models.ApplicationStatusPending:
		return to == models.ApplicationStatusAccepted ||
			to == models.ApplicationStatusRejected ||
			to == models.ApplicationStatusCanceled
	case models.ApplicationStatusAccepted:
		// Terminal for decisions, but the application can still be called off.
		return to == models.ApplicationStatusCanceled
	case models.ApplicationStatusRejected, models.ApplicationStatusCanceled:
		return false
	default:
		return false
	}
}

// MapRepoError maps storage errors to service errors. Service errors raised inside
// an update callback pass through untouched.
func MapRepoError(err error, operation string) error {
	switch {
	case errors.Is(err, ErrInvalidTransition), errors.Is(err, ErrValidation):
		return err
	case errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	case errors.Is(err, storage.ErrConflict):
		return fmt.Errorf("%w: %s (%v)", ErrConflict, operation, err)
	default:
		return fmt.Errorf("%w: %s: %w", ErrStorage, operation, err)
	}
}

// isStorageError reports whether err came from the store rather than from a rule.
func isStorageError(err error) bool {
	return errors.Is(err, ErrStorage)
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }

// Option configures a service.
type Option func(*serviceOptions)

type serviceOptions struct {
	now func() time.Time
}

func defaultOptions(opts []Option) serviceOptions {
	o := serviceOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(o *serviceOptions) { o.now = now }
}
