package storage

import "errors"

// ErrNotFound means no application carries the requested id.
var ErrNotFound = errors.New("application not found")

// ErrConflict means a record with the same id is already stored.
var ErrConflict = errors.New("duplicate application id")
