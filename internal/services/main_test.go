package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"shiftmatch/internal/kvstore"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var t0 = time.Date(2026, 5, 4, 8, 30, 0, 0, time.UTC)

// steppingClock returns start, start+step, start+2*step, ...
func steppingClock(start time.Time, step time.Duration) func() time.Time {
	next := start
	return func() time.Time {
		now := next
		next = next.Add(step)
		return now
	}
}

// failingStore is a kvstore.Store whose every operation fails like an unreachable backend.
type failingStore struct{}

var errBackendDown = errors.New("connection refused")

func (failingStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.Join(kvstore.ErrStore, errBackendDown)
}
func (failingStore) Set(context.Context, string, []byte) error {
	return errors.Join(kvstore.ErrStore, errBackendDown)
}
func (failingStore) Remove(context.Context, string) error {
	return errors.Join(kvstore.ErrStore, errBackendDown)
}
func (failingStore) Update(context.Context, string, kvstore.UpdateFunc) error {
	return errors.Join(kvstore.ErrStore, errBackendDown)
}
func (failingStore) Close() error { return nil }
