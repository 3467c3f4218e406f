package kv

import (
	"context"
	"fmt"

	"shiftmatch/internal/kvstore"
)

// Storage keys. Their values are stable across versions; existing installations depend on them.
const (
	ApplicationsKey = "jobApplications"
	ChatMessagesKey = "chatMessages"
)

// ResetAll removes every collection this package owns. It is the full storage reset and the
// only way chat messages are ever deleted.
func ResetAll(ctx context.Context, store kvstore.Store) error {
	for _, key := range []string{ApplicationsKey, ChatMessagesKey} {
		if err := store.Remove(ctx, key); err != nil {
			return fmt.Errorf("failed to reset %s: %w", key, err)
		}
	}
	return nil
}
