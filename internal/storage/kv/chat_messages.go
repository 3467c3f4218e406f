package kv

import (
	"context"
	"fmt"

	"shiftmatch/internal/kvstore"
	"shiftmatch/internal/models"
	"shiftmatch/internal/storage"
)

// ChatMessageRepo implements storage.ChatMessageRepository as one JSON array under ChatMessagesKey,
// kept in append order across all applications.
type ChatMessageRepo struct {
	store kvstore.Store
}

// NewChatMessageRepo creates a new ChatMessageRepo.
func NewChatMessageRepo(store kvstore.Store) *ChatMessageRepo {
	return &ChatMessageRepo{store: store}
}

var _ storage.ChatMessageRepository = (*ChatMessageRepo)(nil)

func (r *ChatMessageRepo) Append(ctx context.Context, msg *models.ChatMessage) error {
	err := kvstore.UpdateJSON(ctx, r.store, ChatMessagesKey, func(msgs *[]models.ChatMessage) error {
		if n := len(*msgs); n > 0 {
			if last := (*msgs)[n-1].CreatedAt; msg.CreatedAt.Before(last) {
				msg.CreatedAt = last
			}
		}
		*msgs = append(*msgs, *msg)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to append chat message: %w", err)
	}
	return nil
}

// ListByApplication returns the thread in storage order. Unknown ids yield an empty slice.
func (r *ChatMessageRepo) ListByApplication(ctx context.Context, applicationID string) ([]models.ChatMessage, error) {
	var msgs []models.ChatMessage
	if _, err := kvstore.GetJSON(ctx, r.store, ChatMessagesKey, &msgs); err != nil {
		return nil, fmt.Errorf("failed to load chat messages: %w", err)
	}
	out := make([]models.ChatMessage, 0)
	for _, m := range msgs {
		if m.ApplicationID == applicationID {
			out = append(out, m)
		}
	}
	return out, nil
}
