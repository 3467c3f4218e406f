package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"shiftmatch/internal/kvstore"
	"shiftmatch/internal/logger"
	"shiftmatch/internal/models"
	"shiftmatch/internal/services"
	"shiftmatch/internal/storage/kv"
	"shiftmatch/internal/transport/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupChatServiceTest(t *testing.T, clock func() time.Time) (context.Context, services.ChatService, *kvstore.MemoryStore) {
	t.Helper()
	store := kvstore.NewMemoryStore()
	svc := services.NewChatService(kv.NewChatMessageRepo(store), logger.NewTestLogger(t), services.WithClock(clock))
	return context.Background(), svc, store
}

func storedMessageCount(t *testing.T, ctx context.Context, store kvstore.Store) int {
	t.Helper()
	var msgs []models.ChatMessage
	_, err := kvstore.GetJSON(ctx, store, kv.ChatMessagesKey, &msgs)
	require.NoError(t, err)
	return len(msgs)
}

func TestChatService_AppendAndListRoundTrip(t *testing.T) {
	ctx, svc, _ := setupChatServiceTest(t, steppingClock(t0, time.Second))

	var appended []string
	for i := 0; i < 5; i++ {
		role := models.PartyWorker
		if i%2 == 1 {
			role = models.PartyEmployer
		}
		msg, err := svc.AppendMessage(ctx, &dto.AppendChatMessageRequest{
			ApplicationID: "app-A",
			SenderRole:    role,
			Text:          fmt.Sprintf("message %d", i),
		})
		require.NoError(t, err)
		assert.Equal(t, "app-A", msg.ApplicationID)
		assert.NotEmpty(t, msg.ID)
		appended = append(appended, msg.ID)

		// Interleave another thread to prove partitioning.
		_, err = svc.AppendMessage(ctx, &dto.AppendChatMessageRequest{ApplicationID: "app-B", SenderRole: models.PartyWorker, Text: "noise"})
		require.NoError(t, err)
	}

	thread, err := svc.ListForApplication(ctx, &dto.ListChatMessagesRequest{ApplicationID: "app-A"})
	require.NoError(t, err)
	require.Len(t, thread, len(appended))
	for i, msg := range thread {
		assert.Equal(t, appended[i], msg.ID)
		assert.Equal(t, fmt.Sprintf("message %d", i), msg.Text)
		if i > 0 {
			assert.False(t, msg.CreatedAt.Before(thread[i-1].CreatedAt))
		}
	}
}

func TestChatService_EqualTimestampsKeepInsertionOrder(t *testing.T) {
	frozen := func() time.Time { return t0 }
	ctx, svc, _ := setupChatServiceTest(t, frozen)

	for _, text := range []string{"first", "second", "third"} {
		_, err := svc.AppendMessage(ctx, &dto.AppendChatMessageRequest{ApplicationID: "app-A", SenderRole: models.PartyEmployer, Text: text})
		require.NoError(t, err)
	}

	thread, err := svc.ListForApplication(ctx, &dto.ListChatMessagesRequest{ApplicationID: "app-A"})
	require.NoError(t, err)
	require.Len(t, thread, 3)
	assert.Equal(t, "first", thread[0].Text)
	assert.Equal(t, "second", thread[1].Text)
	assert.Equal(t, "third", thread[2].Text)
}

func TestChatService_AppendMessage_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  dto.AppendChatMessageRequest
	}{
		{name: "empty text", req: dto.AppendChatMessageRequest{ApplicationID: "app-A", SenderRole: models.PartyWorker, Text: ""}},
		{name: "whitespace text", req: dto.AppendChatMessageRequest{ApplicationID: "app-A", SenderRole: models.PartyWorker, Text: " \t\n "}},
		{name: "missing application", req: dto.AppendChatMessageRequest{SenderRole: models.PartyWorker, Text: "hi"}},
		{name: "unknown sender role", req: dto.AppendChatMessageRequest{ApplicationID: "app-A", SenderRole: "admin", Text: "hi"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, svc, store := setupChatServiceTest(t, steppingClock(t0, time.Second))
			_, err := svc.AppendMessage(ctx, &dto.AppendChatMessageRequest{ApplicationID: "app-A", SenderRole: models.PartyWorker, Text: "seed"})
			require.NoError(t, err)
			before := storedMessageCount(t, ctx, store)

			_, err = svc.AppendMessage(ctx, &tt.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, services.ErrValidation))
			assert.Equal(t, before, storedMessageCount(t, ctx, store))
		})
	}
}

func TestChatService_ListForUnknownApplication(t *testing.T) {
	ctx, svc, _ := setupChatServiceTest(t, steppingClock(t0, time.Second))

	thread, err := svc.ListForApplication(ctx, &dto.ListChatMessagesRequest{ApplicationID: "never-seen"})
	require.NoError(t, err)
	assert.NotNil(t, thread)
	assert.Empty(t, thread)
}

func TestChatService_BackwardsClockStaysOrdered(t *testing.T) {
	times := []time.Time{t0, t0.Add(-time.Minute), t0.Add(time.Minute)}
	i := 0
	clock := func() time.Time {
		now := times[i]
		i++
		return now
	}
	ctx, svc, _ := setupChatServiceTest(t, clock)

	for _, text := range []string{"a", "b", "c"} {
		_, err := svc.AppendMessage(ctx, &dto.AppendChatMessageRequest{ApplicationID: "app-A", SenderRole: models.PartyWorker, Text: text})
		require.NoError(t, err)
	}

	thread, err := svc.ListForApplication(ctx, &dto.ListChatMessagesRequest{ApplicationID: "app-A"})
	require.NoError(t, err)
	require.Len(t, thread, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{thread[0].Text, thread[1].Text, thread[2].Text})
}

func TestChatService_StorageFailure(t *testing.T) {
	ctx := context.Background()
	svc := services.NewChatService(kv.NewChatMessageRepo(failingStore{}), logger.NewNoOpLogger())

	_, err := svc.AppendMessage(ctx, &dto.AppendChatMessageRequest{ApplicationID: "app-A", SenderRole: models.PartyWorker, Text: "hi"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrStorage))
	assert.True(t, errors.Is(err, errBackendDown))

	_, err = svc.ListForApplication(ctx, &dto.ListChatMessagesRequest{ApplicationID: "app-A"})
	assert.True(t, errors.Is(err, services.ErrStorage))
}
