package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"shiftmatch/internal/logger"
	"shiftmatch/internal/metrics"
	"shiftmatch/internal/models"
	"shiftmatch/internal/storage"
	"shiftmatch/internal/transport/dto"

	"github.com/google/uuid"
)

type chatService struct {
	msgRepo storage.ChatMessageRepository
	log     logger.Logger
	opts    serviceOptions
}

// NewChatService creates the chat thread store on top of msgRepo.
func NewChatService(msgRepo storage.ChatMessageRepository, log logger.Logger, opts ...Option) ChatService {
	return &chatService{
		msgRepo: msgRepo,
		log:     log.WithFields(map[string]interface{}{"component": "chat_thread_store"}),
		opts:    defaultOptions(opts),
	}
}

// AppendMessage adds a message to an application's thread. The thread does not depend on
// the application's status; whether it is shown is a disclosure decision.
func (s *chatService) AppendMessage(ctx context.Context, req *dto.AppendChatMessageRequest) (*models.ChatMessage, error) {
	if isBlank(req.ApplicationID) {
		return nil, fmt.Errorf("%w: missing application id", ErrValidation)
	}
	if !req.SenderRole.Valid() {
		return nil, fmt.Errorf("%w: unknown sender role %q", ErrValidation, req.SenderRole)
	}
	if strings.TrimSpace(req.Text) == "" {
		return nil, fmt.Errorf("%w: message text is empty", ErrValidation)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generating message id: %w", err)
	}
	msg := &models.ChatMessage{
		ID:            id.String(),
		ApplicationID: req.ApplicationID,
		SenderRole:    req.SenderRole,
		Text:          req.Text,
		CreatedAt:     s.opts.now().UTC(),
	}

	if err := s.msgRepo.Append(ctx, msg); err != nil {
		metrics.StoreErrors.WithLabelValues("append_message").Inc()
		s.log.WithError(err).Error("AppendMessage: error persisting message", map[string]interface{}{
			"application_id": req.ApplicationID,
		})
		return nil, MapRepoError(err, fmt.Sprintf("appending message to application %s", req.ApplicationID))
	}

	metrics.ChatMessagesAppended.WithLabelValues(string(msg.SenderRole)).Inc()
	s.log.Debug("Chat message appended", map[string]interface{}{
		"application_id": msg.ApplicationID, "message_id": msg.ID, "sender_role": msg.SenderRole,
	})
	return msg, nil
}

// ListForApplication returns the thread oldest first; equal timestamps keep storage order.
func (s *chatService) ListForApplication(ctx context.Context, req *dto.ListChatMessagesRequest) ([]models.ChatMessage, error) {
	msgs, err := s.msgRepo.ListByApplication(ctx, req.ApplicationID)
	if err != nil {
		metrics.StoreErrors.WithLabelValues("list_messages").Inc()
		s.log.WithError(err).Error("ListForApplication: error loading messages", map[string]interface{}{
			"application_id": req.ApplicationID,
		})
		return nil, MapRepoError(err, fmt.Sprintf("listing messages for application %s", req.ApplicationID))
	}
	if msgs == nil {
		msgs = []models.ChatMessage{}
	}
	slices.SortStableFunc(msgs, func(a, b models.ChatMessage) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return msgs, nil
}
