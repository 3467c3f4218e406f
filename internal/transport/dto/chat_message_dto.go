package dto

import "shiftmatch/internal/models"

// AppendChatMessageRequest adds one message to an application's thread.
type AppendChatMessageRequest struct {
	ApplicationID string       `json:"-" validate:"required"` // From path
	SenderRole    models.Party `json:"sender_role" validate:"required,oneof=employer worker"`
	Text          string       `json:"text" validate:"required"`
}

type ListChatMessagesRequest struct {
	ApplicationID string `json:"-" validate:"required"` // From path
}

type ChatMessageResponse struct {
	ID            string       `json:"id"`
	ApplicationID string       `json:"application_id"`
	SenderRole    models.Party `json:"sender_role"`
	Text          string       `json:"text"`
	CreatedAt     string       `json:"created_at"`
}
