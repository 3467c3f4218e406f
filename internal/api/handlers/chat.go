package handlers

import (
	"net/http"

	"shiftmatch/internal/logger"
	"shiftmatch/internal/services"
	"shiftmatch/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ChatHandler serves an application's message thread.
type ChatHandler struct {
	service   services.ChatService
	validator *validator.Validate
	log       logger.Logger
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(service services.ChatService, validate *validator.Validate, log logger.Logger) *ChatHandler {
	return &ChatHandler{
		service:   service,
		validator: validate,
		log:       log,
	}
}

// AppendMessage godoc
//
//	@Summary	Post a message to an application's thread
//	@Tags		chat
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string							true	"Application ID"
//	@Param		message	body		dto.AppendChatMessageRequest	true	"Sender role and text"
//	@Success	201		{object}	dto.ChatMessageResponse
//	@Failure	400		{object}	map[string]string	"Empty text or unknown sender role"
//	@Router		/applications/{id}/messages [post]
func (h *ChatHandler) AppendMessage(c *gin.Context) {
	var req dto.AppendChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ApplicationID = c.Param("id")
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	msg, err := h.service.AppendMessage(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to send message")
		return
	}

	c.JSON(http.StatusCreated, MapChatMessageModelToResponse(msg))
}

// ListMessages godoc
//
//	@Summary	List an application's thread, oldest first
//	@Tags		chat
//	@Produce	json
//	@Param		id	path	string	true	"Application ID"
//	@Success	200	{array}	dto.ChatMessageResponse
//	@Router		/applications/{id}/messages [get]
func (h *ChatHandler) ListMessages(c *gin.Context) {
	req := dto.ListChatMessagesRequest{ApplicationID: c.Param("id")}

	msgs, err := h.service.ListForApplication(c.Request.Context(), &req)
	if err != nil {
		h.log.WithError(err).Error("ListMessages: error loading thread", map[string]interface{}{"application_id": req.ApplicationID})
		respondServiceError(c, err, "Failed to load messages")
		return
	}

	resp := make([]dto.ChatMessageResponse, 0, len(msgs))
	for i := range msgs {
		resp = append(resp, MapChatMessageModelToResponse(&msgs[i]))
	}
	c.JSON(http.StatusOK, resp)
}
