package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"shiftmatch/internal/models"
	"shiftmatch/internal/services"
	"shiftmatch/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func FormatValidationErrors(err error) map[string]string {
	errorsMap := make(map[string]string)
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errorsMap["error"] = "Invalid validation error type"
		return errorsMap
	}
	for _, fieldError := range validationErrors {
		fieldName := fieldError.Field()
		errorsMap[fieldName] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fieldName, fieldError.Tag())
		switch fieldError.Tag() {
		case "required":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' is required", fieldName)
		case "oneof":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be one of: %s", fieldName, fieldError.Param())
		case "gte":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at least %s", fieldName, fieldError.Param())
		}
	}
	return errorsMap
}

// respondServiceError maps service errors onto HTTP statuses.
func respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
	case errors.Is(err, services.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrStorage):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage temporarily unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// MapJobApplicationModelToResponse converts a models.JobApplication to a dto.JobApplicationResponse
func MapJobApplicationModelToResponse(app *models.JobApplication) dto.JobApplicationResponse {
	resp := dto.JobApplicationResponse{
		ID:                     app.ID,
		JobID:                  app.JobID,
		WorkerID:               app.WorkerID,
		EmployerID:             app.EmployerID,
		Status:                 app.Status,
		CreatedAt:              app.CreatedAt.Format(time.RFC3339Nano),
		EmployerConfirmedLegal: app.EmployerConfirmedLegal,
		WorkerConfirmedLegal:   app.WorkerConfirmedLegal,
		DisclosureAuthorized:   services.IsDisclosureAuthorized(app),
	}
	if app.RespondedAt != nil {
		respondedAt := app.RespondedAt.Format(time.RFC3339Nano)
		resp.RespondedAt = &respondedAt
	}
	return resp
}

// MapChatMessageModelToResponse converts a models.ChatMessage to a dto.ChatMessageResponse
func MapChatMessageModelToResponse(msg *models.ChatMessage) dto.ChatMessageResponse {
	return dto.ChatMessageResponse{
		ID:            msg.ID,
		ApplicationID: msg.ApplicationID,
		SenderRole:    msg.SenderRole,
		Text:          msg.Text,
		CreatedAt:     msg.CreatedAt.Format(time.RFC3339Nano),
	}
}
