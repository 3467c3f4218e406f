package services

import (
	"context"

	"shiftmatch/internal/models"
	"shiftmatch/internal/transport/dto"
)

// JobApplicationService defines the interface for job application business logic.
type JobApplicationService interface {
	CreateApplication(ctx context.Context, req *dto.CreateJobApplicationRequest) (*models.JobApplication, error)
	GetApplicationByID(ctx context.Context, req *dto.GetJobApplicationByIDRequest) (*models.JobApplication, error)
	ListApplications(ctx context.Context, req *dto.ListJobApplicationsRequest) ([]models.JobApplication, error)
	RespondToApplication(ctx context.Context, req *dto.RespondToApplicationRequest) (*models.JobApplication, error)
	CancelApplication(ctx context.Context, req *dto.CancelApplicationRequest) (*models.JobApplication, error)
	ConfirmLegal(ctx context.Context, req *dto.ConfirmLegalRequest) (*models.JobApplication, error)
	// IsDisclosureAuthorized is false, not an error, for unknown applications.
	IsDisclosureAuthorized(ctx context.Context, applicationID string) (bool, error)
}

// ChatService defines the interface for the per-application message log.
type ChatService interface {
	AppendMessage(ctx context.Context, req *dto.AppendChatMessageRequest) (*models.ChatMessage, error)
	// ListForApplication never fails for an unknown application; it returns an empty thread.
	ListForApplication(ctx context.Context, req *dto.ListChatMessagesRequest) ([]models.ChatMessage, error)
}
