package storage

import (
	"context"

	"shiftmatch/internal/models"
)

// ApplicationFilter narrows List. Empty fields match everything.
type ApplicationFilter struct {
	JobID      string
	WorkerID   string
	EmployerID string
	Status     models.ApplicationStatus
}

// Matches reports whether app satisfies every non-empty field of f.
func (f ApplicationFilter) Matches(app *models.JobApplication) bool {
	if f.JobID != "" && app.JobID != f.JobID {
		return false
	}
	if f.WorkerID != "" && app.WorkerID != f.WorkerID {
		return false
	}
	if f.EmployerID != "" && app.EmployerID != f.EmployerID {
		return false
	}
	if f.Status != "" && app.Status != f.Status {
		return false
	}
	return true
}

// JobApplicationRepository defines the interface for job application data operations.
type JobApplicationRepository interface {
	Create(ctx context.Context, app *models.JobApplication) error
	GetByID(ctx context.Context, id string) (*models.JobApplication, error)
	List(ctx context.Context, filter ApplicationFilter) ([]models.JobApplication, error)
	// Update loads the application, applies fn and persists the result in one atomic step.
	// An error from fn aborts the write and is returned unchanged.
	Update(ctx context.Context, id string, fn func(app *models.JobApplication) error) (*models.JobApplication, error)
}

// ChatMessageRepository defines the interface for chat message data operations.
type ChatMessageRepository interface {
	// Append stores msg at the end of the log. msg.CreatedAt may be raised so the log stays non-decreasing.
	Append(ctx context.Context, msg *models.ChatMessage) error
	ListByApplication(ctx context.Context, applicationID string) ([]models.ChatMessage, error)
}
