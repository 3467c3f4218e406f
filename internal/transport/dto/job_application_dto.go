package dto

import (
	"shiftmatch/internal/models"
)

// CreateJobApplicationRequest is sent when a worker applies to a job.
type CreateJobApplicationRequest struct {
	JobID      string `json:"job_id" validate:"required"`
	WorkerID   string `json:"worker_id" validate:"required"`
	EmployerID string `json:"employer_id" validate:"required"`
}

type GetJobApplicationByIDRequest struct {
	ID string `json:"-" validate:"required"` // From path
}

// ListJobApplicationsRequest filters applications. Empty fields match everything.
type ListJobApplicationsRequest struct {
	JobID      string                   `form:"job_id"`
	WorkerID   string                   `form:"worker_id"`
	EmployerID string                   `form:"employer_id"`
	Status     models.ApplicationStatus `form:"status" validate:"omitempty,oneof=pending accepted rejected canceled"`
}

// RespondToApplicationRequest is the employer's decision on a pending application.
type RespondToApplicationRequest struct {
	ApplicationID string                   `json:"-" validate:"required"` // From path
	Decision      models.ApplicationStatus `json:"decision" validate:"required,oneof=accepted rejected"`
}

type CancelApplicationRequest struct {
	ApplicationID string `json:"-" validate:"required"` // From path
}

// ConfirmLegalRequest records one party's acceptance of the legal terms.
type ConfirmLegalRequest struct {
	ApplicationID string       `json:"-" validate:"required"` // From path
	Party         models.Party `json:"party" validate:"required,oneof=employer worker"`
}

type JobApplicationResponse struct {
	ID                     string                   `json:"id"`
	JobID                  string                   `json:"job_id"`
	WorkerID               string                   `json:"worker_id"`
	EmployerID             string                   `json:"employer_id"`
	Status                 models.ApplicationStatus `json:"status"`
	CreatedAt              string                   `json:"created_at"`
	RespondedAt            *string                  `json:"responded_at,omitempty"`
	EmployerConfirmedLegal bool                     `json:"employer_confirmed_legal"`
	WorkerConfirmedLegal   bool                     `json:"worker_confirmed_legal"`
	DisclosureAuthorized   bool                     `json:"disclosure_authorized"`
}

type DisclosureResponse struct {
	ApplicationID string `json:"application_id"`
	Authorized    bool   `json:"authorized"`
}
