package models

import (
	"fmt"
	"time"
)

// --- Application Status Enum ---
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
	ApplicationStatusCanceled ApplicationStatus = "canceled"
)

// Valid reports whether s is one of the four known statuses.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusAccepted, ApplicationStatusRejected, ApplicationStatusCanceled:
		return true
	default:
		return false
	}
}

// UnmarshalText rejects unknown statuses so a corrupted collection surfaces as a decode error.
func (s *ApplicationStatus) UnmarshalText(text []byte) error {
	v := ApplicationStatus(text)
	if !v.Valid() {
		return fmt.Errorf("invalid ApplicationStatus value: %s", text)
	}
	*s = v
	return nil
}

// --- Party Enum ---

// Party is one side of an application: the employer or the worker.
// It is both the author of a chat message and the confirming side of the legal terms.
type Party string

const (
	PartyEmployer Party = "employer"
	PartyWorker   Party = "worker"
)

// Valid reports whether p is exactly one of the two parties.
func (p Party) Valid() bool {
	return p == PartyEmployer || p == PartyWorker
}

// UnmarshalText rejects anything but the two parties.
func (p *Party) UnmarshalText(text []byte) error {
	v := Party(text)
	if !v.Valid() {
		return fmt.Errorf("invalid Party value: %s", text)
	}
	*p = v
	return nil
}

// JobApplication is a worker's application to an employer's job.
type JobApplication struct {
	ID         string `json:"id"`
	JobID      string `json:"jobId"`
	WorkerID   string `json:"workerId"`
	EmployerID string `json:"employerId"`

	CreatedAt time.Time `json:"createdAt"`
	// Set exactly when Status leaves pending.
	RespondedAt *time.Time `json:"respondedAt,omitempty"`

	Status ApplicationStatus `json:"status"`

	EmployerConfirmedLegal bool `json:"employerConfirmedLegal"`
	WorkerConfirmedLegal   bool `json:"workerConfirmedLegal"`
}

// ConfirmedLegal returns the confirmation flag owned by p.
func (a *JobApplication) ConfirmedLegal(p Party) bool {
	switch p {
	case PartyEmployer:
		return a.EmployerConfirmedLegal
	case PartyWorker:
		return a.WorkerConfirmedLegal
	default:
		return false
	}
}

// ChatMessage is one entry in an application's chat thread.
type ChatMessage struct {
	ID            string    `json:"id"`
	ApplicationID string    `json:"applicationId"`
	SenderRole    Party     `json:"senderRole"`
	Text          string    `json:"text"`
	CreatedAt     time.Time `json:"createdAt"`
}
