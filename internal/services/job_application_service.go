package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"shiftmatch/internal/logger"
	"shiftmatch/internal/metrics"
	"shiftmatch/internal/models"
	"shiftmatch/internal/storage"
	"shiftmatch/internal/transport/dto"

	"github.com/google/uuid"
)

type jobApplicationService struct {
	appRepo storage.JobApplicationRepository
	log     logger.Logger
	opts    serviceOptions
}

// NewJobApplicationService creates the application registry on top of appRepo.
func NewJobApplicationService(appRepo storage.JobApplicationRepository, log logger.Logger, opts ...Option) JobApplicationService {
	return &jobApplicationService{
		appRepo: appRepo,
		log:     log.WithFields(map[string]interface{}{"component": "application_registry"}),
		opts:    defaultOptions(opts),
	}
}

// CreateApplication records a worker's application to a job as pending.
func (s *jobApplicationService) CreateApplication(ctx context.Context, req *dto.CreateJobApplicationRequest) (*models.JobApplication, error) {
	// 1. Validate before touching the store
	var missing []string
	if isBlank(req.JobID) {
		missing = append(missing, "job_id")
	}
	if isBlank(req.WorkerID) {
		missing = append(missing, "worker_id")
	}
	if isBlank(req.EmployerID) {
		missing = append(missing, "employer_id")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrValidation, strings.Join(missing, ", "))
	}

	// 2. Build the record
	application := &models.JobApplication{
		ID:         uuid.NewString(),
		JobID:      req.JobID,
		WorkerID:   req.WorkerID,
		EmployerID: req.EmployerID,
		CreatedAt:  s.opts.now().UTC(),
		Status:     models.ApplicationStatusPending,
	}

	// 3. Persist
	if err := s.appRepo.Create(ctx, application); err != nil {
		return nil, s.mapErr(err, fmt.Sprintf("creating application for job %s", req.JobID), "create")
	}

	metrics.ApplicationsCreated.Inc()
	s.log.Info("Job application created", map[string]interface{}{
		"application_id": application.ID, "job_id": application.JobID, "worker_id": application.WorkerID,
	})
	return application, nil
}

// GetApplicationByID retrieves a single application.
func (s *jobApplicationService) GetApplicationByID(ctx context.Context, req *dto.GetJobApplicationByIDRequest) (*models.JobApplication, error) {
	if isBlank(req.ID) {
		return nil, fmt.Errorf("%w: missing application id", ErrValidation)
	}
	application, err := s.appRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, s.mapErr(err, fmt.Sprintf("fetching application %s", req.ID), "get")
	}
	return application, nil
}

// ListApplications returns applications matching the request filters, newest first.
func (s *jobApplicationService) ListApplications(ctx context.Context, req *dto.ListJobApplicationsRequest) ([]models.JobApplication, error) {
	if req.Status != "" && !req.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, req.Status)
	}
	applications, err := s.appRepo.List(ctx, storage.ApplicationFilter{
		JobID:      req.JobID,
		WorkerID:   req.WorkerID,
		EmployerID: req.EmployerID,
		Status:     req.Status,
	})
	if err != nil {
		return nil, s.mapErr(err, "listing applications", "list")
	}
	return applications, nil
}

// RespondToApplication accepts or rejects a pending application.
func (s *jobApplicationService) RespondToApplication(ctx context.Context, req *dto.RespondToApplicationRequest) (*models.JobApplication, error) {
	if isBlank(req.ApplicationID) {
		return nil, fmt.Errorf("%w: missing application id", ErrValidation)
	}
	if req.Decision != models.ApplicationStatusAccepted && req.Decision != models.ApplicationStatusRejected {
		return nil, fmt.Errorf("%w: decision must be accepted or rejected, got %q", ErrValidation, req.Decision)
	}

	var from models.ApplicationStatus
	updated, err := s.appRepo.Update(ctx, req.ApplicationID, func(app *models.JobApplication) error {
		from = app.Status
		if app.Status != models.ApplicationStatusPending || !isValidApplicationTransition(app.Status, req.Decision) {
			return fmt.Errorf("%w: application is not pending, current status: %s", ErrInvalidTransition, app.Status)
		}
		now := s.opts.now().UTC()
		app.Status = req.Decision
		app.RespondedAt = &now
		return nil
	})
	if err != nil {
		return nil, s.mapErr(err, fmt.Sprintf("responding to application %s", req.ApplicationID), "respond")
	}

	metrics.ApplicationTransitions.WithLabelValues(string(from), string(updated.Status)).Inc()
	s.log.Info("Job application responded", map[string]interface{}{
		"application_id": updated.ID, "status": updated.Status,
	})
	return updated, nil
}

// CancelApplication calls off a pending or accepted application.
func (s *jobApplicationService) CancelApplication(ctx context.Context, req *dto.CancelApplicationRequest) (*models.JobApplication, error) {
	if isBlank(req.ApplicationID) {
		return nil, fmt.Errorf("%w: missing application id", ErrValidation)
	}

	var from models.ApplicationStatus
	updated, err := s.appRepo.Update(ctx, req.ApplicationID, func(app *models.JobApplication) error {
		from = app.Status
		if !isValidApplicationTransition(app.Status, models.ApplicationStatusCanceled) {
			return fmt.Errorf("%w: cannot cancel application in status %s", ErrInvalidTransition, app.Status)
		}
		app.Status = models.ApplicationStatusCanceled
		if app.RespondedAt == nil {
			now := s.opts.now().UTC()
			app.RespondedAt = &now
		}
		return nil
	})
	if err != nil {
		return nil, s.mapErr(err, fmt.Sprintf("canceling application %s", req.ApplicationID), "cancel")
	}

	metrics.ApplicationTransitions.WithLabelValues(string(from), string(updated.Status)).Inc()
	s.log.Info("Job application canceled", map[string]interface{}{
		"application_id": updated.ID, "previous_status": from,
	})
	return updated, nil
}

// ConfirmLegal sets the calling party's legal confirmation flag. Confirming twice is a no-op.
func (s *jobApplicationService) ConfirmLegal(ctx context.Context, req *dto.ConfirmLegalRequest) (*models.JobApplication, error) {
	if isBlank(req.ApplicationID) {
		return nil, fmt.Errorf("%w: missing application id", ErrValidation)
	}
	if !req.Party.Valid() {
		return nil, fmt.Errorf("%w: unknown party %q", ErrValidation, req.Party)
	}

	changed := false
	updated, err := s.appRepo.Update(ctx, req.ApplicationID, func(app *models.JobApplication) error {
		changed = false
		if app.Status != models.ApplicationStatusAccepted {
			return fmt.Errorf("%w: legal terms can only be confirmed on accepted applications, current status: %s", ErrInvalidTransition, app.Status)
		}
		switch req.Party {
		case models.PartyEmployer:
			changed = !app.EmployerConfirmedLegal
			app.EmployerConfirmedLegal = true
		case models.PartyWorker:
			changed = !app.WorkerConfirmedLegal
			app.WorkerConfirmedLegal = true
		}
		return nil
	})
	if err != nil {
		return nil, s.mapErr(err, fmt.Sprintf("confirming legal terms on application %s", req.ApplicationID), "confirm_legal")
	}

	if changed {
		metrics.LegalConfirmations.WithLabelValues(string(req.Party)).Inc()
		s.log.Info("Legal terms confirmed", map[string]interface{}{
			"application_id": updated.ID, "party": req.Party, "disclosure_authorized": IsDisclosureAuthorized(updated),
		})
	}
	return updated, nil
}

// IsDisclosureAuthorized loads the application and applies the disclosure policy.
func (s *jobApplicationService) IsDisclosureAuthorized(ctx context.Context, applicationID string) (bool, error) {
	if isBlank(applicationID) {
		return false, nil
	}
	application, err := s.appRepo.GetByID(ctx, applicationID)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, s.mapErr(err, fmt.Sprintf("fetching application %s for disclosure", applicationID), "disclosure")
	}
	return IsDisclosureAuthorized(application), nil
}

// mapErr converts a repository error and records refusals and store failures.
func (s *jobApplicationService) mapErr(err error, operation, op string) error {
	mapped := MapRepoError(err, operation)
	switch {
	case errors.Is(mapped, ErrInvalidTransition):
		metrics.TransitionsRejected.WithLabelValues(op).Inc()
		s.log.Warn("Refused application mutation", map[string]interface{}{"operation": op, "reason": err.Error()})
	case isStorageError(mapped):
		metrics.StoreErrors.WithLabelValues(op).Inc()
		s.log.WithError(err).Error("Unexpected repository error", map[string]interface{}{"operation": operation})
	}
	return mapped
}
