package handlers

import (
	"net/http"

	"shiftmatch/internal/logger"
	"shiftmatch/internal/services"
	"shiftmatch/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// JobApplicationHandler holds dependencies for job application operations.
type JobApplicationHandler struct {
	service   services.JobApplicationService
	validator *validator.Validate
	log       logger.Logger
}

// NewJobApplicationHandler creates a new JobApplicationHandler.
func NewJobApplicationHandler(service services.JobApplicationService, validate *validator.Validate, log logger.Logger) *JobApplicationHandler {
	return &JobApplicationHandler{
		service:   service,
		validator: validate,
		log:       log,
	}
}

// CreateApplication godoc
//
//	@Summary		Apply for a job
//	@Description	A worker applies to an employer's job. The application starts out pending.
//	@Tags			job_applications
//	@Accept			json
//	@Produce		json
//	@Param			application	body		dto.CreateJobApplicationRequest	true	"Job, worker and employer ids"
//	@Success		201			{object}	dto.JobApplicationResponse
//	@Failure		400			{object}	map[string]string
//	@Failure		503			{object}	map[string]string
//	@Router			/applications [post]
func (h *JobApplicationHandler) CreateApplication(c *gin.Context) {
	var req dto.CreateJobApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	application, err := h.service.CreateApplication(c.Request.Context(), &req)
	if err != nil {
		h.log.WithError(err).Error("CreateApplication: error creating application", map[string]interface{}{"job_id": req.JobID})
		respondServiceError(c, err, "Failed to create application")
		return
	}

	c.JSON(http.StatusCreated, MapJobApplicationModelToResponse(application))
}

// GetApplicationByID godoc
//
//	@Summary	Get a job application by ID
//	@Tags		job_applications
//	@Produce	json
//	@Param		id	path		string	true	"Application ID"
//	@Success	200	{object}	dto.JobApplicationResponse
//	@Failure	404	{object}	map[string]string
//	@Router		/applications/{id} [get]
func (h *JobApplicationHandler) GetApplicationByID(c *gin.Context) {
	req := dto.GetJobApplicationByIDRequest{ID: c.Param("id")}

	application, err := h.service.GetApplicationByID(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve application")
		return
	}

	c.JSON(http.StatusOK, MapJobApplicationModelToResponse(application))
}

// ListApplications godoc
//
//	@Summary		List job applications
//	@Description	Filters by job, worker, employer and status; newest first.
//	@Tags			job_applications
//	@Produce		json
//	@Param			job_id		query		string	false	"Job ID"
//	@Param			worker_id	query		string	false	"Worker ID"
//	@Param			employer_id	query		string	false	"Employer ID"
//	@Param			status		query		string	false	"pending, accepted, rejected or canceled"
//	@Success		200			{array}		dto.JobApplicationResponse
//	@Router			/applications [get]
func (h *JobApplicationHandler) ListApplications(c *gin.Context) {
	var req dto.ListJobApplicationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	applications, err := h.service.ListApplications(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to list applications")
		return
	}

	resp := make([]dto.JobApplicationResponse, 0, len(applications))
	for i := range applications {
		resp = append(resp, MapJobApplicationModelToResponse(&applications[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// RespondToApplication godoc
//
//	@Summary		Accept or reject a pending application
//	@Tags			job_applications
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string								true	"Application ID"
//	@Param			decision	body		dto.RespondToApplicationRequest	true	"accepted or rejected"
//	@Success		200			{object}	dto.JobApplicationResponse
//	@Failure		409			{object}	map[string]string	"Application is not pending"
//	@Router			/applications/{id}/respond [patch]
func (h *JobApplicationHandler) RespondToApplication(c *gin.Context) {
	var req dto.RespondToApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ApplicationID = c.Param("id")
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	application, err := h.service.RespondToApplication(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to respond to application")
		return
	}

	c.JSON(http.StatusOK, MapJobApplicationModelToResponse(application))
}

// CancelApplication godoc
//
//	@Summary	Cancel a pending or accepted application
//	@Tags		job_applications
//	@Produce	json
//	@Param		id	path		string	true	"Application ID"
//	@Success	200	{object}	dto.JobApplicationResponse
//	@Failure	409	{object}	map[string]string	"Application already rejected or canceled"
//	@Router		/applications/{id}/cancel [patch]
func (h *JobApplicationHandler) CancelApplication(c *gin.Context) {
	req := dto.CancelApplicationRequest{ApplicationID: c.Param("id")}

	application, err := h.service.CancelApplication(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to cancel application")
		return
	}

	c.JSON(http.StatusOK, MapJobApplicationModelToResponse(application))
}

// ConfirmLegal godoc
//
//	@Summary		Confirm the legal terms for one party
//	@Description	Only accepted applications take confirmations. Confirming twice is harmless.
//	@Tags			job_applications
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Application ID"
//	@Param			party	body		dto.ConfirmLegalRequest	true	"employer or worker"
//	@Success		200		{object}	dto.JobApplicationResponse
//	@Failure		409		{object}	map[string]string	"Application is not accepted"
//	@Router			/applications/{id}/confirm [patch]
func (h *JobApplicationHandler) ConfirmLegal(c *gin.Context) {
	var req dto.ConfirmLegalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ApplicationID = c.Param("id")
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	application, err := h.service.ConfirmLegal(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to confirm legal terms")
		return
	}

	c.JSON(http.StatusOK, MapJobApplicationModelToResponse(application))
}

// GetDisclosure godoc
//
//	@Summary		Whether contact details may be shown
//	@Description	Unknown applications are simply not authorized.
//	@Tags			job_applications
//	@Produce		json
//	@Param			id	path		string	true	"Application ID"
//	@Success		200	{object}	dto.DisclosureResponse
//	@Router			/applications/{id}/disclosure [get]
func (h *JobApplicationHandler) GetDisclosure(c *gin.Context) {
	applicationID := c.Param("id")

	authorized, err := h.service.IsDisclosureAuthorized(c.Request.Context(), applicationID)
	if err != nil {
		respondServiceError(c, err, "Failed to evaluate disclosure")
		return
	}

	c.JSON(http.StatusOK, dto.DisclosureResponse{ApplicationID: applicationID, Authorized: authorized})
}
