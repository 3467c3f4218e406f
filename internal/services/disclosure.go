package services

import "shiftmatch/internal/models"

// IsDisclosureAuthorized decides whether contact details may be shown to both parties:
// the application must be accepted and both sides must have confirmed the legal terms.
func IsDisclosureAuthorized(app *models.JobApplication) bool {
	if app == nil {
		return false
	}
	return app.Status == models.ApplicationStatusAccepted &&
		app.EmployerConfirmedLegal &&
		app.WorkerConfirmedLegal
}
