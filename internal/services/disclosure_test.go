package services_test

import (
	"testing"

	"shiftmatch/internal/models"
	"shiftmatch/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestIsDisclosureAuthorized_Policy(t *testing.T) {
	statuses := []models.ApplicationStatus{
		models.ApplicationStatusPending,
		models.ApplicationStatusAccepted,
		models.ApplicationStatusRejected,
		models.ApplicationStatusCanceled,
	}
	for _, status := range statuses {
		for _, employer := range []bool{false, true} {
			for _, worker := range []bool{false, true} {
				app := &models.JobApplication{
					Status:                 status,
					EmployerConfirmedLegal: employer,
					WorkerConfirmedLegal:   worker,
				}
				want := status == models.ApplicationStatusAccepted && employer && worker
				assert.Equal(t, want, services.IsDisclosureAuthorized(app),
					"status=%s employer=%v worker=%v", status, employer, worker)
			}
		}
	}
	assert.False(t, services.IsDisclosureAuthorized(nil))
}
