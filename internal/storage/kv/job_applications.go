package kv

import (
	"context"
	"fmt"
	"slices"

	"shiftmatch/internal/kvstore"
	"shiftmatch/internal/models"
	"shiftmatch/internal/storage"
)

// JobApplicationRepo implements storage.JobApplicationRepository as one JSON array under ApplicationsKey.
type JobApplicationRepo struct {
	store kvstore.Store
}

// NewJobApplicationRepo creates a new JobApplicationRepo.
func NewJobApplicationRepo(store kvstore.Store) *JobApplicationRepo {
	return &JobApplicationRepo{store: store}
}

// Compile-time check to ensure JobApplicationRepo implements JobApplicationRepository
var _ storage.JobApplicationRepository = (*JobApplicationRepo)(nil)

func (r *JobApplicationRepo) load(ctx context.Context) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	if _, err := kvstore.GetJSON(ctx, r.store, ApplicationsKey, &apps); err != nil {
		return nil, fmt.Errorf("failed to load job applications: %w", err)
	}
	return apps, nil
}

func (r *JobApplicationRepo) Create(ctx context.Context, app *models.JobApplication) error {
	err := kvstore.UpdateJSON(ctx, r.store, ApplicationsKey, func(apps *[]models.JobApplication) error {
		if slices.ContainsFunc(*apps, func(a models.JobApplication) bool { return a.ID == app.ID }) {
			return fmt.Errorf("job application %s already exists: %w", app.ID, storage.ErrConflict)
		}
		*apps = append(*apps, *app)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create job application: %w", err)
	}
	return nil
}

func (r *JobApplicationRepo) GetByID(ctx context.Context, id string) (*models.JobApplication, error) {
	apps, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range apps {
		if apps[i].ID == id {
			return &apps[i], nil
		}
	}
	return nil, storage.ErrNotFound
}

// List returns matching applications newest first.
func (r *JobApplicationRepo) List(ctx context.Context, filter storage.ApplicationFilter) ([]models.JobApplication, error) {
	apps, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.JobApplication, 0, len(apps))
	for i := len(apps) - 1; i >= 0; i-- {
		if filter.Matches(&apps[i]) {
			out = append(out, apps[i])
		}
	}
	slices.SortStableFunc(out, func(a, b models.JobApplication) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out, nil
}

func (r *JobApplicationRepo) Update(ctx context.Context, id string, fn func(app *models.JobApplication) error) (*models.JobApplication, error) {
	var updated models.JobApplication
	err := kvstore.UpdateJSON(ctx, r.store, ApplicationsKey, func(apps *[]models.JobApplication) error {
		idx := slices.IndexFunc(*apps, func(a models.JobApplication) bool { return a.ID == id })
		if idx < 0 {
			return storage.ErrNotFound
		}
		// Mutate a copy so a rejected change never reaches the slice that gets written.
		app := (*apps)[idx]
		if err := fn(&app); err != nil {
			return err
		}
		(*apps)[idx] = app
		updated = app
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
