package repository

import (
	"context"
	"sync"

	"sportvenue-backend/internal/domain"
	"sportvenue-backend/pkg/errors"
)

// MemoryActivityRepository is an in-memory ActivityRepository. All catalog
// data is process-lifetime only; there is no backing store.
type MemoryActivityRepository struct {
	mu         sync.RWMutex
	activities []domain.Activity
}

// NewMemoryActivityRepository creates an activity repository seeded with the
// sample catalog
func NewMemoryActivityRepository() *MemoryActivityRepository {
	return &MemoryActivityRepository{
		activities: SeedActivities(),
	}
}

// List retrieves all activities, optionally including archived ones
func (r *MemoryActivityRepository) List(ctx context.Context, includeArchived bool) ([]domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Activity, 0, len(r.activities))
	for _, activity := range r.activities {
		if !includeArchived && activity.IsArchived {
			continue
		}
		result = append(result, activity)
	}
	return result, nil
}

// GetBySlug retrieves an activity by its public slug
func (r *MemoryActivityRepository) GetBySlug(ctx context.Context, slug string) (*domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, activity := range r.activities {
		if activity.Slug == slug {
			found := activity
			return &found, nil
		}
	}
	return nil, errors.NewNotFoundError("activity not found")
}

// GetByID retrieves an activity by ID
func (r *MemoryActivityRepository) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, activity := range r.activities {
		if activity.ID == id {
			found := activity
			return &found, nil
		}
	}
	return nil, errors.NewNotFoundError("activity not found")
}

// Create stores a new activity
func (r *MemoryActivityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.activities {
		if existing.ID == activity.ID || (activity.Slug != "" && existing.Slug == activity.Slug) {
			return errors.NewConflictError("activity already exists")
		}
	}
	r.activities = append(r.activities, *activity)
	return nil
}

// Update replaces an existing activity by ID
func (r *MemoryActivityRepository) Update(ctx context.Context, activity *domain.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.activities {
		if existing.ID == activity.ID {
			r.activities[i] = *activity
			return nil
		}
	}
	return errors.NewNotFoundError("activity not found")
}

// SetArchived archives or restores an activity
func (r *MemoryActivityRepository) SetArchived(ctx context.Context, id string, archived bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.activities {
		if r.activities[i].ID == id {
			r.activities[i].IsArchived = archived
			return nil
		}
	}
	return errors.NewNotFoundError("activity not found")
}
