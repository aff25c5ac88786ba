package repository

import (
	"context"
	"sync"

	"sportvenue-backend/internal/domain"
	"sportvenue-backend/pkg/errors"
)

// MemoryScheduleRepository is an in-memory ScheduleRepository. The grid
// builder relies on insertion order when entries overlap.
type MemoryScheduleRepository struct {
	mu      sync.RWMutex
	entries []domain.ScheduleEntry
}

// NewMemoryScheduleRepository creates a schedule repository seeded with the
// sample paid bookings
func NewMemoryScheduleRepository() *MemoryScheduleRepository {
	return &MemoryScheduleRepository{
		entries: SeedScheduleEntries(),
	}
}

// List retrieves all schedule entries in insertion order
func (r *MemoryScheduleRepository) List(ctx context.Context) ([]domain.ScheduleEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.ScheduleEntry, len(r.entries))
	copy(result, r.entries)
	return result, nil
}

// Create stores a new schedule entry
func (r *MemoryScheduleRepository) Create(ctx context.Context, entry *domain.ScheduleEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.entries {
		if existing.ID == entry.ID {
			return errors.NewConflictError("schedule entry already exists")
		}
	}
	r.entries = append(r.entries, *entry)
	return nil
}
