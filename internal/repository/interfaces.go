package repository

import (
	"context"

	"sportvenue-backend/internal/domain"
)

// ActivityRepository defines the interface for activity catalog operations
type ActivityRepository interface {
	// List retrieves all activities, optionally including archived ones
	List(ctx context.Context, includeArchived bool) ([]domain.Activity, error)

	// GetBySlug retrieves an activity by its public slug
	GetBySlug(ctx context.Context, slug string) (*domain.Activity, error)

	// GetByID retrieves an activity by ID
	GetByID(ctx context.Context, id string) (*domain.Activity, error)

	// Create stores a new activity
	Create(ctx context.Context, activity *domain.Activity) error

	// Update replaces an existing activity by ID
	Update(ctx context.Context, activity *domain.Activity) error

	// SetArchived archives or restores an activity
	SetArchived(ctx context.Context, id string, archived bool) error
}

// BookingRequestRepository defines the interface for booking request operations
type BookingRequestRepository interface {
	// List retrieves all booking requests in insertion order
	List(ctx context.Context) ([]domain.BookingRequest, error)

	// GetByID retrieves a booking request by request ID
	GetByID(ctx context.Context, id string) (*domain.BookingRequest, error)

	// Create stores a new booking request
	Create(ctx context.Context, request *domain.BookingRequest) error

	// UpdateStatus replaces the status of the request with the given ID
	UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) error
}

// ScheduleRepository defines the interface for schedule entry operations
type ScheduleRepository interface {
	// List retrieves all schedule entries in insertion order
	List(ctx context.Context) ([]domain.ScheduleEntry, error)

	// Create stores a new schedule entry
	Create(ctx context.Context, entry *domain.ScheduleEntry) error
}

// Repositories aggregates all repository interfaces
type Repositories struct {
	Activity ActivityRepository
	Booking  BookingRequestRepository
	Schedule ScheduleRepository
}
