package repository

import (
	"context"
	"sync"

	"sportvenue-backend/internal/domain"
	"sportvenue-backend/pkg/errors"
)

// MemoryBookingRequestRepository is an in-memory BookingRequestRepository.
// Insertion order is preserved so that stable sorts fall back to it.
type MemoryBookingRequestRepository struct {
	mu       sync.RWMutex
	requests []domain.BookingRequest
}

// NewMemoryBookingRequestRepository creates a booking request repository
// seeded with the sample dashboard data
func NewMemoryBookingRequestRepository() *MemoryBookingRequestRepository {
	return &MemoryBookingRequestRepository{
		requests: SeedBookingRequests(),
	}
}

// List retrieves all booking requests in insertion order
func (r *MemoryBookingRequestRepository) List(ctx context.Context) ([]domain.BookingRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.BookingRequest, len(r.requests))
	copy(result, r.requests)
	return result, nil
}

// GetByID retrieves a booking request by request ID
func (r *MemoryBookingRequestRepository) GetByID(ctx context.Context, id string) (*domain.BookingRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, request := range r.requests {
		if request.ID == id {
			found := request
			return &found, nil
		}
	}
	return nil, errors.NewNotFoundError("booking request not found")
}

// Create stores a new booking request
func (r *MemoryBookingRequestRepository) Create(ctx context.Context, request *domain.BookingRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.requests {
		if existing.ID == request.ID {
			return errors.NewConflictError("booking request already exists")
		}
	}
	r.requests = append(r.requests, *request)
	return nil
}

// UpdateStatus replaces the status of the request with the given ID
func (r *MemoryBookingRequestRepository) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.requests {
		if r.requests[i].ID == id {
			r.requests[i].Status = status
			return nil
		}
	}
	return errors.NewNotFoundError("booking request not found")
}
