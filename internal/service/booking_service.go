package service

import (
	"context"

	"sportvenue-backend/internal/domain"
	"sportvenue-backend/internal/repository"
	"sportvenue-backend/pkg/errors"
	"sportvenue-backend/pkg/logger"
)

// BookingService turns booking drafts into confirmed requests
type BookingService struct {
	activities repository.ActivityRepository
	bookings   repository.BookingRequestRepository
	ids        RequestIDSource
	log        *logger.Logger
}

// NewBookingService creates a new booking service
func NewBookingService(
	activities repository.ActivityRepository,
	bookings repository.BookingRequestRepository,
	ids RequestIDSource,
	log *logger.Logger,
) *BookingService {
	return &BookingService{
		activities: activities,
		bookings:   bookings,
		ids:        ids,
		log:        log,
	}
}

// Quote computes the live total for a draft without submitting it
func (s *BookingService) Quote(ctx context.Context, draft *domain.BookingDraft) (int, error) {
	activity, err := s.resolveActivity(ctx, draft.ActivityType)
	if err != nil {
		return 0, err
	}
	return ComputeTotal(activity, draft.Times, draft.AddOnsQuantities), nil
}

// Submit consumes a draft and produces its confirmation. The total is
// computed at submission time, a request identifier is issued, and the
// confirmed request lands on the admin dashboard as a new booking request.
func (s *BookingService) Submit(ctx context.Context, draft *domain.BookingDraft) (*domain.BookingConfirmation, error) {
	activity, err := s.resolveActivity(ctx, draft.ActivityType)
	if err != nil {
		return nil, err
	}

	requestID, err := s.ids.Next()
	if err != nil {
		return nil, errors.NewInternalError("failed to issue request ID", err)
	}

	total := ComputeTotal(activity, draft.Times, draft.AddOnsQuantities)

	confirmation := &domain.BookingConfirmation{
		RequestID:        requestID,
		FirstName:        draft.FirstName,
		LastName:         draft.LastName,
		Phone:            draft.Phone,
		Email:            draft.Email,
		ActivityName:     activity.Name,
		BookingType:      draft.BookingType,
		Date:             draft.Date,
		Times:            draft.Times,
		AddOnsQuantities: draft.AddOnsQuantities,
		TotalAmount:      total,
	}

	request := &domain.BookingRequest{
		ID:          requestID,
		GuestName:   draft.GuestName(),
		Activity:    activity.Name,
		Date:        draft.Date,
		Time:        FormatTimeRange(draft.Times),
		TotalAmount: total,
		Status:      domain.StatusNew,
	}
	if err := s.bookings.Create(ctx, request); err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{
		"request_id": requestID,
		"activity":   activity.Slug,
		"total":      total,
	}).Info("Booking request submitted")

	return confirmation, nil
}

// resolveActivity looks up a bookable activity by slug; archived activities
// are not bookable
func (s *BookingService) resolveActivity(ctx context.Context, slug string) (*domain.Activity, error) {
	activity, err := s.activities.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if activity.IsArchived {
		return nil, errors.NewNotFoundError("activity not found")
	}
	return activity, nil
}
