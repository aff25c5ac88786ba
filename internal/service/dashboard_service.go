package service

import (
	"context"
	"sort"

	"sportvenue-backend/internal/domain"
	"sportvenue-backend/internal/repository"
	"sportvenue-backend/pkg/errors"
	"sportvenue-backend/pkg/logger"
)

// DashboardService serves the admin dashboard's booking requests table
type DashboardService struct {
	bookings repository.BookingRequestRepository
	schedule repository.ScheduleRepository
	log      *logger.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	bookings repository.BookingRequestRepository,
	schedule repository.ScheduleRepository,
	log *logger.Logger,
) *DashboardService {
	return &DashboardService{
		bookings: bookings,
		schedule: schedule,
		log:      log,
	}
}

// Requests returns the booking requests table filtered and sorted per query
func (s *DashboardService) Requests(ctx context.Context, query RequestQuery) ([]domain.BookingRequest, error) {
	requests, err := s.bookings.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterAndSortRequests(requests, query), nil
}

// Activities returns the distinct activity names present in the requests
// list, sorted, for the dashboard's activity filter dropdown
func (s *DashboardService) Activities(ctx context.Context) ([]string, error) {
	requests, err := s.bookings.List(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	names := make([]string, 0)
	for _, request := range requests {
		if !seen[request.Activity] {
			seen[request.Activity] = true
			names = append(names, request.Activity)
		}
	}

	sort.Slice(names, func(i, j int) bool {
		return requestCollator.CompareString(names[i], names[j]) < 0
	})
	return names, nil
}

// UpdateStatus moves a booking request to a new status. The transition table
// is consulted even though it currently permits every move. When a request
// becomes paid it is placed on the schedule.
func (s *DashboardService) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) (*domain.BookingRequest, error) {
	if !domain.IsValidStatus(status) {
		return nil, errors.NewValidationError("unknown status", map[string]interface{}{"status": string(status)})
	}

	request, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !domain.CanTransition(request.Status, status) {
		return nil, errors.NewConflictError("status transition not allowed")
	}

	if err := s.bookings.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	if status == domain.StatusPaid && request.Status != domain.StatusPaid {
		s.placeOnSchedule(ctx, request)
	}

	request.Status = status
	s.log.WithFields(map[string]interface{}{
		"request_id": id,
		"status":     string(status),
	}).Info("Booking request status updated")

	return request, nil
}

// placeOnSchedule derives a schedule entry from a paid request. Requests
// whose time range cannot be parsed stay off the grid rather than failing
// the status update.
func (s *DashboardService) placeOnSchedule(ctx context.Context, request *domain.BookingRequest) {
	start, end, err := ParseTimeRange(request.Time)
	if err != nil {
		s.log.WithError(err).WithField("request_id", request.ID).Warn("Paid request has no parseable time range, skipping schedule placement")
		return
	}

	entry := &domain.ScheduleEntry{
		ID:        request.ID,
		GuestName: request.GuestName,
		Activity:  request.Activity,
		Date:      request.Date,
		StartTime: start,
		EndTime:   end,
		Status:    domain.StatusPaid,
	}
	if err := s.schedule.Create(ctx, entry); err != nil {
		s.log.WithError(err).WithField("request_id", request.ID).Warn("Failed to place paid request on schedule")
	}
}
