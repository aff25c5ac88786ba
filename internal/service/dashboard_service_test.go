package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportvenue-backend/internal/domain"
	"sportvenue-backend/internal/repository"
	"sportvenue-backend/pkg/errors"
)

func setupDashboardService(t *testing.T) (*DashboardService, *repository.MemoryScheduleRepository) {
	t.Helper()
	bookings := repository.NewMemoryBookingRequestRepository()
	schedule := repository.NewMemoryScheduleRepository()
	return NewDashboardService(bookings, schedule, newTestLogger(t)), schedule
}

func TestDashboardService_Requests(t *testing.T) {
	svc, _ := setupDashboardService(t)
	ctx := context.Background()

	result, err := svc.Requests(ctx, RequestQuery{Status: "paid"})
	require.NoError(t, err)

	require.Len(t, result, 1)
	assert.Equal(t, "GR8WV3H", result[0].ID)
}

func TestDashboardService_Activities(t *testing.T) {
	svc, _ := setupDashboardService(t)

	activities, err := svc.Activities(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Badminton Court",
		"Pickleball Court",
		"Pilates Class",
		"Tennis Court",
		"Yoga Class",
	}, activities)
}

func TestDashboardService_UpdateStatus(t *testing.T) {
	t.Run("Moves a request to a new status", func(t *testing.T) {
		svc, _ := setupDashboardService(t)
		ctx := context.Background()

		request, err := svc.UpdateStatus(ctx, "BR7XK9M", domain.StatusReviewed)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusReviewed, request.Status)

		result, err := svc.Requests(ctx, RequestQuery{Search: "BR7XK9M"})
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, domain.StatusReviewed, result[0].Status)
	})

	t.Run("Unknown status is rejected", func(t *testing.T) {
		svc, _ := setupDashboardService(t)

		_, err := svc.UpdateStatus(context.Background(), "BR7XK9M", "archived")
		require.Error(t, err)

		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	})

	t.Run("Unknown request is not found", func(t *testing.T) {
		svc, _ := setupDashboardService(t)

		_, err := svc.UpdateStatus(context.Background(), "ZZZZZZZ", domain.StatusReviewed)
		require.Error(t, err)

		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Equal(t, errors.ErrorTypeNotFound, appErr.Type)
	})
}

func TestDashboardService_PaidRequestLandsOnSchedule(t *testing.T) {
	svc, schedule := setupDashboardService(t)
	ctx := context.Background()

	before, err := schedule.List(ctx)
	require.NoError(t, err)

	// FR2LQ5P is reviewed, 2:00 PM - 4:00 PM on 2025-01-06
	_, err = svc.UpdateStatus(ctx, "FR2LQ5P", domain.StatusPaid)
	require.NoError(t, err)

	after, err := schedule.List(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)

	entry := after[len(after)-1]
	assert.Equal(t, "FR2LQ5P", entry.ID)
	assert.Equal(t, "Jane Smith", entry.GuestName)
	assert.Equal(t, "Tennis Court", entry.Activity)
	assert.Equal(t, "2025-01-06", entry.Date)
	assert.Equal(t, 14, entry.StartTime)
	assert.Equal(t, 16, entry.EndTime)
	assert.Equal(t, domain.StatusPaid, entry.Status)
}

func TestDashboardService_PaidAgainDoesNotDuplicate(t *testing.T) {
	svc, schedule := setupDashboardService(t)
	ctx := context.Background()

	_, err := svc.UpdateStatus(ctx, "FR2LQ5P", domain.StatusPaid)
	require.NoError(t, err)

	after, err := schedule.List(ctx)
	require.NoError(t, err)

	// Marking paid a second time places nothing new
	_, err = svc.UpdateStatus(ctx, "FR2LQ5P", domain.StatusPaid)
	require.NoError(t, err)

	again, err := schedule.List(ctx)
	require.NoError(t, err)
	assert.Len(t, again, len(after))
}
