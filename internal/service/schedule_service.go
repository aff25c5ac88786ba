package service

import (
	"context"
	"time"

	"sportvenue-backend/internal/domain"
	"sportvenue-backend/internal/repository"
	"sportvenue-backend/pkg/logger"
)

// ScheduleService builds the admin schedule's occupancy views
type ScheduleService struct {
	schedule repository.ScheduleRepository
	log      *logger.Logger
}

// NewScheduleService creates a new schedule service
func NewScheduleService(schedule repository.ScheduleRepository, log *logger.Logger) *ScheduleService {
	return &ScheduleService{
		schedule: schedule,
		log:      log,
	}
}

// Week returns the weekly grid for the week containing currentDate,
// optionally filtered to one activity
func (s *ScheduleService) Week(ctx context.Context, currentDate time.Time, activityFilter string) (*domain.WeekGrid, error) {
	entries, err := s.paidEntries(ctx)
	if err != nil {
		return nil, err
	}
	return BuildWeek(currentDate, GridHours(), activityFilter, entries), nil
}

// Month returns the monthly grid for the given year and month
func (s *ScheduleService) Month(ctx context.Context, year int, month time.Month) (*domain.MonthGrid, error) {
	entries, err := s.paidEntries(ctx)
	if err != nil {
		return nil, err
	}
	return BuildMonth(year, month, entries), nil
}

// paidEntries lists schedule entries, keeping only paid bookings on the grid
func (s *ScheduleService) paidEntries(ctx context.Context) ([]domain.ScheduleEntry, error) {
	entries, err := s.schedule.List(ctx)
	if err != nil {
		return nil, err
	}

	paid := make([]domain.ScheduleEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Status == domain.StatusPaid {
			paid = append(paid, entry)
		}
	}
	return paid, nil
}
