package service

import (
	"context"
	"fmt"
	"time"

	"sportvenue-backend/internal/domain"
	"sportvenue-backend/internal/repository"
	"sportvenue-backend/pkg/logger"
)

// weekdayLabels follows the dashboard chart's Monday-first ordering
var weekdayLabels = []struct {
	day   time.Weekday
	label string
}{
	{time.Monday, "Mon"},
	{time.Tuesday, "Tue"},
	{time.Wednesday, "Wed"},
	{time.Thursday, "Thu"},
	{time.Friday, "Fri"},
	{time.Saturday, "Sat"},
	{time.Sunday, "Sun"},
}

// MetricsService computes the admin dashboard's charts from live data
// instead of canned numbers
type MetricsService struct {
	bookings repository.BookingRequestRepository
	schedule repository.ScheduleRepository
	log      *logger.Logger
}

// NewMetricsService creates a new metrics service
func NewMetricsService(
	bookings repository.BookingRequestRepository,
	schedule repository.ScheduleRepository,
	log *logger.Logger,
) *MetricsService {
	return &MetricsService{
		bookings: bookings,
		schedule: schedule,
		log:      log,
	}
}

// Dashboard aggregates booking totals, the peak-hours histogram and the
// per-weekday utilization rate
func (s *MetricsService) Dashboard(ctx context.Context) (*domain.DashboardMetrics, error) {
	requests, err := s.bookings.List(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := s.schedule.List(ctx)
	if err != nil {
		return nil, err
	}

	metrics := &domain.DashboardMetrics{
		TotalBookings: len(requests),
		PeakHours:     make([]domain.HourBucket, 0, ScheduleCloseHour-ScheduleOpenHour+1),
		Utilization:   make([]domain.DayRate, 0, len(weekdayLabels)),
	}

	for _, request := range requests {
		if request.Status == domain.StatusNew || request.Status == domain.StatusReviewed {
			metrics.PendingReview++
		}
	}

	for hour := ScheduleOpenHour; hour <= ScheduleCloseHour; hour++ {
		bucket := domain.HourBucket{Hour: shortHourLabel(hour)}
		for i := range entries {
			if entries[i].Occupies(hour) {
				bucket.Bookings++
			}
		}
		metrics.PeakHours = append(metrics.PeakHours, bucket)
	}

	openHours := ScheduleCloseHour - ScheduleOpenHour + 1
	bookedByWeekday := make(map[time.Weekday]int)
	for _, entry := range entries {
		date, err := time.Parse(dateLayout, entry.Date)
		if err != nil {
			// Unparseable dates contribute no occupancy anywhere
			continue
		}
		if entry.EndTime > entry.StartTime {
			bookedByWeekday[date.Weekday()] += entry.EndTime - entry.StartTime
		}
	}

	total := 0
	for _, wd := range weekdayLabels {
		rate := bookedByWeekday[wd.day] * 100 / openHours
		if rate > 100 {
			rate = 100
		}
		total += rate
		metrics.Utilization = append(metrics.Utilization, domain.DayRate{Day: wd.label, Rate: rate})
	}
	metrics.AvgUtilization = total / len(weekdayLabels)

	return metrics, nil
}

// shortHourLabel renders an hour the way the chart axis shows it ("6 AM")
func shortHourLabel(hour int) string {
	switch {
	case hour == 0:
		return "12 AM"
	case hour < 12:
		return fmt.Sprintf("%d AM", hour)
	case hour == 12:
		return "12 PM"
	default:
		return fmt.Sprintf("%d PM", hour-12)
	}
}
