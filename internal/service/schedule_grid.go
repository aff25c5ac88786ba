package service

import (
	"time"

	"sportvenue-backend/internal/domain"
)

const dateLayout = "2006-01-02"

// ScheduleOpenHour and ScheduleCloseHour bound the weekly grid's hour rows
// (6 AM through the 9 PM row inclusive).
const (
	ScheduleOpenHour  = 6
	ScheduleCloseHour = 21
)

// GridHours returns the ordered hour rows of the weekly grid
func GridHours() []int {
	hours := make([]int, 0, ScheduleCloseHour-ScheduleOpenHour+1)
	for hour := ScheduleOpenHour; hour <= ScheduleCloseHour; hour++ {
		hours = append(hours, hour)
	}
	return hours
}

// WeekStartOf rolls a date back to its most recent Sunday
func WeekStartOf(date time.Time) time.Time {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// BuildWeek produces the weekly occupancy grid: 7 day columns anchored to the
// Sunday of the week containing currentDate, one cell per hour row. A cell is
// occupied by the first entry in input order whose date matches the day,
// whose activity passes the filter, and whose hour range covers the cell.
// Overlapping entries are a possible, unguarded data condition; first match
// in input order wins. Entries with unparseable dates occupy nothing.
func BuildWeek(currentDate time.Time, hours []int, activityFilter string, entries []domain.ScheduleEntry) *domain.WeekGrid {
	weekStart := WeekStartOf(currentDate)

	grid := &domain.WeekGrid{
		WeekStart: weekStart.Format(dateLayout),
		Previous:  weekStart.AddDate(0, 0, -7).Format(dateLayout),
		Next:      weekStart.AddDate(0, 0, 7).Format(dateLayout),
		Days:      make([]domain.DayColumn, 0, 7),
	}

	for dayOffset := 0; dayOffset < 7; dayOffset++ {
		day := weekStart.AddDate(0, 0, dayOffset)
		dayStr := day.Format(dateLayout)

		column := domain.DayColumn{
			Date:  dayStr,
			Hours: make([]domain.HourCell, 0, len(hours)),
		}

		for _, hour := range hours {
			cell := domain.HourCell{Hour: hour}
			for i := range entries {
				entry := &entries[i]
				if entry.Date != dayStr {
					continue
				}
				if activityFilter != "" && activityFilter != "all" && entry.Activity != activityFilter {
					continue
				}
				if entry.Occupies(hour) {
					occupant := *entry
					cell.Entry = &occupant
					break
				}
			}
			column.Hours = append(column.Hours, cell)
		}

		grid.Days = append(grid.Days, column)
	}

	return grid
}

// BuildMonth produces the monthly occupancy grid. Day 1 is placed after
// LeadingEmpty placeholder cells, one per weekday before the 1st; each day
// cell lists every entry dated on that day, unfiltered by hour.
func BuildMonth(year int, month time.Month, entries []domain.ScheduleEntry) *domain.MonthGrid {
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := firstOfMonth.AddDate(0, 1, -1).Day()

	grid := &domain.MonthGrid{
		Year:         year,
		Month:        int(month),
		LeadingEmpty: int(firstOfMonth.Weekday()),
		Days:         make([]domain.MonthDayCell, 0, daysInMonth),
	}

	for day := 1; day <= daysInMonth; day++ {
		dayStr := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(dateLayout)

		cell := domain.MonthDayCell{
			Day:     day,
			Date:    dayStr,
			Entries: make([]domain.ScheduleEntry, 0),
		}
		for _, entry := range entries {
			if entry.Date == dayStr {
				cell.Entries = append(cell.Entries, entry)
			}
		}

		grid.Days = append(grid.Days, cell)
	}

	return grid
}
