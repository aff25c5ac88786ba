package domain

// ScheduleEntry is a confirmed (paid) booking placed on the occupancy grid.
// StartTime and EndTime are hours of the day; an entry occupies every hour h
// with StartTime <= h < EndTime.
type ScheduleEntry struct {
	ID        string        `json:"id"`
	GuestName string        `json:"guest_name"`
	Activity  string        `json:"activity"`
	Date      string        `json:"date"`
	StartTime int           `json:"start_time"`
	EndTime   int           `json:"end_time"`
	Status    RequestStatus `json:"status"`
}

// Occupies reports whether the entry covers the given hour
func (e *ScheduleEntry) Occupies(hour int) bool {
	return e.StartTime <= hour && hour < e.EndTime
}

// HourCell is one hour slot in a weekly day column
type HourCell struct {
	Hour  int            `json:"hour"`
	Entry *ScheduleEntry `json:"entry,omitempty"`
}

// DayColumn is one day of the weekly grid
type DayColumn struct {
	Date  string     `json:"date"`
	Hours []HourCell `json:"hours"`
}

// WeekGrid is the weekly occupancy view: 7 day columns starting on a Sunday
type WeekGrid struct {
	WeekStart string      `json:"week_start"`
	Previous  string      `json:"previous"`
	Next      string      `json:"next"`
	Days      []DayColumn `json:"days"`
}

// MonthDayCell is one day of the monthly grid with all bookings on that day
type MonthDayCell struct {
	Day     int             `json:"day"`
	Date    string          `json:"date"`
	Entries []ScheduleEntry `json:"entries"`
}

// MonthGrid is the monthly occupancy view. LeadingEmpty is the number of
// placeholder cells before day 1, i.e. the weekday of the 1st (Sunday = 0).
type MonthGrid struct {
	Year         int            `json:"year"`
	Month        int            `json:"month"`
	LeadingEmpty int            `json:"leading_empty"`
	Days         []MonthDayCell `json:"days"`
}
