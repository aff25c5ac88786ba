package domain

// HourBucket is one bar of the peak-hours chart
type HourBucket struct {
	Hour     string `json:"hour"`
	Bookings int    `json:"bookings"`
}

// DayRate is one point of the weekly utilization chart
type DayRate struct {
	Day  string `json:"day"`
	Rate int    `json:"rate"`
}

// DashboardMetrics aggregates the admin dashboard's headline numbers and
// chart series
type DashboardMetrics struct {
	TotalBookings  int          `json:"total_bookings"`
	PendingReview  int          `json:"pending_review"`
	AvgUtilization int          `json:"avg_utilization"`
	PeakHours      []HourBucket `json:"peak_hours"`
	Utilization    []DayRate    `json:"utilization"`
}
