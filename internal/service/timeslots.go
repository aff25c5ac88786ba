package service

import (
	"fmt"
	"strings"
	"time"
)

// slotLayout is the clock format used for time-slot labels ("6:00 AM")
const slotLayout = "3:04 PM"

// ParseSlotHour converts a time-slot label to its hour of day
func ParseSlotHour(label string) (int, error) {
	t, err := time.Parse(slotLayout, strings.TrimSpace(label))
	if err != nil {
		return 0, fmt.Errorf("invalid time slot %q: %w", label, err)
	}
	return t.Hour(), nil
}

// SlotLabel converts an hour of day to its time-slot label
func SlotLabel(hour int) string {
	return time.Date(0, time.January, 1, hour, 0, 0, 0, time.UTC).Format(slotLayout)
}

// SlotLabels derives the hourly booking slots between opening and closing
// time, both hours inclusive: a 6:00 AM to 9:00 PM activity offers 16 slots.
func SlotLabels(openingTime, closingTime string) ([]string, error) {
	open, err := ParseSlotHour(openingTime)
	if err != nil {
		return nil, err
	}
	close, err := ParseSlotHour(closingTime)
	if err != nil {
		return nil, err
	}
	if close <= open {
		return nil, fmt.Errorf("closing time %q is not after opening time %q", closingTime, openingTime)
	}

	labels := make([]string, 0, close-open+1)
	for hour := open; hour <= close; hour++ {
		labels = append(labels, SlotLabel(hour))
	}
	return labels, nil
}

// FormatTimeRange renders selected slots as the dashboard's display range,
// from the earliest slot to the end of the latest one.
func FormatTimeRange(times []string) string {
	first, last := -1, -1
	for _, label := range times {
		hour, err := ParseSlotHour(label)
		if err != nil {
			continue
		}
		if first == -1 || hour < first {
			first = hour
		}
		if hour > last {
			last = hour
		}
	}
	if first == -1 {
		return ""
	}
	return SlotLabel(first) + " - " + SlotLabel(last+1)
}

// ParseTimeRange parses a display range back into start and end hours
func ParseTimeRange(timeRange string) (int, int, error) {
	parts := strings.Split(timeRange, " - ")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time range %q", timeRange)
	}
	start, err := ParseSlotHour(parts[0])
	if err != nil {
		return 0, 0, err
	}
	end, err := ParseSlotHour(parts[1])
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}
