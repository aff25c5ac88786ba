package repository

import "sportvenue-backend/internal/domain"

// SeedActivities returns the sample activity catalog
func SeedActivities() []domain.Activity {
	return []domain.Activity{
		{
			ID:          "1",
			Slug:        "badminton",
			Name:        "Badminton Court",
			Description: "Professional badminton court with quality shuttlecocks",
			BasePrice:   300,
			OpeningTime: "6:00 AM",
			ClosingTime: "9:00 PM",
			AddOns:      []domain.AddOn{{Name: "Racket Rental", Price: 100}},
		},
		{
			ID:          "2",
			Slug:        "pickleball",
			Name:        "Pickleball Court",
			Description: "Modern pickleball courts perfect for all skill levels",
			BasePrice:   350,
			OpeningTime: "6:00 AM",
			ClosingTime: "9:00 PM",
			AddOns:      []domain.AddOn{{Name: "Paddle Rental", Price: 100}},
		},
		{
			ID:          "3",
			Slug:        "tennis",
			Name:        "Tennis Court",
			Description: "Premium tennis court with professional maintenance",
			BasePrice:   600,
			OpeningTime: "6:00 AM",
			ClosingTime: "9:00 PM",
			AddOns: []domain.AddOn{
				{Name: "Racket Rental", Price: 200},
				{Name: "Ball Boy Service", Price: 50},
			},
		},
		{
			ID:          "4",
			Slug:        "yoga",
			Name:        "Yoga Class",
			Description: "Relaxing yoga sessions for all levels and ages",
			BasePrice:   500,
			OpeningTime: "6:00 AM",
			ClosingTime: "7:00 PM",
			AddOns:      []domain.AddOn{},
		},
		{
			ID:          "5",
			Slug:        "pilates",
			Name:        "Pilates Class",
			Description: "Strengthen and tone with professional pilates instruction",
			BasePrice:   1100,
			OpeningTime: "6:00 AM",
			ClosingTime: "7:00 PM",
			AddOns:      []domain.AddOn{},
		},
	}
}

// SeedBookingRequests returns the sample dashboard booking requests
func SeedBookingRequests() []domain.BookingRequest {
	return []domain.BookingRequest{
		{ID: "BR7XK9M", GuestName: "John Doe", Activity: "Badminton Court", Date: "2025-01-05", Time: "9:00 AM - 11:00 AM", TotalAmount: 600, Status: domain.StatusNew},
		{ID: "FR2LQ5P", GuestName: "Jane Smith", Activity: "Tennis Court", Date: "2025-01-06", Time: "2:00 PM - 4:00 PM", TotalAmount: 1200, Status: domain.StatusReviewed},
		{ID: "GR8WV3H", GuestName: "Mike Johnson", Activity: "Pickleball Court", Date: "2025-01-07", Time: "7:00 PM - 8:00 PM", TotalAmount: 350, Status: domain.StatusPaid},
		{ID: "HS4JK7N", GuestName: "Sarah Williams", Activity: "Yoga Class", Date: "2025-01-05", Time: "6:00 AM - 7:00 AM", TotalAmount: 500, Status: domain.StatusDeclined},
		{ID: "TS9MR2X", GuestName: "David Brown", Activity: "Pilates Class", Date: "2025-01-08", Time: "5:00 PM - 6:00 PM", TotalAmount: 1100, Status: domain.StatusReviewed},
		{ID: "KS3LP9W", GuestName: "Emma Davis", Activity: "Tennis Court", Date: "2024-12-28", Time: "3:00 PM - 5:00 PM", TotalAmount: 1200, Status: domain.StatusComplete},
		{ID: "NS7TR1Q", GuestName: "Robert Wilson", Activity: "Badminton Court", Date: "2025-01-10", Time: "10:00 AM - 11:00 AM", TotalAmount: 300, Status: domain.StatusCancelled},
	}
}

// SeedScheduleEntries returns the sample paid bookings shown on the schedule
func SeedScheduleEntries() []domain.ScheduleEntry {
	return []domain.ScheduleEntry{
		{ID: "GR8WV3H", GuestName: "Mike Johnson", Activity: "Pickleball Court", Date: "2025-01-07", StartTime: 19, EndTime: 20, Status: domain.StatusPaid},
		{ID: "KS3LP9W", GuestName: "Emma Davis", Activity: "Tennis Court", Date: "2025-01-08", StartTime: 15, EndTime: 17, Status: domain.StatusPaid},
		{ID: "MS5JK2L", GuestName: "Alex Turner", Activity: "Badminton Court", Date: "2025-01-09", StartTime: 10, EndTime: 12, Status: domain.StatusPaid},
		{ID: "LS9NQ4W", GuestName: "Lisa Chen", Activity: "Yoga Class", Date: "2025-01-10", StartTime: 6, EndTime: 7, Status: domain.StatusPaid},
		{ID: "PS7MR6X", GuestName: "Peter Harris", Activity: "Tennis Court", Date: "2025-01-11", StartTime: 14, EndTime: 16, Status: domain.StatusPaid},
		{ID: "RS2KL8H", GuestName: "Rachel Green", Activity: "Pilates Class", Date: "2025-01-12", StartTime: 17, EndTime: 18, Status: domain.StatusPaid},
	}
}
