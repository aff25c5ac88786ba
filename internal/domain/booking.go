package domain

// BookingType distinguishes single-day from multi-day reservations
type BookingType string

const (
	BookingTypeSingle   BookingType = "single"
	BookingTypeMultiple BookingType = "multiple"
)

// BookingDraft holds an in-progress reservation request.
// Required-field presence is enforced by the handler layer before submission.
type BookingDraft struct {
	FirstName        string         `json:"first_name"`
	LastName         string         `json:"last_name"`
	Phone            string         `json:"phone"`
	Email            string         `json:"email"`
	ActivityType     string         `json:"activity_type"`
	BookingType      BookingType    `json:"booking_type"`
	Date             string         `json:"date"`
	Times            []string       `json:"times"`
	AddOnsQuantities AddOnSelection `json:"add_ons_quantities"`
}

// GuestName returns the draft's full guest name
func (d *BookingDraft) GuestName() string {
	return d.FirstName + " " + d.LastName
}

// BookingConfirmation is the identified record produced when a draft is submitted
type BookingConfirmation struct {
	RequestID        string         `json:"request_id"`
	FirstName        string         `json:"first_name"`
	LastName         string         `json:"last_name"`
	Phone            string         `json:"phone"`
	Email            string         `json:"email"`
	ActivityName     string         `json:"activity_name"`
	BookingType      BookingType    `json:"booking_type"`
	Date             string         `json:"date"`
	Times            []string       `json:"times"`
	AddOnsQuantities AddOnSelection `json:"add_ons_quantities"`
	TotalAmount      int            `json:"total_amount"`
}

// RequestStatus is the admin-side state of a booking request
type RequestStatus string

const (
	StatusNew       RequestStatus = "new"
	StatusReviewed  RequestStatus = "reviewed"
	StatusPaid      RequestStatus = "paid"
	StatusDeclined  RequestStatus = "declined"
	StatusCancelled RequestStatus = "cancelled"
	StatusComplete  RequestStatus = "complete"
)

// RequestStatuses lists every valid status in display order
var RequestStatuses = []RequestStatus{
	StatusNew,
	StatusReviewed,
	StatusPaid,
	StatusDeclined,
	StatusCancelled,
	StatusComplete,
}

// IsValidStatus reports whether s is a member of the status set
func IsValidStatus(s RequestStatus) bool {
	for _, status := range RequestStatuses {
		if status == s {
			return true
		}
	}
	return false
}

// statusTransitions is the allowed-transition table. Every transition is
// currently permitted; tightening admin workflow later is a table edit.
var statusTransitions = map[RequestStatus][]RequestStatus{
	StatusNew:       {StatusNew, StatusReviewed, StatusPaid, StatusDeclined, StatusCancelled, StatusComplete},
	StatusReviewed:  {StatusNew, StatusReviewed, StatusPaid, StatusDeclined, StatusCancelled, StatusComplete},
	StatusPaid:      {StatusNew, StatusReviewed, StatusPaid, StatusDeclined, StatusCancelled, StatusComplete},
	StatusDeclined:  {StatusNew, StatusReviewed, StatusPaid, StatusDeclined, StatusCancelled, StatusComplete},
	StatusCancelled: {StatusNew, StatusReviewed, StatusPaid, StatusDeclined, StatusCancelled, StatusComplete},
	StatusComplete:  {StatusNew, StatusReviewed, StatusPaid, StatusDeclined, StatusCancelled, StatusComplete},
}

// CanTransition reports whether a request may move from one status to another
func CanTransition(from, to RequestStatus) bool {
	allowed, ok := statusTransitions[from]
	if !ok {
		return false
	}
	for _, status := range allowed {
		if status == to {
			return true
		}
	}
	return false
}

// BookingRequest is the admin dashboard's view of a submitted booking
type BookingRequest struct {
	ID          string        `json:"id"`
	GuestName   string        `json:"guest_name"`
	Activity    string        `json:"activity"`
	Date        string        `json:"date"`
	Time        string        `json:"time"`
	TotalAmount int           `json:"total_amount"`
	Status      RequestStatus `json:"status"`
}
