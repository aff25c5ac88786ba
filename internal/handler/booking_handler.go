package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"sportvenue-backend/internal/domain"
	"sportvenue-backend/internal/service"
	"sportvenue-backend/pkg/logger"
)

// BookingHandler serves the public booking flow
type BookingHandler struct {
	bookings *service.BookingService
	log      *logger.Logger
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookings *service.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		bookings: bookings,
		log:      log,
	}
}

// Quote handles POST /api/bookings/quote: a live total preview for the
// booking form, computed with the same calculator as submission
func (h *BookingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var draft domain.BookingDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeValidationError(w, "invalid request body", nil)
		return
	}

	total, err := h.bookings.Quote(r.Context(), &draft)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"total_amount": total})
}

// Submit handles POST /api/bookings. The handler is the form layer: it
// enforces required-field presence before the draft reaches the service.
func (h *BookingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var draft domain.BookingDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeValidationError(w, "invalid request body", nil)
		return
	}

	if details := validateDraft(&draft); len(details) > 0 {
		writeValidationError(w, "missing or invalid booking fields", details)
		return
	}

	confirmation, err := h.bookings.Submit(r.Context(), &draft)
	if err != nil {
		h.log.WithError(err).Error("Booking submission failed")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, confirmation)
}

// validateDraft checks required-field presence and shape. Field-level
// messages are keyed by field name.
func validateDraft(draft *domain.BookingDraft) map[string]interface{} {
	details := make(map[string]interface{})

	if strings.TrimSpace(draft.FirstName) == "" {
		details["first_name"] = "first name is required"
	}
	if strings.TrimSpace(draft.LastName) == "" {
		details["last_name"] = "last name is required"
	}
	if strings.TrimSpace(draft.Phone) == "" {
		details["phone"] = "contact number is required"
	}
	if strings.TrimSpace(draft.Email) == "" || !strings.Contains(draft.Email, "@") {
		details["email"] = "a valid email is required"
	}
	if strings.TrimSpace(draft.ActivityType) == "" {
		details["activity_type"] = "activity is required"
	}
	if _, err := time.Parse("2006-01-02", draft.Date); err != nil {
		details["date"] = "a valid date is required"
	}
	if len(draft.Times) == 0 {
		details["times"] = "at least one time slot is required"
	}
	if draft.BookingType == "" {
		draft.BookingType = domain.BookingTypeSingle
	} else if draft.BookingType != domain.BookingTypeSingle && draft.BookingType != domain.BookingTypeMultiple {
		details["booking_type"] = "booking type must be single or multiple"
	}
	for name, quantity := range draft.AddOnsQuantities {
		if quantity < 0 {
			details["add_ons_quantities"] = "add-on quantity cannot be negative for " + name
		}
	}

	return details
}
