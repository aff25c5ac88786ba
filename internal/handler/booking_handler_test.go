package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportvenue-backend/internal/domain"
	"sportvenue-backend/internal/repository"
	"sportvenue-backend/internal/service"
	"sportvenue-backend/pkg/logger"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("error")
	require.NoError(t, err)
	return log
}

func setupBookingHandler(t *testing.T) (*BookingHandler, *repository.MemoryBookingRequestRepository) {
	t.Helper()
	log := newTestLogger(t)
	activities := repository.NewMemoryActivityRepository()
	bookings := repository.NewMemoryBookingRequestRepository()
	svc := service.NewBookingService(activities, bookings, service.NewRandomRequestIDSource(), log)
	return NewBookingHandler(svc, log), bookings
}

func validDraftBody() map[string]interface{} {
	return map[string]interface{}{
		"first_name":         "Anna",
		"last_name":          "Reyes",
		"phone":              "09171234567",
		"email":              "anna.reyes@example.com",
		"activity_type":      "tennis",
		"booking_type":       "single",
		"date":               "2025-02-14",
		"times":              []string{"2:00 PM", "3:00 PM"},
		"add_ons_quantities": map[string]int{"Racket Rental": 1},
	}
}

func postJSON(t *testing.T, handlerFunc http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handlerFunc(rec, req)
	return rec
}

func TestBookingHandler_Submit(t *testing.T) {
	h, bookings := setupBookingHandler(t)

	rec := postJSON(t, h.Submit, "/api/bookings", validDraftBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	var confirmation domain.BookingConfirmation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &confirmation))

	assert.Len(t, confirmation.RequestID, 7)
	assert.Equal(t, "Tennis Court", confirmation.ActivityName)
	assert.Equal(t, 1400, confirmation.TotalAmount)

	request, err := bookings.GetByID(context.Background(), confirmation.RequestID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNew, request.Status)
}

func TestBookingHandler_Submit_Validation(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(body map[string]interface{})
		detailField string
	}{
		{
			name:        "missing first name",
			mutate:      func(b map[string]interface{}) { b["first_name"] = "  " },
			detailField: "first_name",
		},
		{
			name:        "missing last name",
			mutate:      func(b map[string]interface{}) { delete(b, "last_name") },
			detailField: "last_name",
		},
		{
			name:        "missing phone",
			mutate:      func(b map[string]interface{}) { delete(b, "phone") },
			detailField: "phone",
		},
		{
			name:        "email without at sign",
			mutate:      func(b map[string]interface{}) { b["email"] = "not-an-email" },
			detailField: "email",
		},
		{
			name:        "missing activity",
			mutate:      func(b map[string]interface{}) { delete(b, "activity_type") },
			detailField: "activity_type",
		},
		{
			name:        "malformed date",
			mutate:      func(b map[string]interface{}) { b["date"] = "14-02-2025" },
			detailField: "date",
		},
		{
			name:        "no time slots",
			mutate:      func(b map[string]interface{}) { b["times"] = []string{} },
			detailField: "times",
		},
		{
			name:        "invalid booking type",
			mutate:      func(b map[string]interface{}) { b["booking_type"] = "weekly" },
			detailField: "booking_type",
		},
		{
			name:        "negative add-on quantity",
			mutate:      func(b map[string]interface{}) { b["add_ons_quantities"] = map[string]int{"Racket Rental": -1} },
			detailField: "add_ons_quantities",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := setupBookingHandler(t)

			body := validDraftBody()
			tt.mutate(body)

			rec := postJSON(t, h.Submit, "/api/bookings", body)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var resp struct {
				Error struct {
					Type    string                 `json:"type"`
					Details map[string]interface{} `json:"details"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "validation", resp.Error.Type)
			assert.Contains(t, resp.Error.Details, tt.detailField)
		})
	}
}

func TestBookingHandler_Submit_InvalidBody(t *testing.T) {
	h, _ := setupBookingHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookingHandler_Submit_UnknownActivity(t *testing.T) {
	h, _ := setupBookingHandler(t)

	body := validDraftBody()
	body["activity_type"] = "squash"

	rec := postJSON(t, h.Submit, "/api/bookings", body)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBookingHandler_Quote(t *testing.T) {
	h, bookings := setupBookingHandler(t)

	rec := postJSON(t, h.Quote, "/api/bookings/quote", validDraftBody())
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1400, resp["total_amount"])

	requests, err := bookings.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, requests, len(repository.SeedBookingRequests()))
}
