package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"sportvenue-backend/internal/domain"
	"sportvenue-backend/internal/service"
	"sportvenue-backend/pkg/logger"
)

// SettingsHandler serves the admin settings page's activity management
type SettingsHandler struct {
	catalog *service.CatalogService
	log     *logger.Logger
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(catalog *service.CatalogService, log *logger.Logger) *SettingsHandler {
	return &SettingsHandler{
		catalog: catalog,
		log:     log,
	}
}

// List handles GET /api/admin/activities: the full catalog, archived
// activities included
func (h *SettingsHandler) List(w http.ResponseWriter, r *http.Request) {
	activities, err := h.catalog.FullList(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, activities)
}

// Create handles POST /api/admin/activities
func (h *SettingsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var activity domain.Activity
	if err := json.NewDecoder(r.Body).Decode(&activity); err != nil {
		writeValidationError(w, "invalid request body", nil)
		return
	}
	if details := validateActivity(&activity); len(details) > 0 {
		writeValidationError(w, "missing or invalid activity fields", details)
		return
	}

	created, err := h.catalog.Create(r.Context(), &activity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Update handles PUT /api/admin/activities/{id}
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeValidationError(w, "activity ID is required", nil)
		return
	}

	var activity domain.Activity
	if err := json.NewDecoder(r.Body).Decode(&activity); err != nil {
		writeValidationError(w, "invalid request body", nil)
		return
	}
	activity.ID = id
	if details := validateActivity(&activity); len(details) > 0 {
		writeValidationError(w, "missing or invalid activity fields", details)
		return
	}

	updated, err := h.catalog.Update(r.Context(), &activity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Archive handles POST /api/admin/activities/{id}/archive
func (h *SettingsHandler) Archive(w http.ResponseWriter, r *http.Request) {
	h.setArchived(w, r, true)
}

// Restore handles POST /api/admin/activities/{id}/restore
func (h *SettingsHandler) Restore(w http.ResponseWriter, r *http.Request) {
	h.setArchived(w, r, false)
}

func (h *SettingsHandler) setArchived(w http.ResponseWriter, r *http.Request, archived bool) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeValidationError(w, "activity ID is required", nil)
		return
	}

	if err := h.catalog.SetArchived(r.Context(), id, archived); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"id": id, "is_archived": archived})
}

// validateActivity checks the settings form's required fields
func validateActivity(activity *domain.Activity) map[string]interface{} {
	details := make(map[string]interface{})

	if strings.TrimSpace(activity.Name) == "" {
		details["name"] = "activity name is required"
	}
	if activity.BasePrice <= 0 {
		details["base_price"] = "base price must be positive"
	}
	if _, err := service.SlotLabels(activity.OpeningTime, activity.ClosingTime); err != nil {
		details["operating_hours"] = "opening and closing times must be valid clock times with closing after opening"
	}
	for _, addOn := range activity.AddOns {
		if strings.TrimSpace(addOn.Name) == "" || addOn.Price < 0 {
			details["add_ons"] = "add-ons need a name and a non-negative price"
			break
		}
	}

	return details
}
