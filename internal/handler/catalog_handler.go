package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"sportvenue-backend/internal/service"
)

// CatalogHandler serves the public activity catalog
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// List handles GET /api/activities
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	activities, err := h.catalog.PublicList(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, activities)
}

// Get handles GET /api/activities/{slug}
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		writeValidationError(w, "activity slug is required", nil)
		return
	}

	activity, err := h.catalog.GetBySlug(r.Context(), slug)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, activity)
}

// Slots handles GET /api/activities/{slug}/slots
func (h *CatalogHandler) Slots(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		writeValidationError(w, "activity slug is required", nil)
		return
	}

	slots, err := h.catalog.Slots(r.Context(), slug)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"slots": slots})
}
