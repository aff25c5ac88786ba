package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sportvenue-backend/internal/domain"
	"sportvenue-backend/internal/service"
	"sportvenue-backend/pkg/logger"
)

// DashboardHandler serves the admin dashboard: the booking requests table
// and its metrics
type DashboardHandler struct {
	dashboard *service.DashboardService
	metrics   *service.MetricsService
	log       *logger.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboard *service.DashboardService, metrics *service.MetricsService, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard,
		metrics:   metrics,
		log:       log,
	}
}

// Requests handles GET /api/admin/requests with search, status, activity,
// sort and order query parameters
func (h *DashboardHandler) Requests(w http.ResponseWriter, r *http.Request) {
	query := service.RequestQuery{
		Search:   r.URL.Query().Get("search"),
		Status:   r.URL.Query().Get("status"),
		Activity: r.URL.Query().Get("activity"),
	}

	sortColumn := service.SortColumn(r.URL.Query().Get("sort"))
	switch sortColumn {
	case service.SortColumnNone, service.SortColumnID, service.SortColumnGuestName,
		service.SortColumnActivity, service.SortColumnDate, service.SortColumnTotalAmount:
	default:
		writeValidationError(w, "unknown sort column", map[string]interface{}{"sort": string(sortColumn)})
		return
	}

	order := service.SortOrder(r.URL.Query().Get("order"))
	if order == "" {
		order = service.SortAsc
	}
	if order != service.SortAsc && order != service.SortDesc {
		writeValidationError(w, "order must be asc or desc", nil)
		return
	}
	query.Sort = service.SortState{Column: sortColumn, Order: order}

	requests, err := h.dashboard.Requests(r.Context(), query)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"requests": requests})
}

// Activities handles GET /api/admin/requests/activities for the table's
// activity filter dropdown
func (h *DashboardHandler) Activities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.dashboard.Activities(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"activities": activities})
}

// statusUpdateRequest is the PATCH body for a status change
type statusUpdateRequest struct {
	Status domain.RequestStatus `json:"status"`
}

// UpdateStatus handles PATCH /api/admin/requests/{id}/status
func (h *DashboardHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeValidationError(w, "request ID is required", nil)
		return
	}

	var req statusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "invalid request body", nil)
		return
	}

	request, err := h.dashboard.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, request)
}

// Metrics handles GET /api/admin/metrics
func (h *DashboardHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.metrics.Dashboard(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, metrics)
}
