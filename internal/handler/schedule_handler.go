package handler

import (
	"net/http"
	"strconv"
	"time"

	"sportvenue-backend/internal/service"
	"sportvenue-backend/pkg/logger"
)

// ScheduleHandler serves the admin schedule's weekly and monthly grids
type ScheduleHandler struct {
	schedule *service.ScheduleService
	log      *logger.Logger
	now      func() time.Time
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(schedule *service.ScheduleService, log *logger.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		schedule: schedule,
		log:      log,
		now:      time.Now,
	}
}

// Week handles GET /api/admin/schedule/week?date=YYYY-MM-DD&activity=...
// The grid is anchored to the Sunday of the week containing date; date
// defaults to today.
func (h *ScheduleHandler) Week(w http.ResponseWriter, r *http.Request) {
	currentDate := h.now().UTC()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			writeValidationError(w, "date must be YYYY-MM-DD", map[string]interface{}{"date": raw})
			return
		}
		currentDate = parsed
	}

	grid, err := h.schedule.Week(r.Context(), currentDate, r.URL.Query().Get("activity"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, grid)
}

// Month handles GET /api/admin/schedule/month?year=YYYY&month=M, defaulting
// to the current month
func (h *ScheduleHandler) Month(w http.ResponseWriter, r *http.Request) {
	now := h.now().UTC()
	year, month := now.Year(), now.Month()

	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeValidationError(w, "year must be a number", map[string]interface{}{"year": raw})
			return
		}
		year = parsed
	}
	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			writeValidationError(w, "month must be between 1 and 12", map[string]interface{}{"month": raw})
			return
		}
		month = time.Month(parsed)
	}

	grid, err := h.schedule.Month(r.Context(), year, month)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, grid)
}
