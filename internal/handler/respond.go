package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	apperrors "sportvenue-backend/pkg/errors"
)

// writeJSON writes a JSON response body with the given status
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError writes the JSON error envelope. AppErrors keep their type and
// status; anything else becomes an internal error.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		appErr = apperrors.NewInternalError("internal server error", err)
	}

	response := &apperrors.ErrorResponse{}
	response.Error.Type = appErr.Type
	response.Error.Message = appErr.Message
	response.Error.Details = appErr.Details
	response.Error.Timestamp = time.Now().UTC().Format(time.RFC3339)

	writeJSON(w, appErr.StatusCode, response)
}

// writeValidationError is shorthand for a field-level validation failure
func writeValidationError(w http.ResponseWriter, message string, details map[string]interface{}) {
	writeError(w, apperrors.NewValidationError(message, details))
}
