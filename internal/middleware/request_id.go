package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"sportvenue-backend/pkg/logger"
)

// RequestID creates a middleware that adds a unique request ID to each
// request and its response headers
func RequestID(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := uuid.NewString()

			ctx := context.WithValue(r.Context(), RequestIDContextKey, requestID)
			w.Header().Set("X-Request-ID", requestID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
