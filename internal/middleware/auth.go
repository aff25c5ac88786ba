package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"sportvenue-backend/internal/domain"
	"sportvenue-backend/internal/service"
	"sportvenue-backend/pkg/errors"
	"sportvenue-backend/pkg/logger"
)

// ContextKey represents keys used in request context
type ContextKey string

const (
	// SessionContextKey is the key for the admin session in context
	SessionContextKey ContextKey = "admin_session"
	// RequestIDContextKey is the key for request ID in context
	RequestIDContextKey ContextKey = "request_id"
)

// AdminAuth guards admin routes. The Bearer token must parse, verify and
// still have a live session behind it; the session travels in the request
// context, never in ambient globals.
func AdminAuth(auth *service.AuthService, log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeAuthError(w, errors.NewAuthenticationError("Authorization header is required"))
				return
			}
			if !strings.HasPrefix(authHeader, "Bearer ") {
				writeAuthError(w, errors.NewAuthenticationError("Invalid authorization header format"))
				return
			}
			token := strings.TrimPrefix(authHeader, "Bearer ")
			if token == "" {
				writeAuthError(w, errors.NewAuthenticationError("Token is required"))
				return
			}

			ctx := r.Context()
			session, err := auth.Validate(ctx, token)
			if err != nil {
				log.WithError(err).Debug("Session validation failed")
				writeAuthError(w, errors.NewAuthenticationError("Invalid or expired session"))
				return
			}

			ctx = context.WithValue(ctx, SessionContextKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext returns the admin session placed by AdminAuth, if any
func SessionFromContext(ctx context.Context) (*domain.AdminSession, bool) {
	session, ok := ctx.Value(SessionContextKey).(*domain.AdminSession)
	return session, ok
}

// writeAuthError writes an authentication error response
func writeAuthError(w http.ResponseWriter, appErr *errors.AppError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode)
	w.Write([]byte(`{"error":{"type":"` + string(appErr.Type) + `","message":"` + appErr.Message + `","timestamp":"` + time.Now().UTC().Format(time.RFC3339) + `"}}`))
}
