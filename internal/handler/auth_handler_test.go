package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportvenue-backend/internal/config"
	"sportvenue-backend/internal/domain"
	"sportvenue-backend/internal/service"
)

func setupAuthHandler(t *testing.T) *AuthHandler {
	t.Helper()
	log := newTestLogger(t)
	cfg := &config.Config{
		Environment:   "test",
		AdminUsername: "admin",
		AdminPassword: "admin",
		SessionSecret: "test-session-secret",
		SessionTTL:    time.Hour,
	}
	auth := service.NewAuthService(cfg, service.NewMemorySessionStore(), log)
	return NewAuthHandler(auth, log)
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		expectedCode int
	}{
		{
			name:         "Valid credentials",
			body:         `{"username":"admin","password":"admin"}`,
			expectedCode: http.StatusOK,
		},
		{
			name:         "Wrong password",
			body:         `{"username":"admin","password":"nope"}`,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Missing fields",
			body:         `{"username":"admin"}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid body",
			body:         `{`,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := setupAuthHandler(t)

			req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewReader([]byte(tt.body)))
			rec := httptest.NewRecorder()
			h.Login(rec, req)

			require.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode != http.StatusOK {
				return
			}

			var resp domain.LoginResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Token)
			assert.Equal(t, "admin", resp.Username)
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	h := setupAuthHandler(t)

	loginReq := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewReader([]byte(`{"username":"admin","password":"admin"}`)))
	loginRec := httptest.NewRecorder()
	h.Login(loginRec, loginReq)
	require.Equal(t, http.StatusOK, loginRec.Code)

	var login domain.LoginResponse
	require.NoError(t, json.Unmarshal(loginRec.Body.Bytes(), &login))

	t.Run("Missing token is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/admin/logout", nil)
		rec := httptest.NewRecorder()
		h.Logout(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Valid token signs out", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/admin/logout", nil)
		req.Header.Set("Authorization", "Bearer "+login.Token)
		rec := httptest.NewRecorder()
		h.Logout(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Revoked token cannot sign out again", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/admin/logout", nil)
		req.Header.Set("Authorization", "Bearer "+login.Token)
		rec := httptest.NewRecorder()
		h.Logout(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
