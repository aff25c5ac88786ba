package service

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"sportvenue-backend/internal/config"
	"sportvenue-backend/internal/domain"
	"sportvenue-backend/pkg/errors"
	"sportvenue-backend/pkg/logger"
)

// AuthService handles the admin console's mock sign-in. Credentials come
// from configuration; successful logins are issued a signed session token
// whose session record lives in the session store until sign-out.
type AuthService struct {
	cfg      *config.Config
	sessions SessionStore
	log      *logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(cfg *config.Config, sessions SessionStore, log *logger.Logger) *AuthService {
	return &AuthService{
		cfg:      cfg,
		sessions: sessions,
		log:      log,
	}
}

// sessionClaims are the JWT claims carried by an admin session token
type sessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Login checks the credentials and opens a session
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.LoginResponse, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AdminPassword)) == 1
	if !userOK || !passOK {
		return nil, errors.NewAuthenticationError("invalid username or password")
	}

	now := time.Now()
	session := &domain.AdminSession{
		ID:        uuid.NewString(),
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.SessionTTL),
	}

	if err := s.sessions.Put(ctx, session); err != nil {
		return nil, err
	}

	claims := &sessionClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.SessionSecret))
	if err != nil {
		return nil, errors.NewInternalError("failed to sign session token", err)
	}

	s.log.WithField("session_id", session.ID).Info("Admin signed in")

	return &domain.LoginResponse{
		Token:     token,
		Username:  username,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// Validate checks a session token and returns the live session behind it.
// A token is only good while its session record still exists.
func (s *AuthService) Validate(ctx context.Context, token string) (*domain.AdminSession, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewAuthenticationError("unexpected signing method")
		}
		return []byte(s.cfg.SessionSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, errors.NewAuthenticationError("invalid or expired token")
	}

	session, err := s.sessions.Get(ctx, claims.ID)
	if err != nil {
		return nil, errors.NewAuthenticationError("session revoked or expired")
	}
	return session, nil
}

// Logout revokes the session behind a token. Unknown tokens are rejected;
// logging out twice is not an error beyond that.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	session, err := s.Validate(ctx, token)
	if err != nil {
		return err
	}

	if err := s.sessions.Delete(ctx, session.ID); err != nil {
		return err
	}

	s.log.WithField("session_id", session.ID).Info("Admin signed out")
	return nil
}
