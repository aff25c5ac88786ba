package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"sportvenue-backend/internal/domain"
	"sportvenue-backend/pkg/errors"
	"sportvenue-backend/pkg/redis"
)

// SessionStore holds active admin sessions. A session exists from sign-in
// until sign-out or expiry; nothing survives a process restart.
type SessionStore interface {
	// Put stores a session until it expires
	Put(ctx context.Context, session *domain.AdminSession) error

	// Get retrieves a session by ID; expired or unknown sessions are not found
	Get(ctx context.Context, id string) (*domain.AdminSession, error)

	// Delete revokes a session
	Delete(ctx context.Context, id string) error
}

// RedisSessionStore keeps sessions in Redis with TTL-based expiry
type RedisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore creates a Redis-backed session store
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

// Put stores a session until it expires
func (s *RedisSessionStore) Put(ctx context.Context, session *domain.AdminSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return errors.NewInternalError("failed to encode session", err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return errors.NewValidationError("session already expired", nil)
	}

	key := s.client.KeyBuilder.KeyAdminSession(session.ID)
	return s.client.Set(ctx, key, payload, ttl)
}

// Get retrieves a session by ID
func (s *RedisSessionStore) Get(ctx context.Context, id string) (*domain.AdminSession, error) {
	key := s.client.KeyBuilder.KeyAdminSession(id)
	payload, err := s.client.Get(ctx, key)
	if err != nil {
		if redis.IsNil(err) {
			return nil, errors.NewAuthenticationError("session not found")
		}
		return nil, errors.NewInternalError("failed to read session", err)
	}

	var session domain.AdminSession
	if err := json.Unmarshal([]byte(payload), &session); err != nil {
		return nil, errors.NewInternalError("failed to decode session", err)
	}
	return &session, nil
}

// Delete revokes a session
func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Delete(ctx, s.client.KeyBuilder.KeyAdminSession(id))
}

// MemorySessionStore keeps sessions in process memory. Used when no Redis
// URL is configured.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.AdminSession
}

// NewMemorySessionStore creates an in-memory session store
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]domain.AdminSession),
	}
}

// Put stores a session until it expires
func (s *MemorySessionStore) Put(ctx context.Context, session *domain.AdminSession) error {
	if !session.ExpiresAt.After(time.Now()) {
		return errors.NewValidationError("session already expired", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = *session
	return nil
}

// Get retrieves a session by ID
func (s *MemorySessionStore) Get(ctx context.Context, id string) (*domain.AdminSession, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, errors.NewAuthenticationError("session not found")
	}
	if !session.ExpiresAt.After(time.Now()) {
		// Lazy expiry; the session is gone either way
		_ = s.Delete(ctx, id)
		return nil, errors.NewAuthenticationError("session expired")
	}
	return &session, nil
}

// Delete revokes a session
func (s *MemorySessionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
