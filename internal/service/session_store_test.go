package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportvenue-backend/internal/domain"
	"sportvenue-backend/pkg/redis"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client, err := redis.NewClient("redis://"+mr.Addr(), "test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func sampleSession(ttl time.Duration) *domain.AdminSession {
	now := time.Now()
	return &domain.AdminSession{
		ID:        "session-123",
		Username:  "admin",
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

func TestRedisSessionStore(t *testing.T) {
	mr, client := setupTestRedis(t)
	store := NewRedisSessionStore(client)
	ctx := context.Background()

	t.Run("Put then Get round trips the session", func(t *testing.T) {
		session := sampleSession(time.Hour)
		require.NoError(t, store.Put(ctx, session))

		got, err := store.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, session.ID, got.ID)
		assert.Equal(t, "admin", got.Username)
	})

	t.Run("Sessions live under the environment prefix", func(t *testing.T) {
		assert.True(t, mr.Exists("staging:admin:session:session-123"))
	})

	t.Run("Delete revokes the session", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "session-123"))

		_, err := store.Get(ctx, "session-123")
		assert.Error(t, err)
	})

	t.Run("Get of unknown session fails", func(t *testing.T) {
		_, err := store.Get(ctx, "no-such-session")
		assert.Error(t, err)
	})

	t.Run("Session expires with its TTL", func(t *testing.T) {
		session := sampleSession(time.Hour)
		session.ID = "session-ttl"
		require.NoError(t, store.Put(ctx, session))

		mr.FastForward(2 * time.Hour)

		_, err := store.Get(ctx, "session-ttl")
		assert.Error(t, err)
	})

	t.Run("Expired session is rejected on Put", func(t *testing.T) {
		err := store.Put(ctx, sampleSession(-time.Minute))
		assert.Error(t, err)
	})
}

func TestMemorySessionStore(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	t.Run("Put then Get round trips the session", func(t *testing.T) {
		session := sampleSession(time.Hour)
		require.NoError(t, store.Put(ctx, session))

		got, err := store.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, session.Username, got.Username)
	})

	t.Run("Delete revokes the session", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "session-123"))

		_, err := store.Get(ctx, "session-123")
		assert.Error(t, err)
	})

	t.Run("Expired session is rejected on Put", func(t *testing.T) {
		err := store.Put(ctx, sampleSession(-time.Minute))
		assert.Error(t, err)
	})

	t.Run("Expired session is gone on Get", func(t *testing.T) {
		session := sampleSession(30 * time.Millisecond)
		session.ID = "session-short"
		require.NoError(t, store.Put(ctx, session))

		time.Sleep(50 * time.Millisecond)

		_, err := store.Get(ctx, "session-short")
		assert.Error(t, err)
	})
}
