package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportvenue-backend/internal/domain"
)

func TestMemoryActivityRepository_List(t *testing.T) {
	repo := NewMemoryActivityRepository()
	ctx := context.Background()

	list, err := repo.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, list, 5)

	require.NoError(t, repo.SetArchived(ctx, "4", true))

	active, err := repo.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, active, 4)

	all, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestMemoryActivityRepository_GetBySlug(t *testing.T) {
	repo := NewMemoryActivityRepository()
	ctx := context.Background()

	activity, err := repo.GetBySlug(ctx, "pilates")
	require.NoError(t, err)
	assert.Equal(t, "Pilates Class", activity.Name)
	assert.Equal(t, 1100, activity.BasePrice)

	_, err = repo.GetBySlug(ctx, "squash")
	assert.Error(t, err)
}

func TestMemoryActivityRepository_Create(t *testing.T) {
	repo := NewMemoryActivityRepository()
	ctx := context.Background()

	err := repo.Create(ctx, &domain.Activity{ID: "99", Slug: "squash", Name: "Squash Court"})
	require.NoError(t, err)

	created, err := repo.GetByID(ctx, "99")
	require.NoError(t, err)
	assert.Equal(t, "Squash Court", created.Name)

	t.Run("Duplicate slug conflicts", func(t *testing.T) {
		err := repo.Create(ctx, &domain.Activity{ID: "100", Slug: "squash", Name: "Another Squash"})
		assert.Error(t, err)
	})

	t.Run("Duplicate ID conflicts", func(t *testing.T) {
		err := repo.Create(ctx, &domain.Activity{ID: "99", Slug: "padel", Name: "Padel Court"})
		assert.Error(t, err)
	})
}

func TestMemoryActivityRepository_Update(t *testing.T) {
	repo := NewMemoryActivityRepository()
	ctx := context.Background()

	activity, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)

	activity.BasePrice = 320
	require.NoError(t, repo.Update(ctx, activity))

	updated, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 320, updated.BasePrice)

	err = repo.Update(ctx, &domain.Activity{ID: "missing"})
	assert.Error(t, err)
}

func TestMemoryActivityRepository_SetArchived(t *testing.T) {
	repo := NewMemoryActivityRepository()
	ctx := context.Background()

	require.NoError(t, repo.SetArchived(ctx, "2", true))

	archived, err := repo.GetByID(ctx, "2")
	require.NoError(t, err)
	assert.True(t, archived.IsArchived)

	require.NoError(t, repo.SetArchived(ctx, "2", false))
	restored, err := repo.GetByID(ctx, "2")
	require.NoError(t, err)
	assert.False(t, restored.IsArchived)

	assert.Error(t, repo.SetArchived(ctx, "missing", true))
}
