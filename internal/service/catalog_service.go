package service

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"sportvenue-backend/internal/domain"
	"sportvenue-backend/internal/repository"
	"sportvenue-backend/pkg/errors"
	"sportvenue-backend/pkg/logger"
	"sportvenue-backend/pkg/redis"
)

// CatalogService exposes the public activity catalog and the admin settings
// operations behind it
type CatalogService struct {
	activities repository.ActivityRepository
	cache      *redis.Client // optional; nil disables catalog caching
	log        *logger.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(activities repository.ActivityRepository, cache *redis.Client, log *logger.Logger) *CatalogService {
	return &CatalogService{
		activities: activities,
		cache:      cache,
		log:        log,
	}
}

// PublicList returns the bookable catalog: active activities only. Served
// cache-aside from Redis when a client is configured; cache failures fall
// back to the repository.
func (s *CatalogService) PublicList(ctx context.Context) ([]domain.Activity, error) {
	if s.cache != nil {
		cacheKey := s.cache.KeyBuilder.KeyCatalogAll()
		cached, err := s.cache.Get(ctx, cacheKey)
		if err == nil && cached != "" {
			var activities []domain.Activity
			if unmarshalErr := json.Unmarshal([]byte(cached), &activities); unmarshalErr == nil {
				s.log.Debug("Catalog cache hit")
				return activities, nil
			}
			s.log.Warn("Catalog cache corrupted, falling back to repository")
		} else if err != nil && !redis.IsNil(err) {
			s.log.WithError(err).Warn("Catalog cache error, falling back to repository")
		}
	}

	activities, err := s.activities.List(ctx, false)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(activities); err == nil {
			cacheKey := s.cache.KeyBuilder.KeyCatalogAll()
			if err := s.cache.Set(ctx, cacheKey, payload, redis.TTLCatalog); err != nil {
				s.log.WithError(err).Warn("Failed to cache catalog")
			}
		}
	}

	return activities, nil
}

// FullList returns every activity including archived ones, for the admin
// settings page
func (s *CatalogService) FullList(ctx context.Context) ([]domain.Activity, error) {
	return s.activities.List(ctx, true)
}

// GetBySlug returns one bookable activity by its public slug
func (s *CatalogService) GetBySlug(ctx context.Context, slug string) (*domain.Activity, error) {
	activity, err := s.activities.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if activity.IsArchived {
		return nil, errors.NewNotFoundError("activity not found")
	}
	return activity, nil
}

// Slots returns the bookable time-slot labels for an activity, derived from
// its operating hours
func (s *CatalogService) Slots(ctx context.Context, slug string) ([]string, error) {
	activity, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	labels, err := SlotLabels(activity.OpeningTime, activity.ClosingTime)
	if err != nil {
		return nil, errors.NewInternalError("activity has invalid operating hours", err)
	}
	return labels, nil
}

// Create stores a new activity from the admin settings form
func (s *CatalogService) Create(ctx context.Context, activity *domain.Activity) (*domain.Activity, error) {
	if activity.ID == "" {
		activity.ID = uuid.NewString()
	}
	if activity.AddOns == nil {
		activity.AddOns = []domain.AddOn{}
	}
	activity.IsArchived = false

	if err := s.activities.Create(ctx, activity); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)

	s.log.WithField("activity_id", activity.ID).Info("Activity created")
	return activity, nil
}

// Update replaces an existing activity's settings
func (s *CatalogService) Update(ctx context.Context, activity *domain.Activity) (*domain.Activity, error) {
	if err := s.activities.Update(ctx, activity); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)

	s.log.WithField("activity_id", activity.ID).Info("Activity updated")
	return activity, nil
}

// SetArchived archives or restores an activity. Archived activities drop out
// of the public catalog but keep their settings for restore.
func (s *CatalogService) SetArchived(ctx context.Context, id string, archived bool) error {
	if err := s.activities.SetArchived(ctx, id, archived); err != nil {
		return err
	}
	s.invalidateCache(ctx)

	s.log.WithFields(map[string]interface{}{
		"activity_id": id,
		"archived":    archived,
	}).Info("Activity archive state changed")
	return nil
}

func (s *CatalogService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, s.cache.KeyBuilder.KeyCatalogAll()); err != nil {
		s.log.WithError(err).Warn("Failed to invalidate catalog cache")
	}
}
