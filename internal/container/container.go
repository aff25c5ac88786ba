package container

import (
	"sportvenue-backend/internal/config"
	"sportvenue-backend/internal/repository"
	"sportvenue-backend/internal/service"
	"sportvenue-backend/pkg/logger"
	"sportvenue-backend/pkg/redis"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *logger.Logger
	RedisClient *redis.Client

	Repositories *repository.Repositories

	Catalog   *service.CatalogService
	Booking   *service.BookingService
	Dashboard *service.DashboardService
	Schedule  *service.ScheduleService
	Metrics   *service.MetricsService
	Auth      *service.AuthService
}

// New creates a new dependency injection container
func New(cfg *config.Config, log *logger.Logger) (*Container, error) {
	// Redis is optional; sessions and the catalog cache degrade to memory
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		client, err := redis.NewClient(cfg.RedisURL, cfg.Environment)
		if err != nil {
			log.WithError(err).Warn("Failed to initialize Redis client, proceeding with in-memory sessions")
		} else {
			redisClient = client
			log.Info("Redis client initialized successfully")
		}
	} else {
		log.Info("Redis URL not configured, proceeding with in-memory sessions")
	}

	repos := &repository.Repositories{
		Activity: repository.NewMemoryActivityRepository(),
		Booking:  repository.NewMemoryBookingRequestRepository(),
		Schedule: repository.NewMemoryScheduleRepository(),
	}

	var sessions service.SessionStore
	if redisClient != nil {
		sessions = service.NewRedisSessionStore(redisClient)
	} else {
		sessions = service.NewMemorySessionStore()
	}

	return &Container{
		Config:       cfg,
		Logger:       log,
		RedisClient:  redisClient,
		Repositories: repos,
		Catalog:      service.NewCatalogService(repos.Activity, redisClient, log),
		Booking:      service.NewBookingService(repos.Activity, repos.Booking, service.NewRandomRequestIDSource(), log),
		Dashboard:    service.NewDashboardService(repos.Booking, repos.Schedule, log),
		Schedule:     service.NewScheduleService(repos.Schedule, log),
		Metrics:      service.NewMetricsService(repos.Booking, repos.Schedule, log),
		Auth:         service.NewAuthService(cfg, sessions, log),
	}, nil
}

// Close releases the container's external resources
func (c *Container) Close() error {
	if c.RedisClient != nil {
		return c.RedisClient.Close()
	}
	return nil
}
