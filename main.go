package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"sportvenue-backend/internal/config"
	"sportvenue-backend/internal/container"
	"sportvenue-backend/internal/handler"
	"sportvenue-backend/internal/middleware"
	"sportvenue-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	log.WithFields(map[string]interface{}{
		"port":        cfg.Port,
		"log_level":   cfg.LogLevel,
		"environment": cfg.Environment,
	}).Info("Starting sportvenue-backend server")

	// Create dependency injection container
	c, err := container.New(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to create container")
	}

	// Setup router
	router := setupRouter(c)

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	// Setup graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	serverErrChan := make(chan error, 1)
	go func() {
		log.Info("Server starting on port " + cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	select {
	case sig := <-quit:
		log.WithField("signal", sig.String()).Info("Received shutdown signal")
	case err := <-serverErrChan:
		log.WithError(err).Error("Server failed, initiating shutdown")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 25*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Failed to shutdown HTTP server")
	}
	if err := c.Close(); err != nil {
		log.WithError(err).Error("Failed to close container resources")
	}

	log.Info("Application shutdown complete")
}

// setupRouter configures and returns the HTTP router
func setupRouter(c *container.Container) *chi.Mux {
	cfg := c.Config
	log := c.Logger

	r := chi.NewRouter()

	corsConfig := &middleware.CORSConfig{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           86400,
	}

	r.Use(middleware.CORS(corsConfig, log))
	r.Use(middleware.RequestID(log))
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Compress(5))
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Create handlers
	healthHandler := handler.NewHealthHandler(log)
	catalogHandler := handler.NewCatalogHandler(c.Catalog)
	bookingHandler := handler.NewBookingHandler(c.Booking, log)
	authHandler := handler.NewAuthHandler(c.Auth, log)
	dashboardHandler := handler.NewDashboardHandler(c.Dashboard, c.Metrics, log)
	scheduleHandler := handler.NewScheduleHandler(c.Schedule, log)
	settingsHandler := handler.NewSettingsHandler(c.Catalog, log)

	// Health check (no auth required)
	r.Get("/health", healthHandler.Check)

	r.Route("/api", func(r chi.Router) {
		// Public booking flow
		r.Get("/activities", catalogHandler.List)
		r.Get("/activities/{slug}", catalogHandler.Get)
		r.Get("/activities/{slug}/slots", catalogHandler.Slots)
		r.Post("/bookings", bookingHandler.Submit)
		r.Post("/bookings/quote", bookingHandler.Quote)

		// Admin console
		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", authHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminAuth(c.Auth, log))

				r.Post("/logout", authHandler.Logout)

				r.Get("/requests", dashboardHandler.Requests)
				r.Get("/requests/activities", dashboardHandler.Activities)
				r.Patch("/requests/{id}/status", dashboardHandler.UpdateStatus)
				r.Get("/metrics", dashboardHandler.Metrics)

				r.Get("/schedule/week", scheduleHandler.Week)
				r.Get("/schedule/month", scheduleHandler.Month)

				r.Get("/activities", settingsHandler.List)
				r.Post("/activities", settingsHandler.Create)
				r.Put("/activities/{id}", settingsHandler.Update)
				r.Post("/activities/{id}/archive", settingsHandler.Archive)
				r.Post("/activities/{id}/restore", settingsHandler.Restore)
			})
		})
	})

	// 404 handler
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"type":"not_found","message":"Endpoint not found"}}`))
	})

	log.Info("Router configured successfully")
	return r
}
