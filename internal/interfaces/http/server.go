// internal/interfaces/http/server.go
package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-gateway/internal/config"
	"github.com/your-org/storefront-gateway/internal/infrastructure/storage"
	"github.com/your-org/storefront-gateway/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-gateway/internal/interfaces/http/routes"
	"github.com/your-org/storefront-gateway/internal/platform"
)

// Server represents the HTTP server
type Server struct {
	config     *config.Config
	gin        *gin.Engine
	httpServer *http.Server
	storage    storage.Store
	platform   *platform.Client
	logger     *logrus.Logger
}

// NewServer creates a new HTTP server instance
func NewServer(cfg *config.Config, st storage.Store, client *platform.Client, logger *logrus.Logger) *Server {
	return &Server{
		config:   cfg,
		storage:  st,
		platform: client,
		logger:   logger,
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	// Set Gin mode based on environment
	if s.config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Create Gin engine
	s.gin = gin.New()

	// Setup middleware
	s.setupMiddleware()

	// Setup routes
	s.setupRoutes()

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.gin,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
		IdleTimeout:  s.config.Server.IdleTimeout,
	}

	s.logger.WithField("port", s.config.Server.Port).Info("HTTP server starting")

	// Start server
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	return nil
}

// setupMiddleware configures all middleware for the server
func (s *Server) setupMiddleware() {
	// Recovery middleware - recover from panics
	s.gin.Use(gin.Recovery())

	// Request ID middleware
	s.gin.Use(middleware.RequestID())

	// Request logging
	s.gin.Use(middleware.Logger(s.logger))

	// CORS middleware
	s.gin.Use(middleware.CORS(s.config))
}

// setupRoutes configures all routes for the server
func (s *Server) setupRoutes() {
	// Health check endpoints (no auth required)
	s.gin.GET("/health", s.healthCheck)
	s.gin.GET("/ready", s.readinessCheck)

	v1 := s.gin.Group("/api/v1")
	routes.SetupAuthRoutes(v1, s.platform, s.config)
	routes.SetupCatalogRoutes(v1, s.platform, s.config)
	routes.SetupCartRoutes(v1, s.storage, s.platform, s.config, s.logger)
	routes.SetupAccountRoutes(v1, s.platform, s.config)
	routes.SetupSupplierRoutes(v1, s.platform, s.config)
}

// healthCheck reports liveness
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"name":        s.config.App.Name,
		"version":     s.config.App.Version,
		"environment": s.config.App.Environment,
	})
}

// readinessCheck reports whether the cart storage is reachable
func (s *Server) readinessCheck(c *gin.Context) {
	ctx := c.Request.Context()
	if _, err := s.storage.Load(ctx, "readiness-probe"); err != nil && !errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "storage unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}
