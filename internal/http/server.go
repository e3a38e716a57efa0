// Package http provides the API server: router setup, ambient middleware and the
// operational endpoints.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/foodshare/server/internal/auth/http"
	authUseCase "github.com/foodshare/server/internal/auth/usecase"
	"github.com/foodshare/server/internal/config"
	foodHTTP "github.com/foodshare/server/internal/food/http"
	requestHTTP "github.com/foodshare/server/internal/foodrequest/http"
	"github.com/foodshare/server/internal/metrics"
)

// RootMessage is the plain text greeting served at GET /.
const RootMessage = "Food code is cooking"

// ReadinessCheck reports whether a dependency can serve traffic.
type ReadinessCheck func(ctx context.Context) error

// Server is the API HTTP server.
type Server struct {
	server    *http.Server
	logger    *slog.Logger
	dbCheck   ReadinessCheck
	readiness time.Duration
}

// NewServer creates the API server. dbCheck backs GET /ready; a nil check always
// reports the database as unavailable.
func NewServer(dbCheck ReadinessCheck, host string, port int, logger *slog.Logger) *Server {
	return &Server{
		server:    newHTTPServer(fmt.Sprintf("%s:%d", host, port), nil),
		logger:    logger,
		dbCheck:   dbCheck,
		readiness: 2 * time.Second,
	}
}

// SetupRouter registers middleware and every route. metricsProvider may be nil when
// metrics are disabled.
func (s *Server) SetupRouter(
	cfg *config.Config,
	foodHandler *foodHTTP.FoodHandler,
	requestHandler *requestHTTP.FoodRequestHandler,
	gate authUseCase.GateUseCase,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()

	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))
	router.Use(gin.Recovery())
	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}
	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/", s.rootHandler)
	router.GET("/health", healthHandler)
	router.GET("/ready", s.readinessHandler)

	foods := router.Group("/foods")
	{
		foods.GET("", foodHandler.ListHandler)
		foods.POST("", foodHandler.CreateHandler)
		foods.GET("/:id", foodHandler.GetHandler)
		foods.PATCH("/:id", foodHandler.UpdateHandler)
		foods.DELETE("/:id", foodHandler.DeleteHandler)
	}

	router.POST("/requests", requestHandler.CreateHandler)

	owner := authHTTP.OwnerRoute(gate, s.logger)
	router.GET("/myFood", owner(foodHandler.ListMineHandler))
	router.GET("/myRequests", owner(requestHandler.ListMineHandler))

	s.server.Handler = router
}

func newHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// Handler returns the configured router, nil before SetupRouter.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start serves until Shutdown is called.
func (s *Server) Start(ctx context.Context) error {
	if s.server.Handler == nil {
		return fmt.Errorf("router is not configured")
	}

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

func (s *Server) rootHandler(c *gin.Context) {
	c.String(http.StatusOK, RootMessage)
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) readinessHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), s.readiness)
	defer cancel()

	if s.dbCheck == nil {
		s.notReady(c, fmt.Errorf("database check is not configured"))
		return
	}
	if err := s.dbCheck(ctx); err != nil {
		s.notReady(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"database": "ok"},
	})
}

func (s *Server) notReady(c *gin.Context, err error) {
	s.logger.Warn("readiness check failed", slog.Any("error", err))
	c.JSON(http.StatusServiceUnavailable, gin.H{
		"status":     "not_ready",
		"components": gin.H{"database": "error"},
	})
}
