package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kuradex-labs/kuradex/internal/adapters/driven/config/file"
	"github.com/kuradex-labs/kuradex/internal/core/ports/driving"
)

// Server wires the HTTP routes to the driving ports.
type Server struct {
	catalog driving.CatalogService
	search  driving.SearchService
	engine  *gin.Engine
	http    *http.Server
	cfg     file.Config
	log     *zap.Logger
}

// NewServer builds the gin engine and registers all routes.
func NewServer(
	cfg file.Config,
	catalog driving.CatalogService,
	search driving.SearchService,
	log *zap.Logger,
) *Server {
	if log == nil {
		log = zap.NewNop()
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	s := &Server{
		catalog: catalog,
		search:  search,
		engine:  engine,
		cfg:     cfg,
		log:     log,
	}

	engine.Use(
		RequestIDMiddleware(),
		LoggingMiddleware(log),
		RecoveryMiddleware(log),
		CORSMiddleware(),
		SecurityHeadersMiddleware(),
	)
	if cfg.RateLimit.RequestsPerSecond > 0 {
		engine.Use(RateLimitMiddleware(cfg.RateLimit))
	}

	s.registerRoutes()

	s.http = &http.Server{
		Addr:         cfg.Server.ListenAddr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout(),
		WriteTimeout: cfg.Server.WriteTimeout(),
	}

	return s
}

func (s *Server) registerRoutes() {
	s.engine.GET("/health", s.handleHealth)

	api := s.engine.Group("/api")
	{
		api.GET("/collections", s.handleListCollections)
		api.GET("/collections/search", s.handleSearch)
		api.GET("/collections/categories", s.handleCategories)
		api.GET("/collections/tags", s.handleTags)
		api.GET("/collections/:id", s.handleGetCollection)
		api.POST("/collections/rebuild", s.handleRebuild)

		api.GET("/ProjectSettings", s.handleProjectSettings)

		api.GET("/Files/thumbnail/:collectionId", s.handleThumbnail)
		api.GET("/File/data/:collectionId/:fileName", s.handleDataFile)
		api.GET("/File/:collectionId/:fileName", s.handlePictureFile)
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start serves requests until the context is cancelled, then drains
// in-flight requests within the configured shutdown timeout.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", zap.String("addr", s.http.Addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout())
	defer cancel()

	s.log.Info("shutting down http server")
	return s.http.Shutdown(shutdownCtx)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// errorResponse is the uniform error body.
func errorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
