package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/artpar/sloganforge/internal/core/i18n"
	"github.com/artpar/sloganforge/internal/shell/api"
	"github.com/artpar/sloganforge/internal/shell/api/middleware"
	"github.com/artpar/sloganforge/internal/shell/generator"
	"github.com/artpar/sloganforge/internal/shell/render"
	"github.com/artpar/sloganforge/internal/shell/store"
	"github.com/artpar/sloganforge/internal/shell/web"
	"github.com/artpar/sloganforge/internal/shell/workers"
)

// =============================================================================
// Exit Codes
// =============================================================================

const (
	ExitSuccess         = 0
	ExitConfigError     = 1
	ExitDatabaseError   = 2
	ExitHTTPServerError = 4
)

// =============================================================================
// Server
// =============================================================================

// Server represents the SloganForge application server.
type Server struct {
	config     *Config
	httpServer *http.Server
	store      store.Store
	sweeper    *workers.SessionSweeper
	logger     *slog.Logger
}

// NewServer creates a new server with the given config.
func NewServer(cfg *Config, logger *slog.Logger) (*Server, error) {
	// Connect to database
	s, err := store.NewSQLiteStore(cfg.Database.DSN)
	if err != nil {
		return nil, &ServerError{
			Op:       "NewServer",
			Err:      err,
			ExitCode: ExitDatabaseError,
		}
	}

	language, _ := i18n.ParseLanguage(cfg.Site.DefaultLanguage)

	gen := generator.New(s, generator.Config{Delay: cfg.Site.GenerationDelay}, logger)
	renderer := render.NewRenderer(render.Config{MaxLogoBytes: cfg.Export.MaxLogoBytes}, logger)

	sessions := middleware.NewSessionMiddleware(middleware.SessionConfig{
		Store:           s,
		CookieName:      cfg.Sessions.CookieName,
		TTL:             cfg.Sessions.TTL,
		DefaultLanguage: language,
		SecureCookie:    cfg.Sessions.SecureCookie,
		Logger:          logger,
	})

	limiterConfig := middleware.RateLimitConfig{
		TrustProxy: cfg.RateLimit.TrustProxy,
		Logger:     logger,
	}
	if cfg.RateLimit.Enabled {
		limiterConfig.RequestsPerSecond = cfg.RateLimit.RequestsPerSecond
		limiterConfig.Burst = cfg.RateLimit.Burst
		logger.Info("rate limiting enabled",
			"requests_per_second", cfg.RateLimit.RequestsPerSecond,
			"burst", cfg.RateLimit.Burst,
		)
	} else {
		logger.Info("rate limiting disabled")
	}
	limiter := middleware.NewRateLimiter(limiterConfig)

	site := web.NewSite(web.Config{
		Store:           s,
		Generator:       gen,
		Renderer:        renderer,
		Limiter:         limiter,
		Logger:          logger,
		DefaultLanguage: language,
		MaxLogoBytes:    cfg.Export.MaxLogoBytes,
	})

	// Create HTTP handler: JSON:API, custom actions and the site behind them
	handler := api.SetupAPI(api.APIConfig{
		Store:        s,
		Generator:    gen,
		Renderer:     renderer,
		Logger:       logger,
		Sessions:     sessions,
		Limiter:      limiter,
		MaxLogoBytes: cfg.Export.MaxLogoBytes,
		Site:         site.Routes(),
		BaseURL:      cfg.Site.BaseURL,
	})

	// Create HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	sweeper := workers.NewSessionSweeper(s, workers.SessionSweeperConfig{
		Interval: cfg.Sessions.SweepInterval,
		TTL:      cfg.Sessions.TTL,
	}, logger, limiter)

	return &Server{
		config:     cfg,
		httpServer: httpServer,
		store:      s,
		sweeper:    sweeper,
		logger:     logger,
	}, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start starts the server and blocks until shutdown.
func (s *Server) Start(ctx context.Context) error {
	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	s.sweeper.Start()

	// Start HTTP server in goroutine
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server",
			"address", s.config.Server.Address())
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for shutdown signal or error
	select {
	case sig := <-sigCh:
		s.logger.Info("received shutdown signal", "signal", sig)
	case err := <-errCh:
		s.Shutdown(context.Background())
		return &ServerError{
			Op:       "Start",
			Err:      err,
			ExitCode: ExitHTTPServerError,
		}
	case <-ctx.Done():
		s.logger.Info("context cancelled")
	}

	return s.Shutdown(context.Background())
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("initiating graceful shutdown")

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.Server.ShutdownTimeout)
	defer cancel()

	// Shutdown HTTP server
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("HTTP server shutdown error", "error", err)
	}

	s.sweeper.Stop()

	// Close database
	if err := s.store.Close(); err != nil {
		s.logger.Error("database close error", "error", err)
	}

	s.logger.Info("shutdown complete")
	return nil
}

// =============================================================================
// Server Error
// =============================================================================

// ServerError represents an error during server operation.
type ServerError struct {
	Op       string
	Err      error
	ExitCode int
}

func (e *ServerError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *ServerError) Unwrap() error {
	return e.Err
}
