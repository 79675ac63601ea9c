package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"volteryde-gate/internal/config"
	"volteryde-gate/internal/gate"
	"volteryde-gate/internal/logout"
	"volteryde-gate/internal/middlewares"
	"volteryde-gate/internal/version"

	"github.com/google/uuid"
)

const shutdownTimeout = 30 * time.Second

type Server struct {
	cfg         *config.Config
	logger      *slog.Logger
	logCloser   io.Closer
	appCtx      *middlewares.AppContext
	httpServer  *http.Server
	debugServer *http.Server
	instanceID  string
	ctx         context.Context
	cancel      context.CancelFunc
}

func New(cfg *config.Config) (*Server, error) {
	logger, logCloser := setupLogger(cfg, os.Stderr)

	ctx, cancel := context.WithCancel(context.Background())

	resolver, err := cfg.Resolver()
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to resolve identity provider: %w", err)
	}

	g := gate.New(cfg.Gate.AppID, resolver, gate.WithAllowlist(cfg.Gate.Allowlist...))
	appCtx := middlewares.NewAppContext(ctx, cfg, logger, g, logout.New(resolver))

	app, err := newApplicationHandler(cfg, logger)
	if err != nil {
		cancel()
		return nil, err
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           setupRouter(appCtx, app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	var debugServer *http.Server
	if cfg.Server.Debug != nil && cfg.Server.Debug.Enabled {
		debugServer = &http.Server{
			Addr:              fmt.Sprintf("%s:%d", cfg.Server.Debug.Host, cfg.Server.Debug.Port),
			Handler:           setupDebugRouter(),
			ReadHeaderTimeout: 10 * time.Second,
		}
	}

	instanceID := os.Getenv("HOSTNAME")
	if instanceID == "" {
		instanceID = uuid.New().String()
	}

	return &Server{
		cfg:         cfg,
		logger:      logger.With("instance", instanceID),
		logCloser:   logCloser,
		appCtx:      appCtx,
		httpServer:  server,
		debugServer: debugServer,
		instanceID:  instanceID,
		ctx:         ctx,
		cancel:      cancel,
	}, nil
}

func newApplicationHandler(cfg *config.Config, logger *slog.Logger) (http.Handler, error) {
	if cfg.Server.UpstreamURL != "" {
		logger.Info("proxying gated requests", "upstream", cfg.Server.UpstreamURL)
		return newUpstreamProxy(cfg.Server.UpstreamURL, logger)
	}

	logger.Info("serving gated static files", "dir", cfg.Server.StaticDir)
	return newStaticHandler(cfg.Server.StaticDir), nil
}

// Start blocks until a shutdown signal arrives or a listener fails.
func (s *Server) Start() error {
	defer s.logCloser.Close()

	listenErr := make(chan error, 2)

	go func() {
		s.logger.Info("Server Started",
			append([]any{"port", s.cfg.Server.Port, "app", s.cfg.Gate.AppID, "environment", s.cfg.Gate.Environment}, version.Info()...)...)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server failed to start", "error", err)
			listenErr <- err
			s.cancel()
		}
	}()

	if s.debugServer != nil {
		go func() {
			s.logger.Info("Metrics server starting", "address", s.debugServer.Addr)
			if err := s.debugServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.logger.Error("Metrics server failed to start", "error", err)
				listenErr <- err
				s.cancel()
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
		s.logger.Info("Shutdown signal received")
	case <-s.ctx.Done():
		s.logger.Info("Context canceled")
	}

	return s.shutdown(listenErr)
}

func (s *Server) shutdown(listenErr <-chan error) error {
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	s.logger.Info("Shutting Down Server")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("Server forced to shutdown", "error", err)
		return err
	}

	if s.debugServer != nil {
		if err := s.debugServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Debug server forced to shutdown", "error", err)
		}
	}

	s.cancel()

	select {
	case err := <-listenErr:
		return err
	default:
	}

	s.logger.Info("Server Exited")
	return nil
}
