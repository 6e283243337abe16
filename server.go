package taxicompare

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/theoremus-urban-solutions/taxi-compare/config"
)

// Server exposes a Service over HTTP
type Server struct {
	svc    *Service
	cfg    config.ServerConfig
	logger *slog.Logger
	http   *http.Server
}

func NewServer(svc *Service, cfg config.ServerConfig, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{svc: svc, cfg: cfg, logger: logger}
}

// Handler builds the router. API routes are matched before static files.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(withRequestID)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	api.HandleFunc("/summary", s.handleSummary).Methods(http.MethodGet)
	api.HandleFunc("/{view}", s.handleView).Methods(http.MethodGet)

	if s.cfg.MetricsEnabled() {
		r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	}
	if s.cfg.StaticDir != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(s.cfg.StaticDir)))
	}
	return r
}

// Start listens in the background. Listen failures are delivered on the
// returned channel.
func (s *Server) Start() <-chan error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	errs := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
		close(errs)
	}()
	s.logger.Info("server listening", "addr", addr)
	return errs
}

// HandleGracefulShutdown blocks until ctx is cancelled or the listener fails,
// then drains in-flight requests for up to 10 seconds.
func (s *Server) HandleGracefulShutdown(ctx context.Context, errs <-chan error) error {
	var listenErr error
	select {
	case <-ctx.Done():
		s.logger.Info("shutdown signal received")
	case err, ok := <-errs:
		if ok {
			listenErr = fmt.Errorf("server error: %w", err)
		}
	}
	if s.http == nil {
		return listenErr
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("server shutdown error", "error", err)
		return errors.Join(listenErr, err)
	}
	s.logger.Info("server shut down successfully")
	return listenErr
}
