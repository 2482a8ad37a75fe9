// Package server exposes graph conversion over HTTP.
//
// Routes:
//
//	GET  /healthz                    liveness and build version
//	GET  /formats                    registered formats
//	POST /convert?from=gexf&to=json  convert the request body
//	POST /inspect?from=graphml       summarize the request body
//
// Every response carries an X-Request-ID header. Failures are reported as
// JSON objects with "error", "code" and "request_id" members.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/graphbridge/pkg/convert"
)

// Default limits.
const (
	DefaultAddr         = ":8080"
	DefaultMaxBodyBytes = 32 << 20
	shutdownTimeout     = 10 * time.Second
)

// Config controls the listener and request limits.
type Config struct {
	Addr         string
	MaxBodyBytes int64
}

func (c Config) withDefaults() Config {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = DefaultMaxBodyBytes
	}
	return c
}

// Server serves conversion requests.
type Server struct {
	cfg    Config
	runner *convert.Runner
	logger *log.Logger
	router chi.Router
}

// New creates a server. A nil runner gets one that logs through logger.
func New(cfg Config, runner *convert.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if runner == nil {
		runner = convert.NewRunner(logger)
	}
	s := &Server{
		cfg:    cfg.withDefaults(),
		runner: runner,
		logger: logger,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/formats", s.handleFormats)
	r.Post("/convert", s.handleConvert)
	r.Post("/inspect", s.handleInspect)
	return r
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.cfg.Addr
}

// ListenAndServe serves until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
