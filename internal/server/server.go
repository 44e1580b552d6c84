// Package server exposes the conversion and rendering pipeline over HTTP.
// Graphs are posted as request bodies in any readable format and come back
// converted or drawn; rendered artifacts are cached by content hash.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/graphport/graphport/pkg/cache"
	"github.com/graphport/graphport/pkg/config"
)

// Server is the HTTP front end.
type Server struct {
	router *chi.Mux
	logger *log.Logger
	cache  cache.Cache
	cfg    config.Config
}

// New builds a server around the given cache and config defaults.
func New(cfg config.Config, c cache.Cache, logger *log.Logger) *Server {
	s := &Server{
		router: chi.NewRouter(),
		logger: logger,
		cache:  c,
		cfg:    cfg,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(requestID)
	s.router.Use(s.logRequests)
	s.router.Use(recoverer(s.logger))

	s.router.Get("/healthz", s.handleHealthz)
	s.router.Get("/formats", s.handleFormats)
	s.router.Post("/convert", s.handleConvert)
	s.router.Post("/render", s.handleRender)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe runs the server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info("server listening", "addr", s.cfg.Server.Addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
