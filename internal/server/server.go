// Package server serves the template gallery over HTTP: the gallery page,
// per-template detail and printable pages, the catalog and descriptor APIs,
// and the embedded assets.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/goliatone/go-cvtemplates/components/catalog"
	"github.com/goliatone/go-cvtemplates/internal/logging"
	"github.com/goliatone/go-cvtemplates/pkg/gallery"
)

const (
	defaultAddr  = ":8080"
	defaultGrace = 10 * time.Second

	// AssetsPath is where the embedded stylesheet and print script are mounted.
	AssetsPath = "/assets/"
)

// Options configures a Server.
type Options struct {
	Addr          string
	ShutdownGrace time.Duration
	Gallery       *gallery.Gallery
	Logger        *slog.Logger
	// CatalogOptions are passed to the catalog component mounted at
	// /api/plantillas.
	CatalogOptions []catalog.OptionFn
}

// Server wires the gallery into an http.Server.
type Server struct {
	addr    string
	grace   time.Duration
	gallery *gallery.Gallery
	logger  *slog.Logger
	pages   *Pages
	handler http.Handler
}

// New validates the gallery and builds the route table.
func New(opts Options) (*Server, error) {
	if opts.Gallery == nil {
		opts.Gallery = gallery.New()
	}
	if err := opts.Gallery.Err(); err != nil {
		return nil, fmt.Errorf("server: gallery: %w", err)
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Addr == "" {
		opts.Addr = defaultAddr
	}
	if opts.ShutdownGrace <= 0 {
		opts.ShutdownGrace = defaultGrace
	}

	pages, err := NewPages()
	if err != nil {
		return nil, err
	}

	s := &Server{
		addr:    opts.Addr,
		grace:   opts.ShutdownGrace,
		gallery: opts.Gallery,
		logger:  opts.Logger,
		pages:   pages,
	}

	mux := http.NewServeMux()
	if err := s.routes(mux, opts.CatalogOptions); err != nil {
		return nil, err
	}
	s.handler = chain(mux,
		requestID,
		accessLog(s.logger),
		recoverer(s.logger),
	)
	return s, nil
}

// Handler returns the root handler with middleware applied.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.addr
}

// Run serves until ctx is cancelled, then shuts down within the grace period.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", slog.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: serve: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("server shutting down", slog.Duration("grace", s.grace))
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.grace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: serve: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}
