// Package httpserver wires the docsite HTTP API onto a chi router.
package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	prom "github.com/prometheus/client_golang/prometheus"

	derrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/metrics"
	"git.home.luguber.info/inful/docsite/internal/server/handlers"
	smw "git.home.luguber.info/inful/docsite/internal/server/middleware"
	"git.home.luguber.info/inful/docsite/internal/site"
)

const shutdownTimeout = 5 * time.Second

// Options configures a Server.
type Options struct {
	Addr        string
	MetricsPath string
	// Pretty indents every JSON response.
	Pretty   bool
	Recorder metrics.Recorder
	// Gatherer backs the metrics endpoint; nil disables it.
	Gatherer prom.Gatherer
	Logger   *slog.Logger
}

// Server serves the configuration held by a site.Current.
type Server struct {
	opts         Options
	router       *chi.Mux
	errorAdapter *derrors.HTTPErrorAdapter

	siteHandlers       *handlers.SiteHandlers
	monitoringHandlers *handlers.MonitoringHandlers
}

// New builds the router. current must hold a site.
func New(current *site.Current, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Recorder == nil {
		opts.Recorder = metrics.NoopRecorder{}
	}
	if opts.MetricsPath == "" {
		opts.MetricsPath = "/metrics"
	}
	s := &Server{
		opts:               opts,
		router:             chi.NewRouter(),
		errorAdapter:       derrors.NewHTTPErrorAdapter(opts.Logger),
		siteHandlers:       handlers.NewSiteHandlers(current, opts.Recorder, opts.Pretty),
		monitoringHandlers: handlers.NewMonitoringHandlers(current),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(smw.Chain(s.opts.Logger, s.errorAdapter, s.opts.Recorder))

	s.router.Get("/healthz", s.monitoringHandlers.HandleHealthCheck)
	if s.opts.Gatherer != nil {
		s.router.Method(http.MethodGet, s.opts.MetricsPath, metrics.HTTPHandler(s.opts.Gatherer))
	}

	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.errorAdapter.WriteErrorResponse(w, r,
			derrors.NotFoundError("no such endpoint").WithContext("path", r.URL.Path).Build())
	})
	s.router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", http.MethodGet)
		s.errorAdapter.WriteErrorResponse(w, r,
			derrors.ValidationError("invalid HTTP method").
				WithContext("method", r.Method).
				WithContext("allowed_method", http.MethodGet).
				Build())
	})

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/site", s.siteHandlers.HandleSite)
		r.Get("/sidebar", s.siteHandlers.HandleSidebar)
		r.Get("/nav", s.siteHandlers.HandleNav)
		r.Get("/head", s.siteHandlers.HandleHead)
	})
}

// Handler returns the routed handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.router }

// Start listens on the configured address and serves until ctx is done, then
// shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.opts.Addr)
	if err != nil {
		return derrors.WrapError(err, derrors.CategoryRuntime, "http startup failed").
			WithContext("addr", s.opts.Addr).
			Build()
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.opts.Logger.Info("HTTP server started", slog.String("addr", ln.Addr().String()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	s.opts.Logger.Info("HTTP server stopped")
	return nil
}
