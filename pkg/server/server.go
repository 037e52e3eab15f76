package server

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/SRombauts/HtmlBuilder/internal/config"
	"github.com/SRombauts/HtmlBuilder/internal/dev"
	"github.com/SRombauts/HtmlBuilder/pkg/dom"
	"github.com/SRombauts/HtmlBuilder/pkg/layout"
	"github.com/SRombauts/HtmlBuilder/pkg/middleware"
)

const tracerName = "github.com/SRombauts/HtmlBuilder/pkg/server"

// Server previews the descriptions of a project over HTTP.
type Server struct {
	cfg      *config.Config
	renderer *dom.Renderer
	logger   *slog.Logger

	registerer     prometheus.Registerer
	gatherer       prometheus.Gatherer
	metrics        *middleware.Metrics
	tracerProvider trace.TracerProvider
	tracer         trace.Tracer

	hub             *dev.ReloadHub
	router          chi.Router
	httpServer      *http.Server
	shutdownTimeout time.Duration
}

// New creates a server for the project described by cfg.
func New(cfg *config.Config, opts ...Option) *Server {
	s := &Server{
		cfg:             cfg,
		renderer:        dom.NewRenderer(cfg.RenderConfig()),
		logger:          slog.Default(),
		registerer:      prometheus.DefaultRegisterer,
		gatherer:        prometheus.DefaultGatherer,
		shutdownTimeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "server")
	if s.tracerProvider == nil {
		s.tracerProvider = otel.GetTracerProvider()
	}
	s.tracer = s.tracerProvider.Tracer(tracerName)
	s.metrics = middleware.NewMetrics(middleware.WithRegistry(s.registerer))
	s.hub = dev.NewReloadHub(s.logger)
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(s.metrics.Handler)
	r.Use(middleware.OpenTelemetry(middleware.WithTracerProvider(s.tracerProvider)))

	r.Get("/", s.handleIndex)
	r.Get("/docs/{name}", s.handleDocument)
	r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	if s.cfg.Serve.Watch {
		r.Get(dev.ScriptPath, dev.ServeScript)
		r.Handle(dev.ReloadPath, s.hub)
	}
	return r
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Hub returns the live reload hub.
func (s *Server) Hub() *dev.ReloadHub {
	return s.hub
}

// Run listens on the configured address and serves until ctx ends.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Address())
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx ends, then shuts down gracefully. When watch
// is enabled the source directory is polled and pages reload on change.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.cfg.Serve.Watch {
		watcher := dev.NewWatcher(dev.WatcherConfig{
			Paths:    dev.CollectWatchPaths(s.cfg),
			Interval: s.cfg.PollDuration(),
		})
		watcher.OnChange(s.handleChanges)
		go func() {
			if err := watcher.Start(ctx); err != nil && !stderrors.Is(err, context.Canceled) {
				s.logger.Error("watcher stopped", "error", err)
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", ln.Addr().String(), "source", s.cfg.SourcePath())
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if !stderrors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil

	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown closes reload connections and gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.shutdownTimeout)
	defer cancel()

	s.hub.Close()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}

	s.logger.Info("server shutdown complete")
	return nil
}

// handleChanges rebuilds changed descriptions. A broken description shows
// an overlay; otherwise pages reload.
func (s *Server) handleChanges(changes []dev.Change) {
	for _, c := range changes {
		s.logger.Debug("file changed", "path", c.Path, "type", c.Type, "removed", c.Removed)
		if c.Removed || c.Type != dev.ChangeDescription {
			continue
		}
		if _, err := layout.BuildFile(c.Path); err != nil {
			s.logger.Warn("description failed to build", "path", c.Path, "error", err)
			s.hub.NotifyError(err)
			return
		}
	}

	s.hub.ClearError()
	if len(changes) > 0 {
		s.hub.NotifyReload(changes[0].Path)
	}
}
