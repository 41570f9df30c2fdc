package preview

import (
	"bytes"
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/toastui/internal/config"
	"github.com/vango-dev/toastui/internal/errors"
	"github.com/vango-dev/toastui/internal/gallery"
	"github.com/vango-dev/toastui/pkg/render"
	"github.com/vango-dev/toastui/pkg/vdom"
)

const tracerName = "github.com/vango-dev/toastui/internal/preview"

// Server is the preview server.
type Server struct {
	cfg      *config.Config
	fixture  *gallery.Fixture
	logger   *slog.Logger
	registry *prometheus.Registry
	tracer   trace.Tracer
	metrics  *metrics
	hub      *hub
	router   chi.Router

	mu        sync.Mutex
	handlers  map[string]any    // "<hid>_on<event>" from the last page render
	roots     map[string]string // toast id -> root hid
	dismissed map[string]bool
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithRegistry sets the Prometheus registry metrics are registered with.
// Defaults to a fresh registry owned by the server.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		s.registry = reg
	}
}

// WithTracerProvider sets the tracer provider. Defaults to the global one.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Server) {
		s.tracer = tp.Tracer(tracerName)
	}
}

// New creates a preview server for fixture.
func New(cfg *config.Config, fixture *gallery.Fixture, opts ...Option) *Server {
	s := &Server{
		cfg:       cfg,
		fixture:   fixture,
		handlers:  make(map[string]any),
		roots:     make(map[string]string),
		dismissed: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.logger = s.logger.With("component", "preview")
	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer(tracerName)
	}

	s.metrics = newMetrics(cfg.Metrics.Namespace, s.registry)
	s.hub = newHub(s.logger, s.metrics)
	s.hub.onEvent = s.handleClientMessage
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/", s.handleIndex)
	r.Get("/toast", s.handleToast)
	r.Post("/notify", s.handleNotify)
	r.Get("/healthz", s.handleHealth)
	r.Handle("/ws", s.hub)
	if s.cfg.Metrics.Enabled {
		r.Handle(s.cfg.Metrics.Path, promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}
	return r
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Clients returns the number of connected websocket clients.
func (s *Server) Clients() int {
	return s.hub.count()
}

// ListenAndServe serves on the configured address until ctx is cancelled,
// then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Address())
	if err != nil {
		return errors.New("E150").WithDetail("Cannot listen on " + s.cfg.Address()).Wrap(err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return errors.New("E150").Wrap(err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down preview server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout())
	defer cancel()

	s.hub.close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("E150").WithDetail("Shutdown did not complete").Wrap(err)
	}
	return nil
}

// renderResult is a rendered tree plus the handlers collected from it.
type renderResult struct {
	html     []byte
	handlers map[string]any
}

// render renders node inside a span and records render metrics.
func (s *Server) render(ctx context.Context, route string, node *vdom.VNode) (renderResult, error) {
	_, span := s.tracer.Start(ctx, "toastui.render",
		trace.WithAttributes(attribute.String("toastui.route", route)))
	defer span.End()

	start := time.Now()
	r := render.NewRenderer(render.RendererConfig{
		Pretty: s.cfg.Render.Pretty,
		Indent: strings.Repeat(" ", s.cfg.Render.Indent),
	})

	var buf bytes.Buffer
	err := r.RenderToWriter(&buf, node)
	s.metrics.renderDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())

	if err != nil {
		s.metrics.rendersTotal.WithLabelValues(route, "error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return renderResult{}, err
	}

	s.metrics.rendersTotal.WithLabelValues(route, "ok").Inc()
	span.SetAttributes(
		attribute.Int("toastui.bytes", buf.Len()),
		attribute.Int("toastui.handlers", len(r.Handlers())),
	)
	return renderResult{html: buf.Bytes(), handlers: r.Handlers()}, nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
