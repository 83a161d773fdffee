// Package server serves the tjStuff+ dashboard and its JSON API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"golang.org/x/sync/errgroup"

	"github.com/wdm0006/tjstuff/internal/chart"
	"github.com/wdm0006/tjstuff/pkg/dataset"
)

// Server is the dashboard HTTP server.
type Server struct {
	data              *dataset.Dataset
	charts            *chart.Renderer
	sessionStore      *sessions.CookieStore
	corsOrigins       []string
	addr              string
	readHeaderTimeout time.Duration
	logger            *slog.Logger
}

// Config holds configuration for the server.
type Config struct {
	Dataset           *dataset.Dataset
	Charts            *chart.Renderer
	Addr              string
	SessionSecret     string
	CORSOrigins       []string
	ReadHeaderTimeout time.Duration
	Logger            *slog.Logger
}

// New creates a server. An empty session secret is replaced by a random one,
// which invalidates sessions on restart.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	secret := cfg.SessionSecret
	if secret == "" {
		secret = uuid.NewString() + uuid.NewString()
		logger.Warn("no session secret configured, sessions will not survive a restart")
	}
	sessionStore := sessions.NewCookieStore([]byte(secret))
	sessionStore.MaxAge(86400 * 7)
	sessionStore.Options.Path = "/"
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.SameSite = http.SameSiteLaxMode

	rht := cfg.ReadHeaderTimeout
	if rht <= 0 {
		rht = 10 * time.Second
	}
	return &Server{
		data:              cfg.Dataset,
		charts:            cfg.Charts,
		sessionStore:      sessionStore,
		corsOrigins:       cfg.CORSOrigins,
		addr:              cfg.Addr,
		readHeaderTimeout: rht,
		logger:            logger,
	}
}

// Routes returns the full handler tree.
func (s *Server) Routes() http.Handler {
	r := chi.NewMux()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
		middleware.Compress(5),
	)
	if len(s.corsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.corsOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Get("/health", s.handleHealth)
	r.Get("/", s.handleDashboard)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/pitch-types", s.handlePitchTypes)
		r.Get("/table", s.handleTable)
		r.Get("/pitchers", s.handlePitchers)
		r.Get("/pitchers/{id}/plot", s.handlePlot)
		r.Get("/pitchers/{id}/chart.png", s.handleChart)
		r.Get("/session", s.handleGetSession)
		r.Post("/session/selection", s.handleSetSelection)
	})
	return r
}

// Serve starts the server and blocks until ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.addr, err)
	}
	return s.ServeListener(ctx, ln)
}

// ServeListener is Serve on an existing listener.
func (s *Server) ServeListener(ctx context.Context, ln net.Listener) error {
	s.logger.Info("starting dashboard", "addr", "http://"+ln.Addr().String(), "dataset", s.data.Summary())

	eg, egctx := errgroup.WithContext(ctx)
	srv := &http.Server{
		Handler: s.Routes(),
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: s.readHeaderTimeout,
	}

	eg.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down dashboard")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}
