// Package server exposes the session tracker over the local HTTP API used by the
// desktop frontend and the CLI.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"focusboss/internal/logging"
	"focusboss/internal/ports"
	"focusboss/internal/services"
)

// DefaultAddr matches the port the desktop frontend expects
const DefaultAddr = "127.0.0.1:5000"

const shutdownTimeout = 30 * time.Second

// Server is the focusboss HTTP API
type Server struct {
	addr       string
	catalog    ports.PersonaCatalog
	clock      ports.Clock
	history    *services.HistoryService
	httpServer *http.Server
	prefs      *services.PreferencesService
	router     chi.Router
	tracker    *services.SessionTracker
	version    string
}

// NewServer creates a new Server and registers its routes
func NewServer(
	addr string,
	tracker *services.SessionTracker,
	prefs *services.PreferencesService,
	history *services.HistoryService,
	catalog ports.PersonaCatalog,
	clock ports.Clock,
	version string,
) *Server {
	if addr == "" {
		addr = DefaultAddr
	}

	s := &Server{
		addr:    addr,
		catalog: catalog,
		clock:   clock,
		history: history,
		prefs:   prefs,
		router:  chi.NewRouter(),
		tracker: tracker,
		version: version,
	}
	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) setupRoutes() {
	r := s.router
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)
	r.Use(allowAllOrigins)

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/personas", s.handleListPersonas)
		r.Get("/prefs", s.handleGetPrefs)
		r.Put("/prefs/interval", s.handleSetInterval)
		r.Post("/consent", s.handleConsent)
		r.Post("/start_day", s.handleStartDay)
		r.Get("/status", s.handleStatus)
		r.Get("/end_day", s.handleEndDay)
		r.Post("/end_day", s.handleEndDay)
		r.Get("/day", s.handleCurrentDay)
		r.Get("/logs", s.handleListLogs)
	})
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the configured listen address
func (s *Server) Addr() string {
	return s.addr
}

// Serve accepts connections on l until ctx is cancelled, then shuts down gracefully
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		logging.Logger.Info("HTTP server listening", "address", l.Addr().String())
		errCh <- s.httpServer.Serve(l)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	logging.Logger.Info("Shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	logging.Logger.Info("HTTP server stopped")
	return nil
}

// ListenAndServe listens on the configured address and serves until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context) error {
	l, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, l)
}

// requestLogger logs each request through the focusboss logger
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		logging.Logger.Debug("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).String(),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

// allowAllOrigins lets the desktop frontend call the API from a file:// page
func allowAllOrigins(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Headers", "Content-Type")
		h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
