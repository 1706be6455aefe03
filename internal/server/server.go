// Package server exposes the calendar feed and its debug surfaces over
// HTTP.
//
// Routes: / (landing page with subscription instructions), /calendar.ics
// (the feed, text/calendar), /debug (the parsed game list as an HTML
// table, including the raw date and time text the normalizer consumed),
// /health, and /metrics. The debug table is the acceptance-testing
// surface for the normalizer and always reflects exactly what the last
// successful cycle produced.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/pfrederiksen/gridiron-ical/internal/logger"
	"github.com/pfrederiksen/gridiron-ical/internal/storage"
)

// Server is the HTTP shell around the published calendar.
type Server struct {
	srv *http.Server
}

// New creates a Server listening on addr, serving artifacts from store.
func New(addr string, store *storage.Store, team string) *Server {
	h := &handler{store: store, team: team}

	r := mux.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	r.HandleFunc("/", h.landing).Methods("GET")
	r.HandleFunc("/calendar.ics", h.calendar).Methods("GET")
	r.HandleFunc("/debug", h.debug).Methods("GET")
	r.HandleFunc("/health", h.health).Methods("GET")
	r.HandleFunc("/metrics", h.metrics).Methods("GET")

	return &Server{
		srv: &http.Server{
			Addr:         addr,
			Handler:      r,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
	}
}

// Start serves until Shutdown is called or the listener fails.
func (s *Server) Start() error {
	logger.Info("HTTP server listening", logger.Fields{"addr": s.srv.Addr})
	return s.srv.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// recoveryMiddleware keeps a handler panic from killing the process.
func recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("handler panic", logger.Fields{
					"path":  r.URL.Path,
					"panic": rec,
				}, nil)
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs one structured entry per request.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("request", logger.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).String(),
		})
	})
}
