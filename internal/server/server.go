// SPDX-License-Identifier: MIT
// Package: ivivc/internal/server
//
// server.go — router, request instrumentation and graceful shutdown.

// Package server exposes the analysis runs as a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/ivivc"
	"github.com/katalvlaran/ivivc/internal/config"
	"github.com/katalvlaran/ivivc/internal/telemetry"
)

// Server routes API requests to an Engine.
type Server struct {
	engine *ivivc.Engine
	log    *slog.Logger
	rec    telemetry.Recorder
	router *mux.Router
}

// New wires the routes. A nil logger uses slog.Default and a nil recorder
// discards metrics.
func New(engine *ivivc.Engine, log *slog.Logger, rec telemetry.Recorder) *Server {
	if log == nil {
		log = slog.Default()
	}
	if rec == nil {
		rec = telemetry.NewNoOp()
	}
	s := &Server{engine: engine, log: log, rec: rec, router: mux.NewRouter()}
	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(s.instrument)

	s.router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	api := s.router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/level-a", s.handleLevelA).Methods(http.MethodGet)
	api.HandleFunc("/level-b", s.handleLevelB).Methods(http.MethodGet)
	api.HandleFunc("/level-c", s.handleLevelC).Methods(http.MethodGet)
	api.HandleFunc("/similarity", s.handleSimilarity).Methods(http.MethodGet)
	api.HandleFunc("/validation", s.handleValidation).Methods(http.MethodGet)
	api.HandleFunc("/validation", s.handleValidatePairs).Methods(http.MethodPost)
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler { return s.router }

// Start serves on cfg.Addr until ctx is cancelled, then shuts down
// gracefully within cfg.ShutdownTimeout.
func (s *Server) Start(ctx context.Context, cfg config.Config) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Error("server shutdown", "err", err)
		}
	}()

	s.log.Info("serving", "addr", cfg.Addr)
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return fmt.Errorf("listen %s: %w", cfg.Addr, err)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// instrument logs and measures every routed request under its path template.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sr, r)

		route := r.URL.Path
		if cur := mux.CurrentRoute(r); cur != nil {
			if tpl, err := cur.GetPathTemplate(); err == nil {
				route = tpl
			}
		}
		d := time.Since(start)
		s.rec.RecordRequest(r.Context(), route, sr.status, d)

		lvl := slog.LevelDebug
		if sr.status >= http.StatusInternalServerError {
			lvl = slog.LevelError
		} else if sr.status >= http.StatusBadRequest {
			lvl = slog.LevelWarn
		}
		s.log.Log(r.Context(), lvl, "request",
			"method", r.Method, "route", route, "status", sr.status, "duration", d)
	})
}
