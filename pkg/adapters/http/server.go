package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/stenomods"
	"github.com/aretw0/stenomods/pkg/domain"
	"github.com/aretw0/stenomods/pkg/ports"
	"github.com/aretw0/stenomods/pkg/registry"
	"github.com/aretw0/stenomods/pkg/runner"
)

// ShutdownTimeout bounds graceful shutdown of ListenAndServe.
const ShutdownTimeout = 5 * time.Second

// Server implements ServerInterface over a dictionary registry.
type Server struct {
	Dictionaries *registry.Registry
	Logger       *slog.Logger
}

// Ensure Server implements ServerInterface
var _ ServerInterface = (*Server)(nil)

// Option configures the handler.
type Option func(*handlerConfig)

type handlerConfig struct {
	logger   *slog.Logger
	gatherer prometheus.Gatherer
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *handlerConfig) {
		c.logger = logger
	}
}

// WithMetrics mounts GET /metrics for the gatherer.
func WithMetrics(gatherer prometheus.Gatherer) Option {
	return func(c *handlerConfig) {
		c.gatherer = gatherer
	}
}

// NewHandler creates a new HTTP handler for the registry.
func NewHandler(reg *registry.Registry, opts ...Option) http.Handler {
	cfg := handlerConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	server := &Server{Dictionaries: reg, Logger: cfg.logger}
	r := chi.NewRouter()

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(rawSpec)
	})
	if cfg.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.gatherer, promhttp.HandlerOpts{}))
	}

	handler := HandlerFromMux(server, r)
	return enableCORS(handler)
}

// ListenAndServe runs the handler on addr until ctx is done, then shuts down gracefully.
func ListenAndServe(ctx context.Context, addr string, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "address", addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()

		logger.Info("Shutting down HTTP server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			_ = srv.Close()
			return fmt.Errorf("graceful shutdown did not complete in %v: %w", ShutdownTimeout, err)
		}
		return nil
	}
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetLookup handles the GET /lookup request.
func (s *Server) GetLookup(w http.ResponseWriter, r *http.Request, params GetLookupParams) {
	entry, err := runner.SanitizeStroke(params.Stroke)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid stroke: %v", err), http.StatusBadRequest)
		s.Logger.Warn("GetLookup: Input rejected", "err", err, "size", len(params.Stroke))
		return
	}
	s.lookup(w, r, runner.SplitStrokes(entry), params.Dictionary)
}

// PostLookup handles the POST /lookup request.
func (s *Server) PostLookup(w http.ResponseWriter, r *http.Request) {
	var body LookupRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.Logger.Warn("PostLookup: Invalid request body", "err", err)
		return
	}

	strokes := make([]string, 0, len(body.Strokes))
	for _, stroke := range body.Strokes {
		clean, err := runner.SanitizeStroke(stroke)
		if err != nil {
			http.Error(w, fmt.Sprintf("Invalid stroke: %v", err), http.StatusBadRequest)
			s.Logger.Warn("PostLookup: Input rejected", "err", err, "size", len(stroke))
			return
		}
		strokes = append(strokes, clean)
	}
	s.lookup(w, r, strokes, body.Dictionary)
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request, strokes []string, dictionary *string) {
	var (
		name string
		out  string
		err  error
	)
	if dictionary != nil && *dictionary != "" {
		var dict ports.Dictionary
		dict, err = s.Dictionaries.Get(*dictionary)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		name = *dictionary
		out, err = dict.Lookup(r.Context(), strokes)
	} else {
		name, out, err = s.Dictionaries.Resolve(r.Context(), strokes)
	}

	resp := LookupResponse{Strokes: strokes}
	switch {
	case err == nil:
		resp.Applicable = true
		resp.Output = &out
		resp.Dictionary = &name
	case domain.IsNotApplicable(err):
		resp.Error = ptr(err.Error())
	default:
		http.Error(w, fmt.Sprintf("Lookup error: %v", err), http.StatusInternalServerError)
		s.Logger.Error("Lookup failed", "err", err)
		return
	}

	writeJSON(w, s.Logger, resp)
}

// GetExplain handles the GET /explain request.
func (s *Server) GetExplain(w http.ResponseWriter, r *http.Request, params GetExplainParams) {
	dict, err := s.Dictionaries.Get(params.Engine)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	explainer, ok := dict.(ports.Explainer)
	if !ok {
		http.Error(w, fmt.Sprintf("dictionary %s cannot explain lookups", params.Engine), http.StatusBadRequest)
		return
	}

	entry, err := runner.SanitizeStroke(params.Stroke)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid stroke: %v", err), http.StatusBadRequest)
		return
	}

	res, err := explainer.Explain(r.Context(), runner.SplitStrokes(entry))
	resp := ExplainResponse{Applicable: err == nil, Resolution: res}
	if err != nil {
		if !domain.IsNotApplicable(err) {
			http.Error(w, fmt.Sprintf("Explain error: %v", err), http.StatusInternalServerError)
			s.Logger.Error("Explain failed", "err", err)
			return
		}
		resp.Error = ptr(err.Error())
	}
	writeJSON(w, s.Logger, resp)
}

// GetDictionaries handles the GET /dictionaries request.
func (s *Server) GetDictionaries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Logger, s.Dictionaries.Names())
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Logger, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if swagger, err := GetSwagger(); err == nil && swagger.Info != nil {
		apiVersion = swagger.Info.Version
	} else if err != nil {
		s.Logger.Error("Failed to load OpenAPI spec", "err", err)
	}

	writeJSON(w, s.Logger, map[string]string{
		"app":         "stenomods-http",
		"version":     strings.TrimSpace(stenomods.Version),
		"api_version": apiVersion,
	})
}

// -- Helpers --

func writeJSON(w http.ResponseWriter, logger *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Response encode failed", "err", err)
	}
}

func ptr[T any](v T) *T {
	return &v
}
