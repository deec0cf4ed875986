// Package http exposes the FloatChat service surface: the chat endpoint,
// the data-fetch endpoints backing the map and chart widgets, and the
// health, readiness, and metrics routes.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/floatchat/ocean-query-service/internal/argo"
	"github.com/floatchat/ocean-query-service/internal/domain"
	"github.com/floatchat/ocean-query-service/internal/observability"
)

// ChatService answers conversational queries and reports readiness.
type ChatService interface {
	Handle(ctx context.Context, query string) domain.ChatResponse
	CheckReadiness(ctx context.Context) error
}

// DataService serves the synthetic ARGO datasets behind the map widgets.
type DataService interface {
	FloatsInRegion(ctx context.Context, lat, lon, radiusKm float64) ([]domain.ArgoFloat, error)
	SearchFloatsByCity(ctx context.Context, city string) ([]domain.ArgoFloat, error)
	DepthProfile(ctx context.Context, lat, lon float64) ([]domain.OceanDataPoint, error)
	OceanDataForLocation(ctx context.Context, lat, lon float64, days int) ([]domain.OceanDataPoint, error)
	Stats(ctx context.Context) (argo.GlobalStats, error)
}

// Server wires the HTTP routes to the chat pipeline and data service.
type Server struct {
	httpServer *http.Server
	chat       ChatService
	data       DataService
	geocoder   domain.Geocoder // nil when geocoding is disabled
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewServer creates the HTTP server. geocoder may be nil, which turns
// /v1/geocode into a 503.
func NewServer(addr string, chat ChatService, data DataService, geocoder domain.Geocoder, metrics *observability.Metrics, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		chat:     chat,
		data:     data,
		geocoder: geocoder,
		metrics:  metrics,
		logger:   logger,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("POST /v1/chat", s.handleChat)
	mux.HandleFunc("GET /v1/geocode", s.handleGeocode)
	mux.HandleFunc("GET /v1/floats", s.handleFloats)
	mux.HandleFunc("GET /v1/profile", s.handleProfile)
	mux.HandleFunc("GET /v1/timeseries", s.handleTimeSeries)
	mux.HandleFunc("GET /v1/stats", s.handleStats)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.chat.CheckReadiness(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

type chatRequest struct {
	Query string `json:"query"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Query == "" {
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}

	response := s.chat.Handle(r.Context(), req.Query)
	writeJSON(w, http.StatusOK, response)
}

func (s *Server) handleGeocode(w http.ResponseWriter, r *http.Request) {
	if s.geocoder == nil {
		writeError(w, http.StatusServiceUnavailable, "geocoding is disabled")
		return
	}
	place := r.URL.Query().Get("place")
	if place == "" {
		writeError(w, http.StatusBadRequest, "place is required")
		return
	}

	result, err := s.geocoder.Geocode(r.Context(), place)
	if errors.Is(err, domain.ErrNotFound) {
		s.metrics.GeocodeRequests.WithLabelValues("not_found").Inc()
		writeError(w, http.StatusNotFound, "location not found")
		return
	}
	if err != nil {
		s.metrics.GeocodeRequests.WithLabelValues("error").Inc()
		s.logger.Warn("geocode failed", "place", place, "error", err)
		writeError(w, http.StatusBadGateway, "geocoding failed")
		return
	}
	s.metrics.GeocodeRequests.WithLabelValues("success").Inc()
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleFloats(w http.ResponseWriter, r *http.Request) {
	if city := r.URL.Query().Get("city"); city != "" {
		floats, err := s.data.SearchFloatsByCity(r.Context(), city)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "float search failed")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"floats": floats})
		return
	}

	lat, lon, ok := latLonParams(w, r)
	if !ok {
		return
	}
	radius := floatParam(r, "radius", 100)

	floats, err := s.data.FloatsInRegion(r.Context(), lat, lon, radius)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "float lookup failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"floats": floats})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	lat, lon, ok := latLonParams(w, r)
	if !ok {
		return
	}

	points, err := s.data.DepthProfile(r.Context(), lat, lon)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "profile lookup failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"dataPoints": points})
}

func (s *Server) handleTimeSeries(w http.ResponseWriter, r *http.Request) {
	lat, lon, ok := latLonParams(w, r)
	if !ok {
		return
	}
	days := int(floatParam(r, "days", 30))

	points, err := s.data.OceanDataForLocation(r.Context(), lat, lon, days)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "time series lookup failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"dataPoints": points})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.data.Stats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "stats lookup failed")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// latLonParams parses required lat/lon query parameters, writing a 400 and
// returning ok=false when either is missing or malformed.
func latLonParams(w http.ResponseWriter, r *http.Request) (lat, lon float64, ok bool) {
	var err error
	lat, err = strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "lat is required")
		return 0, 0, false
	}
	lon, err = strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "lon is required")
		return 0, 0, false
	}
	return lat, lon, true
}

func floatParam(r *http.Request, name string, fallback float64) float64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
