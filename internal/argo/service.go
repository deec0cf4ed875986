// Package argo is the mock data-fetch layer standing in for the live ARGO
// float network. Datasets are synthetic with a deterministic shape; every
// lookup is fronted by the TTL cache so identical queries within the cache
// window share one generation.
package argo

import (
	"context"
	"log/slog"
	"math"
	"math/rand/v2"
	"sort"
	"strings"
	"time"

	"github.com/golang/geo/s2"
	"github.com/jonboulle/clockwork"

	"github.com/floatchat/ocean-query-service/internal/cache"
	"github.com/floatchat/ocean-query-service/internal/domain"
	"github.com/floatchat/ocean-query-service/internal/observability"
)

const earthRadiusKm = 6371.0

// profileDepths is the full depth ladder for data-fetch profiles. The chat
// pipeline uses a restricted 5-rung subset.
var profileDepths = []float64{0, 10, 25, 50, 75, 100, 150, 200, 300, 500, 750, 1000, 1500, 2000}

// cityCoordinates maps known city names to ocean-adjacent coordinates for
// float search. Unknown cities fall back to a default open-ocean region.
var cityCoordinates = map[string]domain.Coordinates{
	"miami":         {Latitude: 25.7617, Longitude: -80.1918},
	"tokyo":         {Latitude: 35.6762, Longitude: 139.6503},
	"london":        {Latitude: 51.5074, Longitude: -0.1278},
	"sydney":        {Latitude: -33.8688, Longitude: 151.2093},
	"san francisco": {Latitude: 37.7749, Longitude: -122.4194},
	"new york":      {Latitude: 40.7128, Longitude: -74.0060},
}

// GlobalStats summarizes the simulated network.
type GlobalStats struct {
	TotalFloats  int `json:"totalFloats"`
	ActiveFloats int `json:"activeFloats"`
	DataPoints   int `json:"dataPoints"`
}

// Service serves synthetic float rosters, depth profiles, and surface time
// series, caching each result under a deterministic key.
type Service struct {
	store   *cache.Store[any]
	clock   clockwork.Clock
	metrics *observability.Metrics
	logger  *slog.Logger
}

// New creates a Service. Pass a zero ttl for the default cache window and a
// nil clock for real time.
func New(ttl time.Duration, clk clockwork.Clock, metrics *observability.Metrics, logger *slog.Logger) *Service {
	if clk == nil {
		clk = clockwork.NewRealClock()
	}
	return &Service{
		store:   cache.New[any](ttl, clk),
		clock:   clk,
		metrics: metrics,
		logger:  logger,
	}
}

// FloatsInRegion returns the float roster around a coordinate, annotated
// and sorted by great-circle distance from the center. The radius labels
// the query (and its cache key); it does not shrink the fixed roster.
func (s *Service) FloatsInRegion(ctx context.Context, lat, lon, radiusKm float64) ([]domain.ArgoFloat, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := domain.CacheKey("floats", lat, lon, radiusKm)
	if cached, ok := s.store.Get(key); ok {
		s.countCache("hit")
		return cached.([]domain.ArgoFloat), nil
	}
	s.countCache("miss")

	center := domain.Coordinates{Latitude: lat, Longitude: lon}
	floats := domain.GenerateFloatRoster(center)
	for i := range floats {
		floats[i].DistanceKm = distanceKm(center, floats[i].Location)
	}
	sort.Slice(floats, func(i, j int) bool { return floats[i].DistanceKm < floats[j].DistanceKm })

	s.store.Set(key, floats)
	return floats, nil
}

// SearchFloatsByCity resolves a city name against the fixed coordinate
// table and searches around it. Unknown cities search a default open-ocean
// region instead of failing.
func (s *Service) SearchFloatsByCity(ctx context.Context, city string) ([]domain.ArgoFloat, error) {
	coords, ok := cityCoordinates[strings.ToLower(strings.TrimSpace(city))]
	if !ok {
		s.logger.Debug("unknown city, searching default region", "city", city)
		return s.FloatsInRegion(ctx, 20, 0, 200)
	}
	return s.FloatsInRegion(ctx, coords.Latitude, coords.Longitude, 100)
}

// DepthProfile samples the full depth ladder at the given coordinates.
// Temperature has a floor of 0, salinity is clamped to [30, 40], and
// pressure approximates depth in decibars (1.02 dbar per meter).
func (s *Service) DepthProfile(ctx context.Context, lat, lon float64) ([]domain.OceanDataPoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := domain.CacheKey("profile", lat, lon)
	if cached, ok := s.store.Get(key); ok {
		s.countCache("hit")
		return cached.([]domain.OceanDataPoint), nil
	}
	s.countCache("miss")

	now := s.clock.Now()
	points := make([]domain.OceanDataPoint, len(profileDepths))
	for i, depth := range profileDepths {
		temperature := math.Max(0, 25-(depth/100)*0.8+rand.Float64()*0.5)
		salinity := math.Min(40, math.Max(30, 35.0+(depth/1000)*0.5+rand.Float64()*0.1))
		points[i] = domain.OceanDataPoint{
			Timestamp:   now,
			Depth:       depth,
			Temperature: temperature,
			Salinity:    salinity,
			Pressure:    depth * 1.02,
			Latitude:    lat,
			Longitude:   lon,
		}
	}

	s.store.Set(key, points)
	return points, nil
}

// OceanDataForLocation produces a daily surface series for the trailing
// window: days+1 points ascending by date, depth fixed at zero, with a slow
// sinusoidal seasonal swing under the per-day perturbation.
func (s *Service) OceanDataForLocation(ctx context.Context, lat, lon float64, days int) ([]domain.OceanDataPoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if days < 0 {
		days = 0
	}

	key := domain.CacheKey("data", lat, lon, float64(days))
	if cached, ok := s.store.Get(key); ok {
		s.countCache("hit")
		return cached.([]domain.OceanDataPoint), nil
	}
	s.countCache("miss")

	now := s.clock.Now()
	points := make([]domain.OceanDataPoint, 0, days+1)
	for i := days; i >= 0; i-- {
		baseTemp := 20 + math.Sin(float64(i)*0.1)*5
		baseSalinity := 35.0 + math.Cos(float64(i)*0.15)*0.3
		points = append(points, domain.OceanDataPoint{
			Timestamp:   now.AddDate(0, 0, -i),
			Depth:       0,
			Temperature: baseTemp + (rand.Float64()-0.5)*2,
			Salinity:    baseSalinity + (rand.Float64()-0.5)*0.1,
			Pressure:    0,
			Latitude:    lat,
			Longitude:   lon,
		})
	}

	s.store.Set(key, points)
	return points, nil
}

// Stats reports simulated network-wide totals.
func (s *Service) Stats(ctx context.Context) (GlobalStats, error) {
	if err := ctx.Err(); err != nil {
		return GlobalStats{}, err
	}

	key := domain.CacheKey("global_stats")
	if cached, ok := s.store.Get(key); ok {
		s.countCache("hit")
		return cached.(GlobalStats), nil
	}
	s.countCache("miss")

	stats := GlobalStats{
		TotalFloats:  4000 + rand.IntN(200),
		ActiveFloats: 3800 + rand.IntN(100),
		DataPoints:   2000000 + rand.IntN(100000),
	}
	s.store.Set(key, stats)
	return stats, nil
}

// ClearCache drops all cached datasets; the next lookup regenerates.
func (s *Service) ClearCache() {
	s.store.Clear()
}

func (s *Service) countCache(result string) {
	if s.metrics != nil {
		s.metrics.CacheLookups.WithLabelValues(result).Inc()
	}
}

func distanceKm(a, b domain.Coordinates) float64 {
	p := s2.LatLngFromDegrees(a.Latitude, a.Longitude)
	q := s2.LatLngFromDegrees(b.Latitude, b.Longitude)
	return p.Distance(q).Radians() * earthRadiusKm
}
