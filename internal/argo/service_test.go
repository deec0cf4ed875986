package argo

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floatchat/ocean-query-service/internal/domain"
	"github.com/floatchat/ocean-query-service/internal/observability"
)

func newTestService(t *testing.T) (*Service, *observability.Metrics, *clockwork.FakeClock) {
	t.Helper()
	fake := clockwork.NewFakeClockAt(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	metrics := observability.NewMetricsForTesting()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(5*time.Minute, fake, metrics, logger), metrics, fake
}

func TestFloatsInRegion(t *testing.T) {
	svc, _, fake := newTestService(t)
	ctx := context.Background()

	floats, err := svc.FloatsInRegion(ctx, 25.7617, -80.1918, 100)
	require.NoError(t, err)
	require.Len(t, floats, 2)

	ids := map[string]bool{floats[0].FloatID: true, floats[1].FloatID: true}
	assert.True(t, ids["1901234"])
	assert.True(t, ids["1901235"])

	assert.LessOrEqual(t, floats[0].DistanceKm, floats[1].DistanceKm,
		"roster sorted by distance from the center")
	for _, f := range floats {
		assert.Greater(t, f.DistanceKm, 0.0)
		assert.Less(t, f.DistanceKm, 200.0, "floats spawn within a couple degrees")
	}

	updates := map[time.Time]bool{floats[0].LastUpdate: true, floats[1].LastUpdate: true}
	assert.True(t, updates[fake.Now()])
	assert.True(t, updates[fake.Now().Add(-time.Hour)])
}

func TestFloatsInRegion_CachesResult(t *testing.T) {
	svc, metrics, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.FloatsInRegion(ctx, 25.7617, -80.1918, 100)
	require.NoError(t, err)
	second, err := svc.FloatsInRegion(ctx, 25.7617, -80.1918, 100)
	require.NoError(t, err)

	assert.Equal(t, first, second, "second lookup served from cache")
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.CacheLookups.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.CacheLookups.WithLabelValues("miss")))
}

func TestFloatsInRegion_CacheExpiry(t *testing.T) {
	svc, metrics, fake := newTestService(t)
	ctx := context.Background()

	_, err := svc.FloatsInRegion(ctx, 25.7617, -80.1918, 100)
	require.NoError(t, err)

	fake.Advance(5 * time.Minute)
	_, err = svc.FloatsInRegion(ctx, 25.7617, -80.1918, 100)
	require.NoError(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.CacheLookups.WithLabelValues("miss")))
}

func TestFloatsInRegion_ContextCanceled(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.FloatsInRegion(ctx, 0, 0, 100)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearchFloatsByCity(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	t.Run("known city", func(t *testing.T) {
		floats, err := svc.SearchFloatsByCity(ctx, "Miami")
		require.NoError(t, err)
		require.Len(t, floats, 2)
		for _, f := range floats {
			assert.InDelta(t, 25.7617, f.Location.Latitude, 1.0)
			assert.InDelta(t, -80.1918, f.Location.Longitude, 1.0)
		}
	})

	t.Run("lookup is case and whitespace insensitive", func(t *testing.T) {
		a, err := svc.SearchFloatsByCity(ctx, "  TOKYO ")
		require.NoError(t, err)
		b, err := svc.SearchFloatsByCity(ctx, "tokyo")
		require.NoError(t, err)
		assert.Equal(t, a, b, "both forms resolve to the same cached search")
	})

	t.Run("unknown city falls back to the default region", func(t *testing.T) {
		fromCity, err := svc.SearchFloatsByCity(ctx, "Atlantis")
		require.NoError(t, err)
		fromRegion, err := svc.FloatsInRegion(ctx, 20, 0, 200)
		require.NoError(t, err)
		assert.Equal(t, fromRegion, fromCity, "fallback shares the default-region cache row")
	})
}

func TestDepthProfile(t *testing.T) {
	svc, _, fake := newTestService(t)
	ctx := context.Background()

	points, err := svc.DepthProfile(ctx, 35.6762, 139.6503)
	require.NoError(t, err)
	require.Len(t, points, 14)

	expectedDepths := []float64{0, 10, 25, 50, 75, 100, 150, 200, 300, 500, 750, 1000, 1500, 2000}
	for i, p := range points {
		assert.Equal(t, expectedDepths[i], p.Depth)
		assert.Equal(t, expectedDepths[i]*1.02, p.Pressure)
		assert.GreaterOrEqual(t, p.Temperature, 0.0)
		assert.GreaterOrEqual(t, p.Salinity, 30.0)
		assert.LessOrEqual(t, p.Salinity, 40.0)
		assert.Equal(t, 35.6762, p.Latitude)
		assert.Equal(t, 139.6503, p.Longitude)
		assert.Equal(t, fake.Now(), p.Timestamp)
	}
}

func TestOceanDataForLocation(t *testing.T) {
	svc, _, fake := newTestService(t)
	ctx := context.Background()

	points, err := svc.OceanDataForLocation(ctx, 25.7617, -80.1918, 30)
	require.NoError(t, err)
	require.Len(t, points, 31, "days+1 points including today")

	for i, p := range points {
		assert.Equal(t, 0.0, p.Depth, "surface series")
		assert.Equal(t, 0.0, p.Pressure)
		if i > 0 {
			assert.True(t, p.Timestamp.After(points[i-1].Timestamp), "ascending by date")
		}
	}
	assert.Equal(t, fake.Now(), points[len(points)-1].Timestamp, "series ends today")
	assert.Equal(t, fake.Now().AddDate(0, 0, -30), points[0].Timestamp)
}

func TestOceanDataForLocation_NegativeDays(t *testing.T) {
	svc, _, _ := newTestService(t)

	points, err := svc.OceanDataForLocation(context.Background(), 0, 0, -5)
	require.NoError(t, err)
	assert.Len(t, points, 1)
}

func TestStats(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, stats.TotalFloats, 4000)
	assert.Less(t, stats.TotalFloats, 4200)
	assert.GreaterOrEqual(t, stats.ActiveFloats, 3800)
	assert.Less(t, stats.ActiveFloats, 3900)
	assert.GreaterOrEqual(t, stats.DataPoints, 2000000)

	again, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, stats, again, "stats served from cache within the TTL")
}

func TestClearCache(t *testing.T) {
	svc, metrics, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Stats(ctx)
	require.NoError(t, err)
	svc.ClearCache()
	_, err = svc.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.CacheLookups.WithLabelValues("miss")))
}

func TestDistanceKm(t *testing.T) {
	miami := domain.Coordinates{Latitude: 25.7617, Longitude: -80.1918}
	newYork := domain.Coordinates{Latitude: 40.7128, Longitude: -74.0060}

	assert.InDelta(t, 0, distanceKm(miami, miami), 1e-9)
	assert.InDelta(t, 1757, distanceKm(miami, newYork), 30)
	assert.InDelta(t, distanceKm(miami, newYork), distanceKm(newYork, miami), 1e-6)
}
