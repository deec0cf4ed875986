package mapbox

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floatchat/ocean-query-service/internal/domain"
)

type countingGeocoder struct {
	calls  int
	result domain.GeocodingResult
	err    error
}

func (g *countingGeocoder) Geocode(_ context.Context, _ string) (domain.GeocodingResult, error) {
	g.calls++
	return g.result, g.err
}

func TestCachedGeocoder_Hit(t *testing.T) {
	inner := &countingGeocoder{result: domain.GeocodingResult{
		Latitude: 25.7617, Longitude: -80.1918, DisplayName: "Miami",
	}}
	geocoder := NewCachedGeocoder(inner, 5*time.Minute, clockwork.NewFakeClock())
	ctx := context.Background()

	first, err := geocoder.Geocode(ctx, "Miami")
	require.NoError(t, err)
	second, err := geocoder.Geocode(ctx, "Miami")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.calls, "second lookup served from cache")
}

func TestCachedGeocoder_KeyNormalization(t *testing.T) {
	inner := &countingGeocoder{result: domain.GeocodingResult{DisplayName: "Tokyo"}}
	geocoder := NewCachedGeocoder(inner, 5*time.Minute, clockwork.NewFakeClock())
	ctx := context.Background()

	_, err := geocoder.Geocode(ctx, "Tokyo")
	require.NoError(t, err)
	_, err = geocoder.Geocode(ctx, "  TOKYO ")
	require.NoError(t, err)

	assert.Equal(t, 1, inner.calls, "case and surrounding whitespace share a key")
}

func TestCachedGeocoder_TTLExpiry(t *testing.T) {
	fake := clockwork.NewFakeClock()
	inner := &countingGeocoder{result: domain.GeocodingResult{DisplayName: "Sydney"}}
	geocoder := NewCachedGeocoder(inner, 5*time.Minute, fake)
	ctx := context.Background()

	_, err := geocoder.Geocode(ctx, "Sydney")
	require.NoError(t, err)

	fake.Advance(5 * time.Minute)
	_, err = geocoder.Geocode(ctx, "Sydney")
	require.NoError(t, err)

	assert.Equal(t, 2, inner.calls, "expired entry triggers a fresh lookup")
}

func TestCachedGeocoder_ErrorsNotCached(t *testing.T) {
	inner := &countingGeocoder{err: domain.ErrNotFound}
	geocoder := NewCachedGeocoder(inner, 5*time.Minute, clockwork.NewFakeClock())
	ctx := context.Background()

	_, err := geocoder.Geocode(ctx, "Atlantis")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	inner.err = errors.New("mapbox down")
	_, err = geocoder.Geocode(ctx, "Atlantis")
	require.Error(t, err)
	assert.Equal(t, 2, inner.calls, "failures are retried, not cached")

	inner.err = nil
	inner.result = domain.GeocodingResult{DisplayName: "Atlantis"}
	result, err := geocoder.Geocode(ctx, "Atlantis")
	require.NoError(t, err)
	assert.Equal(t, "Atlantis", result.DisplayName)
	assert.Equal(t, 3, inner.calls)
}
