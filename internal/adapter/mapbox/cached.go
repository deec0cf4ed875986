package mapbox

import (
	"context"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/floatchat/ocean-query-service/internal/cache"
	"github.com/floatchat/ocean-query-service/internal/domain"
)

// CachedGeocoder wraps a Geocoder with the TTL store so repeated lookups
// of the same place within the cache window hit Mapbox once.
type CachedGeocoder struct {
	inner domain.Geocoder
	store *cache.Store[domain.GeocodingResult]
}

// NewCachedGeocoder creates a cache decorator around a geocoder. A zero
// ttl uses the default window; a nil clock uses real time.
func NewCachedGeocoder(inner domain.Geocoder, ttl time.Duration, clk clockwork.Clock) *CachedGeocoder {
	return &CachedGeocoder{
		inner: inner,
		store: cache.New[domain.GeocodingResult](ttl, clk),
	}
}

func (c *CachedGeocoder) Geocode(ctx context.Context, place string) (domain.GeocodingResult, error) {
	key := "geo_" + strings.ToLower(strings.TrimSpace(place))
	if result, ok := c.store.Get(key); ok {
		return result, nil
	}
	result, err := c.inner.Geocode(ctx, place)
	if err != nil {
		// Not-found and transient failures are both left uncached so a
		// later attempt can retry.
		return result, err
	}
	c.store.Set(key, result)
	return result, nil
}
