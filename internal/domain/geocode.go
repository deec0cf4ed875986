package domain

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a Geocoder when a place name resolves to
// nothing. Callers degrade gracefully: the map widget simply performs no
// zoom or marker action, and no error reaches the conversational reply.
var ErrNotFound = errors.New("location not found")

// GeocodingResult is the resolved coordinate pair for a place name.
type GeocodingResult struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	DisplayName string  `json:"displayName"`
}

// Geocoder resolves free-text place names to coordinates. It serves the
// UI-facing map widget only; the query-interpretation pipeline never
// consults it.
type Geocoder interface {
	Geocode(ctx context.Context, place string) (GeocodingResult, error)
}
