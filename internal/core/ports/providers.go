package ports

import (
	"context"
	"errors"

	"github.com/safarapp/safar-api/internal/core/domain"
)

// ErrNotFound is returned by a Geocoder when a place name resolves to no
// usable coordinate.
var ErrNotFound = errors.New("location not found")

// ErrNoRoute is returned by a RouteProvider when no route exists between the
// given points for the requested profile.
var ErrNoRoute = errors.New("no route found")

// Geocoder resolves free-text place names to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, place string) (domain.GeoPoint, error)
}

// RouteProvider resolves a coordinate pair and a provider mode profile into
// a routed path. Profile strings are provider-specific ("drive", "walking",
// "cycling", "train").
type RouteProvider interface {
	Route(ctx context.Context, from, to domain.GeoPoint, profile string) (*domain.RouteLeg, error)
}

// SentimentAnalyzer scores arbitrary text with a compound polarity value in
// [-1.0, 1.0].
type SentimentAnalyzer interface {
	Score(ctx context.Context, text string) (float64, error)
}

// TextGenerator produces free-form text from a prompt.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
