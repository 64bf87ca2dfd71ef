package usecases

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/safarapp/safar-api/internal/core/domain"
	"github.com/safarapp/safar-api/internal/core/ports"
	"github.com/safarapp/safar-api/internal/pkg/geospatial"
	"github.com/safarapp/safar-api/internal/pkg/metrics"
)

// TravelService turns a pair of place names into a comparable set of
// transport options across modes.
type TravelService struct {
	geocoder ports.Geocoder
	router   ports.RouteProvider
}

// NewTravelService creates a new TravelService.
func NewTravelService(geocoder ports.Geocoder, router ports.RouteProvider) *TravelService {
	return &TravelService{geocoder: geocoder, router: router}
}

// TravelPlan is the assembled option set for one origin/destination pair.
// Origin and destination echo the requested names, not re-resolved ones.
type TravelPlan struct {
	Origin      string                `json:"origin"`
	Destination string                `json:"destination"`
	Options     []domain.TravelOption `json:"all_options"`
}

// GeocodeError reports that an endpoint place name could not be resolved.
// Unresolved endpoints fail the whole request.
type GeocodeError struct {
	Place string
	Err   error
}

func (e *GeocodeError) Error() string { return fmt.Sprintf("geocode %q: %v", e.Place, e.Err) }
func (e *GeocodeError) Unwrap() error { return e.Err }

// Options computes travel options for each requested mode. Unknown mode
// identifiers are dropped silently. A mode whose route cannot be obtained is
// skipped, so the result can hold fewer options than modes requested, in
// request order.
func (s *TravelService) Options(ctx context.Context, origin, destination string, modes []string) (*TravelPlan, error) {
	if origin == "" || destination == "" {
		return nil, fmt.Errorf("origin and destination are required")
	}

	from, err := s.geocode(ctx, origin)
	if err != nil {
		return nil, err
	}
	to, err := s.geocode(ctx, destination)
	if err != nil {
		return nil, err
	}

	if len(modes) == 0 {
		modes = domain.DefaultModes
	}

	options := make([]domain.TravelOption, 0, len(modes))
	for _, m := range modes {
		profile, ok := domain.ProfileFor(m)
		if !ok {
			slog.Debug("skipping unknown mode", "mode", m)
			continue
		}

		if profile.Mode == domain.ModeFlight {
			if opt, offered := s.flightOption(from, to, profile); offered {
				metrics.OptionsComputed.WithLabelValues(m).Inc()
				options = append(options, opt)
			}
			continue
		}

		leg, err := s.router.Route(ctx, from, to, providerProfile(profile.Mode))
		if err != nil {
			metrics.RouteRequests.WithLabelValues(m, "error").Inc()
			slog.Warn("route unavailable, skipping mode",
				"mode", m, "origin", origin, "destination", destination, "error", err)
			continue
		}
		metrics.RouteRequests.WithLabelValues(m, "ok").Inc()
		metrics.OptionsComputed.WithLabelValues(m).Inc()

		distanceKm := leg.DistanceMeters / 1000
		durationMins := leg.TravelTimeSeconds / 60
		options = append(options, domain.NewTravelOption(profile, leg.Geometry, distanceKm, durationMins))
	}

	return &TravelPlan{Origin: origin, Destination: destination, Options: options}, nil
}

func (s *TravelService) geocode(ctx context.Context, place string) (domain.GeoPoint, error) {
	point, err := s.geocoder.Geocode(ctx, place)
	if err != nil {
		metrics.GeocodeRequests.WithLabelValues("error").Inc()
		slog.Warn("geocoding failed", "place", place, "error", err)
		return domain.GeoPoint{}, &GeocodeError{Place: place, Err: err}
	}
	metrics.GeocodeRequests.WithLabelValues("ok").Inc()
	return point, nil
}

// flightOption builds a flight locally: straight-line geometry and the
// great-circle distance. Short hops below the minimum flight distance are
// not offered at all.
func (s *TravelService) flightOption(from, to domain.GeoPoint, p domain.ModeProfile) (domain.TravelOption, bool) {
	dist := geospatial.Haversine(from.Lat, from.Lon, to.Lat, to.Lon)
	if dist < domain.MinFlightKm {
		slog.Debug("flight below minimum distance, not offered", "distance_km", dist)
		return domain.TravelOption{}, false
	}
	geometry := []domain.GeoPoint{from, to}
	return domain.NewTravelOption(p, geometry, dist, p.FlightDuration(dist)), true
}

// providerProfile maps a mode to the routing provider's profile string.
// Driving and bus share the provider's generic drive profile: a bus reuses
// the driving geometry and applies its own fare model on top.
func providerProfile(m domain.Mode) string {
	if m == domain.ModeDriving || m == domain.ModeBus {
		return "drive"
	}
	return string(m)
}
