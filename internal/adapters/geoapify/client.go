package geoapify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/safarapp/safar-api/internal/core/domain"
	"github.com/safarapp/safar-api/internal/core/ports"
	"github.com/safarapp/safar-api/internal/pkg/metrics"
)

const defaultBaseURL = "https://api.geoapify.com"

// Config holds Geoapify client settings.
type Config struct {
	APIKey      string
	BaseURL     string // override for tests; defaults to the public API
	CountryBias string // appended to geocoding queries, e.g. "India"
	Timeout     time.Duration
}

// Client talks to the Geoapify geocoding and routing APIs. It implements
// ports.Geocoder and ports.RouteProvider.
type Client struct {
	apiKey      string
	baseURL     string
	countryBias string
	httpc       *http.Client
}

// NewClient creates a Geoapify client with a bounded per-call timeout.
func NewClient(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		apiKey:      cfg.APIKey,
		baseURL:     strings.TrimRight(base, "/"),
		countryBias: cfg.CountryBias,
		httpc:       &http.Client{Timeout: timeout},
	}
}

type geocodeResponse struct {
	Features []struct {
		Properties struct {
			Lat float64 `json:"lat"`
			Lon float64 `json:"lon"`
		} `json:"properties"`
	} `json:"features"`
}

// Geocode resolves a place name to its best-match coordinate. The configured
// country bias is appended to the query text.
func (c *Client) Geocode(ctx context.Context, place string) (domain.GeoPoint, error) {
	text := place
	if c.countryBias != "" {
		text = place + ", " + c.countryBias
	}

	q := url.Values{}
	q.Set("text", text)
	q.Set("apiKey", c.apiKey)
	q.Set("limit", "1")

	var resp geocodeResponse
	if err := c.getJSON(ctx, "/v1/geocode/search", q, "geoapify_geocode", &resp); err != nil {
		return domain.GeoPoint{}, err
	}
	if len(resp.Features) == 0 {
		return domain.GeoPoint{}, fmt.Errorf("%w: %s", ports.ErrNotFound, place)
	}

	p := resp.Features[0].Properties
	return domain.GeoPoint{Lat: p.Lat, Lon: p.Lon}, nil
}

type routeResponse struct {
	Features []struct {
		Properties struct {
			Distance float64 `json:"distance"` // meters
			Time     float64 `json:"time"`     // seconds
		} `json:"properties"`
		Geometry struct {
			Type        string          `json:"type"`
			Coordinates json.RawMessage `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// Route fetches a routed path between two coordinates for the given provider
// profile string.
func (c *Client) Route(ctx context.Context, from, to domain.GeoPoint, profile string) (*domain.RouteLeg, error) {
	q := url.Values{}
	q.Set("waypoints", fmt.Sprintf("%v,%v|%v,%v", from.Lat, from.Lon, to.Lat, to.Lon))
	q.Set("mode", profile)
	q.Set("apiKey", c.apiKey)

	var resp routeResponse
	if err := c.getJSON(ctx, "/v1/routing", q, "geoapify_routing", &resp); err != nil {
		return nil, err
	}
	if len(resp.Features) == 0 {
		return nil, fmt.Errorf("%w: profile %s", ports.ErrNoRoute, profile)
	}

	feat := resp.Features[0]
	geometry, err := decodeGeometry(feat.Geometry.Type, feat.Geometry.Coordinates)
	if err != nil {
		return nil, fmt.Errorf("decode route geometry: %w", err)
	}

	return &domain.RouteLeg{
		Geometry:          geometry,
		DistanceMeters:    feat.Properties.Distance,
		TravelTimeSeconds: feat.Properties.Time,
	}, nil
}

// decodeGeometry accepts LineString and MultiLineString shapes; the routing
// API returns a MultiLineString with one part per leg. GeoJSON positions are
// ordered lon,lat.
func decodeGeometry(geomType string, raw json.RawMessage) ([]domain.GeoPoint, error) {
	switch geomType {
	case "LineString":
		var coords [][]float64
		if err := json.Unmarshal(raw, &coords); err != nil {
			return nil, err
		}
		return toPoints(coords), nil
	case "MultiLineString":
		var parts [][][]float64
		if err := json.Unmarshal(raw, &parts); err != nil {
			return nil, err
		}
		var points []domain.GeoPoint
		for _, part := range parts {
			points = append(points, toPoints(part)...)
		}
		return points, nil
	default:
		return nil, fmt.Errorf("unsupported geometry type %q", geomType)
	}
}

func toPoints(coords [][]float64) []domain.GeoPoint {
	points := make([]domain.GeoPoint, 0, len(coords))
	for _, c := range coords {
		if len(c) < 2 {
			continue
		}
		points = append(points, domain.GeoPoint{Lat: c[1], Lon: c[0]})
	}
	return points
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, provider string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	metrics.ProviderRequestDuration.WithLabelValues(provider).Observe(time.Since(start).Seconds())
	if err != nil {
		return fmt.Errorf("%s request: %w", provider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s: unexpected status %d: %s",
			provider, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
