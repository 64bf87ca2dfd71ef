package usecases_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/safarapp/safar-api/internal/core/domain"
	"github.com/safarapp/safar-api/internal/core/usecases"
)

// --- Mock providers ---

var (
	mumbai = domain.GeoPoint{Lat: 19.0760, Lon: 72.8777}
	delhi  = domain.GeoPoint{Lat: 28.7041, Lon: 77.1025}
	pune   = domain.GeoPoint{Lat: 18.5204, Lon: 73.8567}
)

type mockGeocoder struct {
	geocodeFn func(ctx context.Context, place string) (domain.GeoPoint, error)
}

func (m *mockGeocoder) Geocode(ctx context.Context, place string) (domain.GeoPoint, error) {
	if m.geocodeFn != nil {
		return m.geocodeFn(ctx, place)
	}
	return domain.GeoPoint{}, nil
}

type mockRouter struct {
	routeFn func(ctx context.Context, from, to domain.GeoPoint, profile string) (*domain.RouteLeg, error)
}

func (m *mockRouter) Route(ctx context.Context, from, to domain.GeoPoint, profile string) (*domain.RouteLeg, error) {
	if m.routeFn != nil {
		return m.routeFn(ctx, from, to, profile)
	}
	return nil, errors.New("no route fn")
}

func cityGeocoder(t *testing.T) *mockGeocoder {
	t.Helper()
	return &mockGeocoder{
		geocodeFn: func(ctx context.Context, place string) (domain.GeoPoint, error) {
			switch place {
			case "Mumbai":
				return mumbai, nil
			case "Delhi":
				return delhi, nil
			case "Pune":
				return pune, nil
			}
			return domain.GeoPoint{}, fmt.Errorf("unexpected place %q", place)
		},
	}
}

// fixedLeg returns the same 100 km / 2 h route for every mode.
func fixedLeg() *domain.RouteLeg {
	return &domain.RouteLeg{
		Geometry:          []domain.GeoPoint{mumbai, {Lat: 20.0, Lon: 74.0}, delhi},
		DistanceMeters:    100000,
		TravelTimeSeconds: 7200,
	}
}

// --- Tests ---

func TestTravelService_DefaultModes(t *testing.T) {
	router := &mockRouter{
		routeFn: func(ctx context.Context, from, to domain.GeoPoint, profile string) (*domain.RouteLeg, error) {
			return fixedLeg(), nil
		},
	}
	svc := usecases.NewTravelService(cityGeocoder(t), router)

	plan, err := svc.Options(context.Background(), "Mumbai", "Delhi", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Origin != "Mumbai" || plan.Destination != "Delhi" {
		t.Errorf("origin/destination not echoed: %q -> %q", plan.Origin, plan.Destination)
	}

	// Default set is driving, walking, bus, train, flight — in that order.
	want := []domain.Mode{domain.ModeDriving, domain.ModeWalking, domain.ModeBus, domain.ModeTrain, domain.ModeFlight}
	if len(plan.Options) != len(want) {
		t.Fatalf("expected %d options, got %d", len(want), len(plan.Options))
	}
	for i, m := range want {
		if plan.Options[i].Mode != m {
			t.Errorf("option %d: expected mode %s, got %s", i, m, plan.Options[i].Mode)
		}
	}
}

func TestTravelService_FareAndDuration(t *testing.T) {
	router := &mockRouter{
		routeFn: func(ctx context.Context, from, to domain.GeoPoint, profile string) (*domain.RouteLeg, error) {
			return fixedLeg(), nil
		},
	}
	svc := usecases.NewTravelService(cityGeocoder(t), router)

	plan, err := svc.Options(context.Background(), "Mumbai", "Delhi",
		[]string{"driving", "walking", "bus", "train"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Options) != 4 {
		t.Fatalf("expected 4 options, got %d", len(plan.Options))
	}

	// 100 km, 120 min from the provider for every mode.
	wantFares := map[domain.Mode]int{
		domain.ModeDriving: 1000, // 0 + 100*10, no complete toll interval
		domain.ModeWalking: 0,
		domain.ModeBus:     160, // 10 + 100*1.5
		domain.ModeTrain:   120, // 20 + 100*1.0
	}
	for _, opt := range plan.Options {
		if opt.DistanceKm != 100 {
			t.Errorf("%s: expected 100 km, got %v", opt.Mode, opt.DistanceKm)
		}
		if opt.DurationMins != 120 {
			t.Errorf("%s: expected 120 mins, got %d", opt.Mode, opt.DurationMins)
		}
		if opt.TotalFare != wantFares[opt.Mode] {
			t.Errorf("%s: expected fare %d, got %d", opt.Mode, wantFares[opt.Mode], opt.TotalFare)
		}
		if len(opt.Coordinates) != 3 {
			t.Errorf("%s: expected provider geometry, got %d points", opt.Mode, len(opt.Coordinates))
		}
	}
}

func TestTravelService_FlightComputedLocally(t *testing.T) {
	router := &mockRouter{
		routeFn: func(ctx context.Context, from, to domain.GeoPoint, profile string) (*domain.RouteLeg, error) {
			t.Errorf("routing provider must not be called for flight, got profile %q", profile)
			return nil, errors.New("unexpected routing call")
		},
	}
	svc := usecases.NewTravelService(cityGeocoder(t), router)

	plan, err := svc.Options(context.Background(), "Mumbai", "Delhi", []string{"flight"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Options) != 1 {
		t.Fatalf("expected 1 option, got %d", len(plan.Options))
	}

	opt := plan.Options[0]
	if opt.Mode != domain.ModeFlight {
		t.Fatalf("expected flight, got %s", opt.Mode)
	}
	// Mumbai-Delhi is well above the short-hop threshold.
	if opt.DistanceKm < domain.MinFlightKm {
		t.Errorf("flight distance below threshold: %v", opt.DistanceKm)
	}
	// Straight-line geometry: exactly the two endpoints.
	wantGeom := [][2]float64{{mumbai.Lat, mumbai.Lon}, {delhi.Lat, delhi.Lon}}
	if !reflect.DeepEqual(opt.Coordinates, wantGeom) {
		t.Errorf("expected straight-line geometry %v, got %v", wantGeom, opt.Coordinates)
	}
	// duration = 90 + dist/650*60, fare = 2500 + dist*3.
	if opt.DurationMins <= 90 {
		t.Errorf("flight duration must exceed the minimum flight time, got %d", opt.DurationMins)
	}
	if opt.TotalFare <= 2500 {
		t.Errorf("flight fare must exceed the base fare, got %d", opt.TotalFare)
	}
}

func TestTravelService_ShortHopFlightNotOffered(t *testing.T) {
	svc := usecases.NewTravelService(cityGeocoder(t), &mockRouter{})

	plan, err := svc.Options(context.Background(), "Mumbai", "Pune", []string{"flight"})
	if err != nil {
		t.Fatalf("short-hop flight must not be an error: %v", err)
	}
	if len(plan.Options) != 0 {
		t.Errorf("expected no options for a short hop, got %d", len(plan.Options))
	}
}

func TestTravelService_UnknownModeDropped(t *testing.T) {
	router := &mockRouter{
		routeFn: func(ctx context.Context, from, to domain.GeoPoint, profile string) (*domain.RouteLeg, error) {
			return fixedLeg(), nil
		},
	}
	svc := usecases.NewTravelService(cityGeocoder(t), router)

	plan, err := svc.Options(context.Background(), "Mumbai", "Delhi", []string{"driving", "teleport"})
	if err != nil {
		t.Fatalf("unknown mode must not fail the request: %v", err)
	}
	if len(plan.Options) != 1 || plan.Options[0].Mode != domain.ModeDriving {
		t.Fatalf("expected exactly the driving option, got %+v", plan.Options)
	}
}

func TestTravelService_PerModeFailureSkipped(t *testing.T) {
	router := &mockRouter{
		routeFn: func(ctx context.Context, from, to domain.GeoPoint, profile string) (*domain.RouteLeg, error) {
			if profile == "train" {
				return nil, errors.New("provider timeout")
			}
			return fixedLeg(), nil
		},
	}
	svc := usecases.NewTravelService(cityGeocoder(t), router)

	plan, err := svc.Options(context.Background(), "Mumbai", "Delhi", []string{"driving", "train"})
	if err != nil {
		t.Fatalf("per-mode failure must not fail the request: %v", err)
	}
	if len(plan.Options) != 1 || plan.Options[0].Mode != domain.ModeDriving {
		t.Fatalf("expected only the driving option, got %+v", plan.Options)
	}
}

func TestTravelService_BusUsesDriveProfile(t *testing.T) {
	var profiles []string
	router := &mockRouter{
		routeFn: func(ctx context.Context, from, to domain.GeoPoint, profile string) (*domain.RouteLeg, error) {
			profiles = append(profiles, profile)
			return fixedLeg(), nil
		},
	}
	svc := usecases.NewTravelService(cityGeocoder(t), router)

	_, err := svc.Options(context.Background(), "Mumbai", "Delhi",
		[]string{"driving", "bus", "walking", "cycling", "train"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"drive", "drive", "walking", "cycling", "train"}
	if !reflect.DeepEqual(profiles, want) {
		t.Errorf("expected provider profiles %v, got %v", want, profiles)
	}
}

func TestTravelService_GeocodeFailureFailsRequest(t *testing.T) {
	geocoder := &mockGeocoder{
		geocodeFn: func(ctx context.Context, place string) (domain.GeoPoint, error) {
			return domain.GeoPoint{}, errors.New("no features")
		},
	}
	svc := usecases.NewTravelService(geocoder, &mockRouter{})

	_, err := svc.Options(context.Background(), "Nowhereville", "Delhi", nil)
	if err == nil {
		t.Fatal("expected error for unresolvable origin")
	}
	var geoErr *usecases.GeocodeError
	if !errors.As(err, &geoErr) {
		t.Fatalf("expected GeocodeError, got %T: %v", err, err)
	}
	if geoErr.Place != "Nowhereville" {
		t.Errorf("expected failed place in error, got %q", geoErr.Place)
	}
}

func TestTravelService_MissingInput(t *testing.T) {
	svc := usecases.NewTravelService(&mockGeocoder{}, &mockRouter{})
	if _, err := svc.Options(context.Background(), "", "Delhi", nil); err == nil {
		t.Error("expected error for empty origin")
	}
	if _, err := svc.Options(context.Background(), "Mumbai", "", nil); err == nil {
		t.Error("expected error for empty destination")
	}
}

func TestTravelService_Deterministic(t *testing.T) {
	router := &mockRouter{
		routeFn: func(ctx context.Context, from, to domain.GeoPoint, profile string) (*domain.RouteLeg, error) {
			return &domain.RouteLeg{
				Geometry:          []domain.GeoPoint{mumbai, delhi},
				DistanceMeters:    1234567,
				TravelTimeSeconds: 45678,
			}, nil
		},
	}
	svc := usecases.NewTravelService(cityGeocoder(t), router)

	first, err := svc.Options(context.Background(), "Mumbai", "Delhi", nil)
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Options(context.Background(), "Mumbai", "Delhi", nil)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("identical requests with deterministic providers must produce identical plans")
	}
}
