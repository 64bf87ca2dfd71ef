package domain

import "math"

// Mode identifies a transport mode.
type Mode string

const (
	ModeDriving Mode = "driving"
	ModeWalking Mode = "walking"
	ModeCycling Mode = "cycling"
	ModeBus     Mode = "bus"
	ModeTrain   Mode = "train"
	ModeFlight  Mode = "flight"
)

const (
	// MinFlightKm is the short-hop threshold: flights below this distance
	// are not offered at all.
	MinFlightKm = 200.0

	// flightCruiseKmh is the cruise-equivalent speed used for flight
	// duration. The profile's SpeedKmh is display-only.
	flightCruiseKmh = 650.0

	// tollIntervalKm is the distance covered by one toll charge when
	// driving. Partial final segments are toll-free.
	tollIntervalKm = 200.0
)

// ModeProfile is the static per-mode configuration: display attributes and
// fare/speed parameters. Profiles are read-only after process start.
type ModeProfile struct {
	Mode          Mode
	Color         string
	Icon          string
	SpeedKmh      float64 // informational, never used to derive duration
	BaseFare      float64
	FarePerKm     float64
	TollCharge    float64 // driving only: one charge per complete toll interval
	MinFlightMins float64 // flight only
}

// profiles is the fixed mode table. Fares are in local currency units.
var profiles = map[Mode]ModeProfile{
	ModeDriving: {Mode: ModeDriving, Color: "#F44336", Icon: "🚗", SpeedKmh: 40, BaseFare: 0, FarePerKm: 10.0, TollCharge: 1.5},
	ModeWalking: {Mode: ModeWalking, Color: "#4CAF50", Icon: "🚶", SpeedKmh: 5, BaseFare: 0, FarePerKm: 0},
	ModeCycling: {Mode: ModeCycling, Color: "#2196F3", Icon: "🚲", SpeedKmh: 12, BaseFare: 0, FarePerKm: 0},
	ModeBus:     {Mode: ModeBus, Color: "#FF9800", Icon: "🚌", SpeedKmh: 30, BaseFare: 10, FarePerKm: 1.5},
	ModeTrain:   {Mode: ModeTrain, Color: "#9C27B0", Icon: "🚆", SpeedKmh: 60, BaseFare: 20, FarePerKm: 1.0},
	ModeFlight:  {Mode: ModeFlight, Color: "#3F51B5", Icon: "✈️", SpeedKmh: 600, BaseFare: 2500, FarePerKm: 3.0, MinFlightMins: 90},
}

// DefaultModes is the mode list used when a request does not name any.
var DefaultModes = []string{"driving", "walking", "bus", "train", "flight"}

// ProfileFor looks up the profile for a mode identifier. Unknown identifiers
// report ok=false and are expected to be skipped silently by callers.
func ProfileFor(mode string) (ModeProfile, bool) {
	p, ok := profiles[Mode(mode)]
	return p, ok
}

// Fare computes the total fare for the given distance. Driving adds one toll
// charge per complete toll interval.
func (p ModeProfile) Fare(distanceKm float64) float64 {
	fare := p.BaseFare + distanceKm*p.FarePerKm
	if p.Mode == ModeDriving {
		fare += math.Floor(distanceKm/tollIntervalKm) * p.TollCharge
	}
	return fare
}

// FlightDuration returns flight travel time in minutes for the given
// great-circle distance.
func (p ModeProfile) FlightDuration(distanceKm float64) float64 {
	return p.MinFlightMins + distanceKm/flightCruiseKmh*60
}

// TravelOption is one comparable transport option between two places.
type TravelOption struct {
	Coordinates   [][2]float64 `json:"coordinates"`
	DistanceKm    float64      `json:"distance_km"`
	DurationMins  int          `json:"duration_mins"`
	TotalFare     int          `json:"total_fare"`
	Mode          Mode         `json:"mode"`
	RouteColor    string       `json:"route_color"`
	TransportIcon string       `json:"transport_icon"`
}

// NewTravelOption builds an option from raw (unrounded) distance and
// duration. Fare is computed from the raw distance; rounding happens here and
// nowhere earlier: distance to 2 decimals, duration and fare to the nearest
// integer.
func NewTravelOption(p ModeProfile, geometry []GeoPoint, distanceKm, durationMins float64) TravelOption {
	return TravelOption{
		Coordinates:   LatLonPath(geometry),
		DistanceKm:    math.Round(distanceKm*100) / 100,
		DurationMins:  int(math.Round(durationMins)),
		TotalFare:     int(math.Round(p.Fare(distanceKm))),
		Mode:          p.Mode,
		RouteColor:    p.Color,
		TransportIcon: p.Icon,
	}
}
