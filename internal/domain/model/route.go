package model

// TravelMode selects how a route is travelled.
type TravelMode string

// Travel modes understood by the routing provider.
const (
	TravelModeDriving   TravelMode = "DRIVING"
	TravelModeWalking   TravelMode = "WALKING"
	TravelModeBicycling TravelMode = "BICYCLING"
	TravelModeTransit   TravelMode = "TRANSIT"
)

// Valid reports whether m is a known travel mode.
func (m TravelMode) Valid() bool {
	switch m {
	case TravelModeDriving, TravelModeWalking, TravelModeBicycling, TravelModeTransit:
		return true
	}
	return false
}

// UnitSystem selects the unit system used for human-readable texts.
type UnitSystem string

// Unit systems.
const (
	UnitSystemMetric   UnitSystem = "METRIC"
	UnitSystemImperial UnitSystem = "IMPERIAL"
)

// RouteStep is one manoeuvre of a route leg.
//
// @Description Single step of a route
type RouteStep struct {
	DistanceMeters  int    `json:"distance_meters" example:"120"`
	DurationSeconds int    `json:"duration_seconds" example:"30"`
	Instructions    string `json:"instructions" example:"Turn <b>left</b> onto Unter den Linden"`
	Polyline        string `json:"polyline" example:"_p~iF~ps|U_ulLnnqC"`
}

// RouteResult is the shaped first leg of the first route a provider returned.
// Steps keep provider order from start to destination.
//
// @Description Route between two locations
type RouteResult struct {
	DistanceMeters  int         `json:"distance_meters" example:"4200"`
	DurationSeconds int         `json:"duration_seconds" example:"780"`
	Polyline        string      `json:"polyline" example:"_p~iF~ps|U_ulLnnqC_mqNvxq@"`
	Steps           []RouteStep `json:"steps"`
}

// RouteOptions tunes a route calculation. Use DefaultRouteOptions for the
// documented defaults; the zero value disables caching and waypoint optimisation.
type RouteOptions struct {
	UseCache          bool
	TravelMode        TravelMode
	Alternatives      bool
	AvoidHighways     bool
	AvoidTolls        bool
	AvoidFerries      bool
	UnitSystem        UnitSystem
	OptimizeWaypoints bool
	Language          string
}

// DefaultRouteOptions returns the default route options.
func DefaultRouteOptions() RouteOptions {
	return RouteOptions{
		UseCache:          true,
		TravelMode:        TravelModeDriving,
		UnitSystem:        UnitSystemMetric,
		OptimizeWaypoints: true,
		Language:          "de",
	}
}

// PlaceRef is a provider place reference used as a route endpoint.
// Only Location or Query take part in routing; PlaceID alone is not routable.
type PlaceRef struct {
	Location *LatLng `json:"location,omitempty"`
	Query    string  `json:"query,omitempty"`
	PlaceID  string  `json:"place_id,omitempty"`
}
