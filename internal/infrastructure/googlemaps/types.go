package googlemaps

import "github.com/trainmeet/internal/domain"

// Only the fields this service reads are modelled. Required fields are
// pointers so that a missing key can be told apart from a zero value.

type latLng struct {
	Lat *float64 `json:"lat" validate:"required,latitude"`
	Lng *float64 `json:"lng" validate:"required,longitude"`
}

func (l *latLng) coordinate() domain.Coordinate {
	return domain.Coordinate{Lat: *l.Lat, Lng: *l.Lng}
}

// geocodeResponse - ответ Geocoding API
type geocodeResponse struct {
	Status       string          `json:"status"`
	ErrorMessage string          `json:"error_message,omitempty"`
	Results      []geocodeResult `json:"results"`
}

type geocodeResult struct {
	FormattedAddress string    `json:"formatted_address"`
	Geometry         *geometry `json:"geometry" validate:"required"`
}

type geometry struct {
	Location *latLng `json:"location" validate:"required"`
}

// directionsResponse - ответ Directions API
type directionsResponse struct {
	Status       string           `json:"status"`
	ErrorMessage string           `json:"error_message,omitempty"`
	Routes       []directionRoute `json:"routes"`
}

type directionRoute struct {
	Summary string         `json:"summary"`
	Legs    []directionLeg `json:"legs"`
}

type directionLeg struct {
	Steps []directionStep `json:"steps"`
}

type directionStep struct {
	TravelMode     string          `json:"travel_mode" validate:"required"`
	Duration       *textValue      `json:"duration" validate:"required_if=TravelMode TRANSIT"`
	StartLocation  *latLng         `json:"start_location" validate:"required_if=TravelMode TRANSIT"`
	EndLocation    *latLng         `json:"end_location" validate:"required_if=TravelMode TRANSIT"`
	TransitDetails *transitDetails `json:"transit_details" validate:"required_if=TravelMode TRANSIT"`
}

type textValue struct {
	Text  *string `json:"text" validate:"required"`
	Value int64   `json:"value"`
}

type transitDetails struct {
	DepartureStop *transitStop `json:"departure_stop" validate:"required"`
	ArrivalStop   *transitStop `json:"arrival_stop" validate:"required"`
	DepartureTime *textValue   `json:"departure_time" validate:"required"`
	ArrivalTime   *textValue   `json:"arrival_time" validate:"required"`
	NumStops      int          `json:"num_stops"`
}

type transitStop struct {
	Name *string `json:"name" validate:"required"`
}

func (s *directionStep) transitLeg() domain.TransitLeg {
	return domain.TransitLeg{
		DepartureStation: *s.TransitDetails.DepartureStop.Name,
		ArrivalStation:   *s.TransitDetails.ArrivalStop.Name,
		DepartureTime:    *s.TransitDetails.DepartureTime.Text,
		ArrivalTime:      *s.TransitDetails.ArrivalTime.Text,
		Duration:         *s.Duration.Text,
	}
}
