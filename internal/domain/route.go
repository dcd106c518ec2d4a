package domain

import "strings"

// Travel modes reported by the Directions API for a single step.
const (
	TravelModeTransit = "TRANSIT"
	TravelModeWalking = "WALKING"
)

// TransitLeg - одна поездка по железной дороге внутри маршрута
type TransitLeg struct {
	DepartureStation string `json:"departure_station"`
	ArrivalStation   string `json:"arrival_station"`
	DepartureTime    string `json:"departure_time"`
	ArrivalTime      string `json:"arrival_time"`
	Duration         string `json:"duration"`
}

// RouteResult holds the transit legs of the first itinerary in travel order
// plus the start and end coordinate of every leg.
type RouteResult struct {
	Legs      []TransitLeg `json:"legs"`
	Waypoints []Coordinate `json:"waypoints"`
}

// RouteQuery - параметры запроса маршрута
type RouteQuery struct {
	Origin      Coordinate
	Destination Coordinate
	ArrivalTime int64 // epoch seconds
}

// SplitPlaces splits a semicolon separated list of places, trimming each entry
// and dropping empty ones.
func SplitPlaces(raw string) []string {
	parts := strings.Split(raw, ";")
	places := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			places = append(places, trimmed)
		}
	}
	return places
}
