package dto

import "github.com/trainmeet/internal/domain"

// PlanRequest - запрос на поиск маршрутов к общей точке встречи
type PlanRequest struct {
	StartLocations string `json:"start_locations" form:"start_locations" validate:"required"` // places separated by ";"
	Destination    string `json:"destination" form:"destination" validate:"required"`
	ArrivalTime    string `json:"arrival_time" form:"arrival_time" validate:"required,max=16"` // DD.MM.YYYY-HH:MM
}

// PlanResponse - маршруты для всех мест отправления
type PlanResponse struct {
	RequestID   string          `json:"request_id,omitempty"`
	Destination string          `json:"destination"`
	ArrivalTime string          `json:"arrival_time"`
	ArrivalUnix int64           `json:"arrival_unix"`
	Routes      []RouteResponse `json:"routes"`
}

// RouteResponse - результат для одного места отправления. Found=false
// означает "маршрут не найден" без уточнения причины.
type RouteResponse struct {
	Start       string              `json:"start"`
	Destination string              `json:"destination"`
	Found       bool                `json:"found"`
	Legs        []domain.TransitLeg `json:"legs,omitempty"`
	Waypoints   []domain.Coordinate `json:"waypoints,omitempty"`
	Origin      *domain.Coordinate  `json:"origin,omitempty"`
	Target      *domain.Coordinate  `json:"target,omitempty"`
	MapEmbedURL string              `json:"map_embed_url,omitempty"`
}

// FoundCount returns the number of start places a route was found for.
func (r *PlanResponse) FoundCount() int {
	n := 0
	for _, route := range r.Routes {
		if route.Found {
			n++
		}
	}
	return n
}
