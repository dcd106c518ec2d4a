package googlemaps

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/trainmeet/internal/domain"
	"github.com/trainmeet/internal/pkg/validator"
	"go.uber.org/zap"
)

// GetTransitRoute requests rail transit directions arriving by
// query.ArrivalTime and shapes the first itinerary. Only TRANSIT steps become
// legs; each contributes its start and end location to the waypoints.
func (c *client) GetTransitRoute(ctx context.Context, query domain.RouteQuery) (result *domain.RouteResult, err error) {
	defer func(start time.Time) { observe(endpointDirections, start, err) }(time.Now())

	params := url.Values{}
	params.Set("origin", query.Origin.String())
	params.Set("destination", query.Destination.String())
	params.Set("mode", "transit")
	params.Set("transit_mode", "rail")
	params.Set("arrival_time", strconv.FormatInt(query.ArrivalTime, 10))

	logFields := []zap.Field{
		zap.String("origin", query.Origin.String()),
		zap.String("destination", query.Destination.String()),
		zap.Int64("arrival_time", query.ArrivalTime),
	}

	var payload directionsResponse
	if err := c.getJSON(ctx, "directions", params, &payload); err != nil {
		c.logger.Warn("Directions request failed", append(logFields, zap.Error(err))...)
		return nil, err
	}

	if len(payload.Routes) == 0 {
		c.logger.Warn("Directions returned no routes",
			append(logFields,
				zap.String("status", payload.Status),
				zap.String("error_message", payload.ErrorMessage))...)
		return nil, fmt.Errorf("%w: directions status %q", ErrNoResults, payload.Status)
	}

	result, err = shapeRoute(payload.Routes[0])
	if err != nil {
		c.logger.Warn("Directions payload is incomplete", append(logFields, zap.Error(err))...)
		return nil, err
	}

	c.logger.Debug("Directions successful",
		append(logFields,
			zap.String("summary", payload.Routes[0].Summary),
			zap.Int("transit_legs", len(result.Legs)))...)

	return result, nil
}

// shapeRoute converts the first leg of r. Any step missing a field it is
// read for fails the whole route.
func shapeRoute(r directionRoute) (*domain.RouteResult, error) {
	if len(r.Legs) == 0 {
		return nil, fmt.Errorf("%w: route has no legs", ErrMalformedPayload)
	}

	result := &domain.RouteResult{
		Legs:      []domain.TransitLeg{},
		Waypoints: []domain.Coordinate{},
	}

	for i := range r.Legs[0].Steps {
		step := &r.Legs[0].Steps[i]
		if step.TravelMode == "" {
			return nil, fmt.Errorf("%w: step %d has no travel_mode", ErrMalformedPayload, i)
		}
		if step.TravelMode != domain.TravelModeTransit {
			continue
		}
		if err := validator.GetValidator().Struct(step); err != nil {
			return nil, fmt.Errorf("%w: step %d: %v", ErrMalformedPayload, i, err)
		}

		result.Legs = append(result.Legs, step.transitLeg())
		result.Waypoints = append(result.Waypoints,
			step.StartLocation.coordinate(),
			step.EndLocation.coordinate(),
		)
	}

	return result, nil
}
