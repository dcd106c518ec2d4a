package googlemaps

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/trainmeet/internal/domain"
	"github.com/trainmeet/internal/pkg/validator"
	"go.uber.org/zap"
)

// Geocode возвращает координаты первого результата Geocoding API для place.
func (c *client) Geocode(ctx context.Context, place string) (coord *domain.Coordinate, err error) {
	place = strings.TrimSpace(place)
	if place == "" {
		return nil, ErrEmptyPlace
	}

	defer func(start time.Time) { observe(endpointGeocode, start, err) }(time.Now())

	params := url.Values{}
	params.Set("address", place)

	var payload geocodeResponse
	if err := c.getJSON(ctx, "geocode", params, &payload); err != nil {
		c.logger.Warn("Geocoding request failed", zap.String("place", place), zap.Error(err))
		return nil, err
	}

	if len(payload.Results) == 0 {
		c.logger.Warn("Geocoding returned no results",
			zap.String("place", place),
			zap.String("status", payload.Status),
			zap.String("error_message", payload.ErrorMessage))
		return nil, fmt.Errorf("%w: geocode status %q", ErrNoResults, payload.Status)
	}

	first := payload.Results[0]
	if err := validator.GetValidator().Struct(&first); err != nil {
		c.logger.Warn("Geocoding result is incomplete", zap.String("place", place), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	location := first.Geometry.Location.coordinate()

	c.logger.Debug("Geocoding successful",
		zap.String("place", place),
		zap.String("formatted_address", first.FormattedAddress),
		zap.Float64("lat", location.Lat),
		zap.Float64("lng", location.Lng))

	return &location, nil
}
