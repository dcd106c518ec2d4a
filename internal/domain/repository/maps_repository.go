package repository

import (
	"context"

	"github.com/trainmeet/internal/domain"
)

// GeocodingRepository resolves a free-text place into coordinates.
type GeocodingRepository interface {
	// Geocode возвращает координаты первого результата геокодера
	Geocode(ctx context.Context, place string) (*domain.Coordinate, error)
}

// DirectionsRepository finds rail itineraries between two coordinates.
type DirectionsRepository interface {
	// GetTransitRoute возвращает поездки первого маршрута, прибывающего
	// не позже query.ArrivalTime
	GetTransitRoute(ctx context.Context, query domain.RouteQuery) (*domain.RouteResult, error)
}

// MapsRepository определяет методы для работы с Google Maps Platform
type MapsRepository interface {
	GeocodingRepository
	DirectionsRepository

	// EmbedURL returns the embeddable transit map for origin and destination.
	EmbedURL(origin, destination domain.Coordinate) string

	// HasCredential reports whether an API key is configured.
	HasCredential() bool
}
