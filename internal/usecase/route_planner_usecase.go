package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/trainmeet/internal/domain"
	"github.com/trainmeet/internal/domain/repository"
	"github.com/trainmeet/internal/pkg/errors"
	"github.com/trainmeet/internal/pkg/timestamp"
	"github.com/trainmeet/internal/usecase/dto"
	"go.uber.org/zap"
)

type RoutePlannerUseCase struct {
	maps   repository.MapsRepository
	logger *zap.Logger
}

func NewRoutePlannerUseCase(
	maps repository.MapsRepository,
	logger *zap.Logger,
) *RoutePlannerUseCase {
	return &RoutePlannerUseCase{
		maps:   maps,
		logger: logger,
	}
}

// Locate geocodes place. Any failure yields nil; the cause is only logged.
func (uc *RoutePlannerUseCase) Locate(ctx context.Context, place string) *domain.Coordinate {
	coord, err := uc.maps.Geocode(ctx, place)
	if err != nil {
		uc.logger.Warn("Place could not be located", zap.String("place", place), zap.Error(err))
		return nil
	}
	return coord
}

// FindRoute requests the rail itinerary. Any failure yields nil.
func (uc *RoutePlannerUseCase) FindRoute(ctx context.Context, query domain.RouteQuery) *domain.RouteResult {
	result, err := uc.maps.GetTransitRoute(ctx, query)
	if err != nil {
		uc.logger.Warn("No transit route",
			zap.String("origin", query.Origin.String()),
			zap.String("destination", query.Destination.String()),
			zap.Error(err))
		return nil
	}
	return result
}

// Plan looks up one route per start place, one place at a time. Invalid input
// (missing credential, empty places, bad arrival time) returns
// errors.ErrInvalidInput; a place without a route is reported with Found=false.
func (uc *RoutePlannerUseCase) Plan(ctx context.Context, req dto.PlanRequest) (*dto.PlanResponse, error) {
	if !uc.maps.HasCredential() {
		uc.logger.Warn("Google Maps API key is not configured")
		return nil, errors.ErrInvalidInput
	}

	starts := domain.SplitPlaces(req.StartLocations)
	destination := strings.TrimSpace(req.Destination)
	if len(starts) == 0 || destination == "" {
		return nil, errors.ErrInvalidInput
	}

	arrival, err := timestamp.Parse(strings.TrimSpace(req.ArrivalTime))
	if err != nil {
		uc.logger.Debug("Invalid arrival time", zap.String("arrival_time", req.ArrivalTime), zap.Error(err))
		return nil, errors.ErrInvalidInput
	}

	resp := &dto.PlanResponse{
		Destination: destination,
		ArrivalTime: strings.TrimSpace(req.ArrivalTime),
		ArrivalUnix: arrival,
		Routes:      make([]dto.RouteResponse, 0, len(starts)),
	}

	for _, start := range starts {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("planning interrupted: %w", err)
		}
		resp.Routes = append(resp.Routes, uc.planOne(ctx, start, destination, arrival))
	}

	uc.logger.Info("Routes planned",
		zap.String("destination", destination),
		zap.Int64("arrival_unix", arrival),
		zap.Int("starts", len(starts)),
		zap.Int("found", resp.FoundCount()))

	return resp, nil
}

func (uc *RoutePlannerUseCase) planOne(ctx context.Context, start, destination string, arrival int64) dto.RouteResponse {
	out := dto.RouteResponse{
		Start:       start,
		Destination: destination,
	}

	origin := uc.Locate(ctx, start)
	if origin == nil {
		return out
	}
	target := uc.Locate(ctx, destination)
	if target == nil {
		return out
	}
	out.Origin = origin
	out.Target = target

	route := uc.FindRoute(ctx, domain.RouteQuery{
		Origin:      *origin,
		Destination: *target,
		ArrivalTime: arrival,
	})
	if route == nil {
		return out
	}

	out.Found = true
	out.Legs = route.Legs
	out.Waypoints = route.Waypoints
	out.MapEmbedURL = uc.maps.EmbedURL(*origin, *target)

	return out
}
