package usecase_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trainmeet/internal/domain"
	"github.com/trainmeet/internal/pkg/errors"
	"github.com/trainmeet/internal/usecase"
	"github.com/trainmeet/internal/usecase/dto"
)

var (
	zurich = &domain.Coordinate{Lat: 47.3769, Lng: 8.5417}
	bern   = &domain.Coordinate{Lat: 46.95, Lng: 7.44}
	geneva = &domain.Coordinate{Lat: 46.2044, Lng: 6.1432}

	errUpstream = stderrors.New("upstream failed")
)

func arrivalUnix() int64 {
	return time.Date(2024, time.May, 13, 19, 0, 0, 0, time.Local).Unix() - 7200
}

func sampleRoute(from, to string) *domain.RouteResult {
	return &domain.RouteResult{
		Legs: []domain.TransitLeg{{
			DepartureStation: from,
			ArrivalStation:   to,
			DepartureTime:    "4:12 PM",
			ArrivalTime:      "6:53 PM",
			Duration:         "2 hours 41 mins",
		}},
		Waypoints: []domain.Coordinate{{Lat: 1, Lng: 1}, {Lat: 2, Lng: 2}},
	}
}

func TestRoutePlannerUseCase_Plan(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("routes for every start place in order", func(t *testing.T) {
		maps := &MockMapsRepository{}
		uc := usecase.NewRoutePlannerUseCase(maps, logger)

		maps.On("HasCredential").Return(true)
		maps.On("Geocode", ctx, "Zürich HB, Schweiz").Return(zurich, nil).Once()
		maps.On("Geocode", ctx, "Bern, Schweiz").Return(bern, nil).Once()
		maps.On("Geocode", ctx, "Genève, Schweiz").Return(geneva, nil).Twice()
		maps.On("GetTransitRoute", ctx, domain.RouteQuery{Origin: *zurich, Destination: *geneva, ArrivalTime: arrivalUnix()}).
			Return(sampleRoute("Zürich HB", "Genève"), nil).Once()
		maps.On("GetTransitRoute", ctx, domain.RouteQuery{Origin: *bern, Destination: *geneva, ArrivalTime: arrivalUnix()}).
			Return(sampleRoute("Bern", "Genève"), nil).Once()
		maps.On("EmbedURL", *zurich, *geneva).Return("embed-zurich")
		maps.On("EmbedURL", *bern, *geneva).Return("embed-bern")

		resp, err := uc.Plan(ctx, dto.PlanRequest{
			StartLocations: "Zürich HB, Schweiz; Bern, Schweiz",
			Destination:    "Genève, Schweiz",
			ArrivalTime:    "13.05.2024-19:00",
		})

		require.NoError(t, err)
		assert.Equal(t, arrivalUnix(), resp.ArrivalUnix)
		assert.Equal(t, "Genève, Schweiz", resp.Destination)
		require.Len(t, resp.Routes, 2)
		assert.Equal(t, 2, resp.FoundCount())

		assert.Equal(t, "Zürich HB, Schweiz", resp.Routes[0].Start)
		assert.True(t, resp.Routes[0].Found)
		assert.Equal(t, "Zürich HB", resp.Routes[0].Legs[0].DepartureStation)
		assert.Equal(t, "embed-zurich", resp.Routes[0].MapEmbedURL)
		assert.Equal(t, zurich, resp.Routes[0].Origin)
		assert.Equal(t, geneva, resp.Routes[0].Target)

		assert.Equal(t, "Bern, Schweiz", resp.Routes[1].Start)
		assert.Equal(t, "embed-bern", resp.Routes[1].MapEmbedURL)
		assert.Len(t, resp.Routes[1].Waypoints, 2)

		maps.AssertExpectations(t)
	})

	t.Run("route failure only affects its start place", func(t *testing.T) {
		maps := &MockMapsRepository{}
		uc := usecase.NewRoutePlannerUseCase(maps, logger)

		maps.On("HasCredential").Return(true)
		maps.On("Geocode", ctx, "Zürich").Return(zurich, nil)
		maps.On("Geocode", ctx, "Bern").Return(bern, nil)
		maps.On("Geocode", ctx, "Genève").Return(geneva, nil)
		maps.On("GetTransitRoute", ctx, mock.MatchedBy(func(q domain.RouteQuery) bool { return q.Origin == *zurich })).
			Return(nil, errUpstream)
		maps.On("GetTransitRoute", ctx, mock.MatchedBy(func(q domain.RouteQuery) bool { return q.Origin == *bern })).
			Return(sampleRoute("Bern", "Genève"), nil)
		maps.On("EmbedURL", *bern, *geneva).Return("embed-bern")

		resp, err := uc.Plan(ctx, dto.PlanRequest{
			StartLocations: "Zürich; Bern",
			Destination:    "Genève",
			ArrivalTime:    "13.05.2024-19:00",
		})

		require.NoError(t, err)
		require.Len(t, resp.Routes, 2)
		assert.False(t, resp.Routes[0].Found)
		assert.Empty(t, resp.Routes[0].Legs)
		assert.Empty(t, resp.Routes[0].MapEmbedURL)
		assert.True(t, resp.Routes[1].Found)
		assert.Equal(t, 1, resp.FoundCount())

		maps.AssertNotCalled(t, "EmbedURL", *zurich, *geneva)
	})

	t.Run("unknown start place skips the route call", func(t *testing.T) {
		maps := &MockMapsRepository{}
		uc := usecase.NewRoutePlannerUseCase(maps, logger)

		maps.On("HasCredential").Return(true)
		maps.On("Geocode", ctx, "Atlantis").Return(nil, errUpstream)

		resp, err := uc.Plan(ctx, dto.PlanRequest{
			StartLocations: "Atlantis",
			Destination:    "Genève",
			ArrivalTime:    "13.05.2024-19:00",
		})

		require.NoError(t, err)
		require.Len(t, resp.Routes, 1)
		assert.False(t, resp.Routes[0].Found)
		assert.Nil(t, resp.Routes[0].Origin)
		maps.AssertNotCalled(t, "GetTransitRoute", mock.Anything, mock.Anything)
	})

	t.Run("unknown destination", func(t *testing.T) {
		maps := &MockMapsRepository{}
		uc := usecase.NewRoutePlannerUseCase(maps, logger)

		maps.On("HasCredential").Return(true)
		maps.On("Geocode", ctx, "Bern").Return(bern, nil)
		maps.On("Geocode", ctx, "Atlantis").Return(nil, errUpstream)

		resp, err := uc.Plan(ctx, dto.PlanRequest{
			StartLocations: "Bern",
			Destination:    "Atlantis",
			ArrivalTime:    "13.05.2024-19:00",
		})

		require.NoError(t, err)
		assert.False(t, resp.Routes[0].Found)
		maps.AssertNotCalled(t, "GetTransitRoute", mock.Anything, mock.Anything)
	})

	invalid := []struct {
		name string
		req  dto.PlanRequest
	}{
		{
			name: "wrong date separators",
			req:  dto.PlanRequest{StartLocations: "Bern", Destination: "Genève", ArrivalTime: "13-05-2024 19:00"},
		},
		{
			name: "only separators as start places",
			req:  dto.PlanRequest{StartLocations: " ; ;", Destination: "Genève", ArrivalTime: "13.05.2024-19:00"},
		},
		{
			name: "blank destination",
			req:  dto.PlanRequest{StartLocations: "Bern", Destination: "  ", ArrivalTime: "13.05.2024-19:00"},
		},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			maps := &MockMapsRepository{}
			uc := usecase.NewRoutePlannerUseCase(maps, logger)
			maps.On("HasCredential").Return(true)

			resp, err := uc.Plan(ctx, tt.req)

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, errors.ErrInvalidInput)
			maps.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
		})
	}

	t.Run("missing credential", func(t *testing.T) {
		maps := &MockMapsRepository{}
		uc := usecase.NewRoutePlannerUseCase(maps, logger)
		maps.On("HasCredential").Return(false)

		resp, err := uc.Plan(ctx, dto.PlanRequest{
			StartLocations: "Bern",
			Destination:    "Genève",
			ArrivalTime:    "13.05.2024-19:00",
		})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, errors.ErrInvalidInput)
		maps.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
	})

	t.Run("cancelled context stops planning", func(t *testing.T) {
		maps := &MockMapsRepository{}
		uc := usecase.NewRoutePlannerUseCase(maps, logger)
		maps.On("HasCredential").Return(true)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		resp, err := uc.Plan(cancelled, dto.PlanRequest{
			StartLocations: "Bern",
			Destination:    "Genève",
			ArrivalTime:    "13.05.2024-19:00",
		})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestRoutePlannerUseCase_Locate(t *testing.T) {
	ctx := context.Background()
	maps := &MockMapsRepository{}
	uc := usecase.NewRoutePlannerUseCase(maps, zap.NewNop())

	maps.On("Geocode", ctx, "Bern").Return(bern, nil)
	maps.On("Geocode", ctx, "Atlantis").Return(nil, errUpstream)

	assert.Equal(t, bern, uc.Locate(ctx, "Bern"))
	assert.Nil(t, uc.Locate(ctx, "Atlantis"))
}

func TestRoutePlannerUseCase_FindRoute(t *testing.T) {
	ctx := context.Background()
	maps := &MockMapsRepository{}
	uc := usecase.NewRoutePlannerUseCase(maps, zap.NewNop())

	ok := domain.RouteQuery{Origin: *bern, Destination: *geneva, ArrivalTime: 1}
	failing := domain.RouteQuery{Origin: *zurich, Destination: *geneva, ArrivalTime: 1}
	maps.On("GetTransitRoute", ctx, ok).Return(sampleRoute("Bern", "Genève"), nil)
	maps.On("GetTransitRoute", ctx, failing).Return(nil, errUpstream)

	first := uc.FindRoute(ctx, ok)
	second := uc.FindRoute(ctx, ok)
	require.NotNil(t, first)
	assert.Equal(t, first, second)
	assert.Nil(t, uc.FindRoute(ctx, failing))
}
