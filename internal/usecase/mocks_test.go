package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/trainmeet/internal/domain"
)

// MockMapsRepository - мок для repository.MapsRepository
type MockMapsRepository struct {
	mock.Mock
}

func (m *MockMapsRepository) Geocode(ctx context.Context, place string) (*domain.Coordinate, error) {
	args := m.Called(ctx, place)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Coordinate), args.Error(1)
}

func (m *MockMapsRepository) GetTransitRoute(ctx context.Context, query domain.RouteQuery) (*domain.RouteResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RouteResult), args.Error(1)
}

func (m *MockMapsRepository) EmbedURL(origin, destination domain.Coordinate) string {
	args := m.Called(origin, destination)
	return args.String(0)
}

func (m *MockMapsRepository) HasCredential() bool {
	args := m.Called()
	return args.Bool(0)
}
