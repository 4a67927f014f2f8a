package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/uci2pgn/internal/models"
)

// MockConversionRepository is a mock implementation of repository.ConversionRepository
type MockConversionRepository struct {
	mock.Mock
}

func (m *MockConversionRepository) Insert(ctx context.Context, c models.Conversion) (int64, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockConversionRepository) Get(ctx context.Context, id int64) (*models.Conversion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Conversion), args.Error(1)
}

func (m *MockConversionRepository) List(ctx context.Context, filter models.ConversionFilter) ([]models.Conversion, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Conversion), args.Error(1)
}

func (m *MockConversionRepository) Count(ctx context.Context, filter models.ConversionFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}
