package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"pokemonreview/internal/dto"
	"pokemonreview/internal/service"
)

type MockPokemonService struct {
	mock.Mock
}

func (m *MockPokemonService) Create(ctx context.Context, in dto.PokemonDto) (*dto.PokemonDto, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PokemonDto), args.Error(1)
}

func (m *MockPokemonService) List(ctx context.Context, pageNo, pageSize int) (*dto.PokemonPage, error) {
	args := m.Called(ctx, pageNo, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PokemonPage), args.Error(1)
}

func (m *MockPokemonService) Get(ctx context.Context, id int) (*dto.PokemonDto, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PokemonDto), args.Error(1)
}

func (m *MockPokemonService) GetByType(ctx context.Context, pokemonType string) (*dto.PokemonDto, error) {
	args := m.Called(ctx, pokemonType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PokemonDto), args.Error(1)
}

func (m *MockPokemonService) Update(ctx context.Context, id int, in dto.PokemonDto) (*dto.PokemonDto, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PokemonDto), args.Error(1)
}

func (m *MockPokemonService) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) Create(ctx context.Context, pokemonID int, in dto.ReviewDto) (*dto.ReviewDto, error) {
	args := m.Called(ctx, pokemonID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReviewDto), args.Error(1)
}

func (m *MockReviewService) ListByPokemon(ctx context.Context, pokemonID int) ([]dto.ReviewDto, error) {
	args := m.Called(ctx, pokemonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ReviewDto), args.Error(1)
}

func (m *MockReviewService) Get(ctx context.Context, reviewID, pokemonID int) (*dto.ReviewDto, error) {
	args := m.Called(ctx, reviewID, pokemonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReviewDto), args.Error(1)
}

func (m *MockReviewService) Update(ctx context.Context, pokemonID, reviewID int, in dto.ReviewDto) (*dto.ReviewDto, error) {
	args := m.Called(ctx, pokemonID, reviewID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReviewDto), args.Error(1)
}

func (m *MockReviewService) Delete(ctx context.Context, pokemonID, reviewID int) error {
	args := m.Called(ctx, pokemonID, reviewID)
	return args.Error(0)
}

type MockSpriteService struct {
	mock.Mock
}

func (m *MockSpriteService) Upload(ctx context.Context, pokemonID int, r io.Reader, filename, contentType string, size int64) (*service.SpriteInfo, error) {
	args := m.Called(ctx, pokemonID, r, filename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SpriteInfo), args.Error(1)
}

func (m *MockSpriteService) URL(ctx context.Context, pokemonID int) (string, error) {
	args := m.Called(ctx, pokemonID)
	return args.String(0), args.Error(1)
}
