package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pokemonreview/internal/model"
	"pokemonreview/internal/repository"
)

type MockPokemonRepository struct {
	mock.Mock
}

func (m *MockPokemonRepository) Create(ctx context.Context, p *model.Pokemon) (*model.Pokemon, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pokemon), args.Error(1)
}

func (m *MockPokemonRepository) FindByID(ctx context.Context, id int) (*model.Pokemon, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pokemon), args.Error(1)
}

func (m *MockPokemonRepository) FindByType(ctx context.Context, pokemonType string) (*model.Pokemon, error) {
	args := m.Called(ctx, pokemonType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pokemon), args.Error(1)
}

func (m *MockPokemonRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Pokemon], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Pokemon]), args.Error(1)
}

func (m *MockPokemonRepository) Update(ctx context.Context, p *model.Pokemon) (*model.Pokemon, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pokemon), args.Error(1)
}

func (m *MockPokemonRepository) UpdateSprite(ctx context.Context, id int, spritePath string) error {
	args := m.Called(ctx, id, spritePath)
	return args.Error(0)
}

func (m *MockPokemonRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
