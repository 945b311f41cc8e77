// Package cached decorates repositories with a Redis read-through cache.
package cached

import (
	"context"
	"strconv"

	"pokemonreview/internal/cache"
	"pokemonreview/internal/model"
	"pokemonreview/internal/repository"
)

// PokemonKeyPrefix namespaces cached pokemon rows.
const PokemonKeyPrefix = "pokemon:view:"

// PokemonRepository serves FindByID from Redis when possible and falls back to
// the wrapped repository, warming the cache on every cold read. Mutations
// invalidate the affected entry after the store accepted them.
type PokemonRepository struct {
	next  repository.PokemonRepository
	cache *cache.ViewCache[model.Pokemon]
}

var _ repository.PokemonRepository = (*PokemonRepository)(nil)

// NewPokemonRepository wraps next with c.
func NewPokemonRepository(next repository.PokemonRepository, c *cache.ViewCache[model.Pokemon]) *PokemonRepository {
	return &PokemonRepository{next: next, cache: c}
}

func cacheID(id int) string { return strconv.Itoa(id) }

func (r *PokemonRepository) Create(ctx context.Context, p *model.Pokemon) (*model.Pokemon, error) {
	saved, err := r.next.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	r.cache.Set(ctx, cacheID(saved.ID), saved)
	return saved, nil
}

func (r *PokemonRepository) FindByID(ctx context.Context, id int) (*model.Pokemon, error) {
	if p, ok := r.cache.Get(ctx, cacheID(id)); ok {
		return p, nil
	}
	p, err := r.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.cache.Set(ctx, cacheID(id), p)
	return p, nil
}

func (r *PokemonRepository) FindByType(ctx context.Context, pokemonType string) (*model.Pokemon, error) {
	return r.next.FindByType(ctx, pokemonType)
}

func (r *PokemonRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Pokemon], error) {
	return r.next.List(ctx, pq)
}

func (r *PokemonRepository) Update(ctx context.Context, p *model.Pokemon) (*model.Pokemon, error) {
	updated, err := r.next.Update(ctx, p)
	if err != nil {
		return nil, err
	}
	r.cache.Delete(ctx, cacheID(p.ID))
	return updated, nil
}

func (r *PokemonRepository) UpdateSprite(ctx context.Context, id int, spritePath string) error {
	if err := r.next.UpdateSprite(ctx, id, spritePath); err != nil {
		return err
	}
	r.cache.Delete(ctx, cacheID(id))
	return nil
}

func (r *PokemonRepository) Delete(ctx context.Context, id int) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	r.cache.Delete(ctx, cacheID(id))
	return nil
}
