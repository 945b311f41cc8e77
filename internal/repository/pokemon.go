package repository

import (
	"context"

	"pokemonreview/internal/model"
)

// PokemonRepository is strictly persistence: no ownership or existence rules.
type PokemonRepository interface {
	// Create inserts a pokemon and returns the stored row with its generated id.
	Create(ctx context.Context, p *model.Pokemon) (*model.Pokemon, error)

	// FindByID returns a pokemon by id.
	FindByID(ctx context.Context, id int) (*model.Pokemon, error)

	// FindByType returns the first pokemon (lowest id) of the given type.
	FindByType(ctx context.Context, pokemonType string) (*model.Pokemon, error)

	// List returns a page of pokemon ordered by id and the total row count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Pokemon], error)

	// Update overwrites name and type of the row identified by p.ID.
	Update(ctx context.Context, p *model.Pokemon) (*model.Pokemon, error)

	// UpdateSprite sets the sprite object key of a pokemon.
	UpdateSprite(ctx context.Context, id int, spritePath string) error

	// Delete removes a pokemon; its reviews go with it (ON DELETE CASCADE).
	Delete(ctx context.Context, id int) error
}
