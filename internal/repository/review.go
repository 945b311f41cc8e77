package repository

import (
	"context"

	"pokemonreview/internal/model"
)

// ReviewRepository is strictly persistence: it does not check that a review
// belongs to a given pokemon.
type ReviewRepository interface {
	// Create inserts a review and returns the stored row with its generated id.
	Create(ctx context.Context, r *model.Review) (*model.Review, error)

	// FindByID returns a review by id.
	FindByID(ctx context.Context, id int) (*model.Review, error)

	// FindAll returns every review ordered by id.
	FindAll(ctx context.Context) ([]model.Review, error)

	// FindByPokemonID returns the reviews owned by a pokemon ordered by id.
	FindByPokemonID(ctx context.Context, pokemonID int) ([]model.Review, error)

	// Update overwrites title, content and stars of the row identified by r.ID.
	Update(ctx context.Context, r *model.Review) (*model.Review, error)

	// Delete removes a review by id.
	Delete(ctx context.Context, id int) error
}
