package model

import "time"

// Review is a user review of exactly one Pokemon. PokemonID is zero for a
// review that has not been attached yet.
type Review struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Stars     int       `json:"stars"`
	PokemonID int       `json:"pokemon_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BelongsTo reports whether the review is owned by the given pokemon.
func (r *Review) BelongsTo(pokemonID int) bool {
	return r.PokemonID != 0 && r.PokemonID == pokemonID
}
