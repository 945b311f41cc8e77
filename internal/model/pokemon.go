package model

import "time"

// Pokemon is the persisted pokemon record. Reviews reference it through Review.PokemonID.
// SpritePath is the object storage key of its image, empty when none was uploaded.
type Pokemon struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	SpritePath string    `json:"sprite_path,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
