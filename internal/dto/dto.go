// Package dto holds the flat transfer objects exposed by the HTTP API and the
// conversions between them and the persistence models.
package dto

import (
	"pokemonreview/internal/model"
)

// PokemonDto is the API representation of a pokemon.
type PokemonDto struct {
	ID   int    `json:"id"`
	Name string `json:"name" validate:"required,max=100"`
	Type string `json:"type" validate:"required,max=100"`
}

// ReviewDto is the API representation of a review. The owning pokemon is
// always taken from the request path, never from the body.
type ReviewDto struct {
	ID      int    `json:"id"`
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
	Stars   int    `json:"stars" validate:"required,min=1,max=5"`
}

// PokemonPage is one page of pokemon, numbered from zero.
type PokemonPage struct {
	Content       []PokemonDto `json:"content"`
	PageNo        int          `json:"pageNo"`
	PageSize      int          `json:"pageSize"`
	TotalElements int          `json:"totalElements"`
	TotalPages    int          `json:"totalPages"`
	Last          bool         `json:"last"`
}

// NewPokemonPage wraps items with the page counters derived from total.
func NewPokemonPage(items []PokemonDto, total, pageNo, pageSize int) *PokemonPage {
	if items == nil {
		items = []PokemonDto{}
	}
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}
	return &PokemonPage{
		Content:       items,
		PageNo:        pageNo,
		PageSize:      pageSize,
		TotalElements: total,
		TotalPages:    totalPages,
		Last:          pageNo+1 >= totalPages,
	}
}

func ToPokemonDto(p model.Pokemon) PokemonDto {
	return PokemonDto{ID: p.ID, Name: p.Name, Type: p.Type}
}

// ToPokemonModel copies the writable fields; the id is set by the store.
func ToPokemonModel(d PokemonDto) *model.Pokemon {
	return &model.Pokemon{Name: d.Name, Type: d.Type}
}

func ToPokemonDtos(items []model.Pokemon) []PokemonDto {
	out := make([]PokemonDto, 0, len(items))
	for _, p := range items {
		out = append(out, ToPokemonDto(p))
	}
	return out
}

func ToReviewDto(r model.Review) ReviewDto {
	return ReviewDto{ID: r.ID, Title: r.Title, Content: r.Content, Stars: r.Stars}
}

// ToReviewModel copies the writable fields and attaches the review to pokemonID.
func ToReviewModel(d ReviewDto, pokemonID int) *model.Review {
	return &model.Review{Title: d.Title, Content: d.Content, Stars: d.Stars, PokemonID: pokemonID}
}

func ToReviewDtos(items []model.Review) []ReviewDto {
	out := make([]ReviewDto, 0, len(items))
	for _, r := range items {
		out = append(out, ToReviewDto(r))
	}
	return out
}
