package service

import "errors"

var (
	ErrInvalidID       = errors.New("id must be a positive integer")
	ErrReaderNil       = errors.New("reader is nil")
	ErrPokemonNotFound = errors.New("pokemon not found")
	ErrReviewNotFound  = errors.New("review not found")
	ErrSpriteNotFound  = errors.New("sprite not found")
	ErrUnsupportedType = errors.New("sprite must be an image")
)

// User-facing not-found messages.
const (
	MsgPokemonNotFound         = "Pokemon could not be found"
	MsgPokemonNotUpdated       = "Pokemon could not be updated"
	MsgPokemonNotDeleted       = "Pokemon could not be deleted"
	MsgPokemonOfReviewNotFound = "Pokemon with associated review not found"
	MsgReviewNotFound          = "Review with associate pokemon not found"
	MsgReviewNotOwned          = "This review does not belong to a pokemon"
)

// NotFoundError carries a user-facing message for a missing pokemon or review.
// errors.Is(err, ErrPokemonNotFound) and errors.Is(err, ErrReviewNotFound) see through it.
type NotFoundError struct {
	Kind    error
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func (e *NotFoundError) Unwrap() error { return e.Kind }

func pokemonNotFound(msg string) error {
	return &NotFoundError{Kind: ErrPokemonNotFound, Message: msg}
}

func reviewNotFound(msg string) error {
	return &NotFoundError{Kind: ErrReviewNotFound, Message: msg}
}
