package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"pokemonreview/internal/dto"
	"pokemonreview/internal/model"
	"pokemonreview/internal/repository"
)

// ReviewService defines the use cases for reviews. Every operation addressing a
// single review verifies, in order, that the pokemon exists, that the review
// exists and that the review belongs to that pokemon.
type ReviewService interface {
	// Create attaches a new review to an existing pokemon.
	Create(ctx context.Context, pokemonID int, in dto.ReviewDto) (*dto.ReviewDto, error)

	// ListByPokemon returns the reviews of a pokemon; an unknown pokemon yields an empty list.
	ListByPokemon(ctx context.Context, pokemonID int) ([]dto.ReviewDto, error)

	Get(ctx context.Context, reviewID, pokemonID int) (*dto.ReviewDto, error)

	// Update overwrites title, content and stars.
	Update(ctx context.Context, pokemonID, reviewID int, in dto.ReviewDto) (*dto.ReviewDto, error)

	Delete(ctx context.Context, pokemonID, reviewID int) error
}

type reviewService struct {
	reviews  repository.ReviewRepository
	pokemons repository.PokemonRepository
}

// NewReviewService constructs a ReviewService.
func NewReviewService(reviews repository.ReviewRepository, pokemons repository.PokemonRepository) ReviewService {
	return &reviewService{reviews: reviews, pokemons: pokemons}
}

func reviewSpan(ctx context.Context, name string, pokemonID, reviewID int) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{attribute.Int("pokemon.id", pokemonID)}
	if reviewID != 0 {
		attrs = append(attrs, attribute.Int("review.id", reviewID))
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// ownedReview loads reviewID and checks that it belongs to pokemonID.
func (s *reviewService) ownedReview(ctx context.Context, pokemonID, reviewID int) (*model.Review, error) {
	if pokemonID <= 0 || reviewID <= 0 {
		return nil, ErrInvalidID
	}
	if _, err := s.pokemons.FindByID(ctx, pokemonID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, pokemonNotFound(MsgPokemonOfReviewNotFound)
		}
		return nil, fmt.Errorf("find pokemon: %w", err)
	}

	rv, err := s.reviews.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, reviewNotFound(MsgReviewNotFound)
		}
		return nil, fmt.Errorf("find review: %w", err)
	}

	if !rv.BelongsTo(pokemonID) {
		return nil, reviewNotFound(MsgReviewNotOwned)
	}
	return rv, nil
}

func (s *reviewService) Create(ctx context.Context, pokemonID int, in dto.ReviewDto) (out *dto.ReviewDto, err error) {
	if pokemonID <= 0 {
		return nil, ErrInvalidID
	}
	ctx, span := reviewSpan(ctx, "ReviewService.Create", pokemonID, 0)
	defer func() { endSpan(span, err) }()

	if _, err := s.pokemons.FindByID(ctx, pokemonID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, pokemonNotFound(MsgPokemonOfReviewNotFound)
		}
		return nil, fmt.Errorf("find pokemon: %w", err)
	}

	saved, err := s.reviews.Create(ctx, dto.ToReviewModel(in, pokemonID))
	if err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	d := dto.ToReviewDto(*saved)
	return &d, nil
}

func (s *reviewService) ListByPokemon(ctx context.Context, pokemonID int) (out []dto.ReviewDto, err error) {
	ctx, span := reviewSpan(ctx, "ReviewService.ListByPokemon", pokemonID, 0)
	defer func() { endSpan(span, err) }()

	items, err := s.reviews.FindByPokemonID(ctx, pokemonID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return dto.ToReviewDtos(items), nil
}

func (s *reviewService) Get(ctx context.Context, reviewID, pokemonID int) (out *dto.ReviewDto, err error) {
	ctx, span := reviewSpan(ctx, "ReviewService.Get", pokemonID, reviewID)
	defer func() { endSpan(span, err) }()

	rv, err := s.ownedReview(ctx, pokemonID, reviewID)
	if err != nil {
		return nil, err
	}
	d := dto.ToReviewDto(*rv)
	return &d, nil
}

func (s *reviewService) Update(ctx context.Context, pokemonID, reviewID int, in dto.ReviewDto) (out *dto.ReviewDto, err error) {
	ctx, span := reviewSpan(ctx, "ReviewService.Update", pokemonID, reviewID)
	defer func() { endSpan(span, err) }()

	rv, err := s.ownedReview(ctx, pokemonID, reviewID)
	if err != nil {
		return nil, err
	}
	rv.Title = in.Title
	rv.Content = in.Content
	rv.Stars = in.Stars

	updated, err := s.reviews.Update(ctx, rv)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, reviewNotFound(MsgReviewNotFound)
		}
		return nil, fmt.Errorf("update review: %w", err)
	}
	d := dto.ToReviewDto(*updated)
	return &d, nil
}

func (s *reviewService) Delete(ctx context.Context, pokemonID, reviewID int) (err error) {
	ctx, span := reviewSpan(ctx, "ReviewService.Delete", pokemonID, reviewID)
	defer func() { endSpan(span, err) }()

	rv, err := s.ownedReview(ctx, pokemonID, reviewID)
	if err != nil {
		return err
	}
	if err := s.reviews.Delete(ctx, rv.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return reviewNotFound(MsgReviewNotFound)
		}
		return fmt.Errorf("delete review: %w", err)
	}
	return nil
}
