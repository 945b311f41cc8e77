package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"pokemonreview/internal/dto"
	"pokemonreview/internal/repository"
	"pokemonreview/internal/storage"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PokemonService defines the use cases for pokemon.
type PokemonService interface {
	Create(ctx context.Context, in dto.PokemonDto) (*dto.PokemonDto, error)

	// List returns page pageNo (zero based) of pageSize pokemon.
	List(ctx context.Context, pageNo, pageSize int) (*dto.PokemonPage, error)

	Get(ctx context.Context, id int) (*dto.PokemonDto, error)

	// GetByType returns the first pokemon of the given type.
	GetByType(ctx context.Context, pokemonType string) (*dto.PokemonDto, error)

	// Update overwrites name and type.
	Update(ctx context.Context, id int, in dto.PokemonDto) (*dto.PokemonDto, error)

	// Delete removes the pokemon, its reviews and its sprite.
	Delete(ctx context.Context, id int) error
}

type pokemonService struct {
	repo  repository.PokemonRepository
	store storage.Storage
	log   logrus.FieldLogger
}

// NewPokemonService constructs a PokemonService. store may be nil when sprites are disabled.
func NewPokemonService(repo repository.PokemonRepository, store storage.Storage, log logrus.FieldLogger) PokemonService {
	return &pokemonService{repo: repo, store: store, log: log.WithField("component", "pokemon_service")}
}

func (s *pokemonService) Create(ctx context.Context, in dto.PokemonDto) (out *dto.PokemonDto, err error) {
	ctx, span := tracer.Start(ctx, "PokemonService.Create")
	defer func() { endSpan(span, err) }()

	saved, err := s.repo.Create(ctx, dto.ToPokemonModel(in))
	if err != nil {
		return nil, fmt.Errorf("create pokemon: %w", err)
	}
	d := dto.ToPokemonDto(*saved)
	return &d, nil
}

func (s *pokemonService) List(ctx context.Context, pageNo, pageSize int) (out *dto.PokemonPage, err error) {
	if pageNo < 0 {
		pageNo = 0
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	ctx, span := tracer.Start(ctx, "PokemonService.List", trace.WithAttributes(
		attribute.Int("page.no", pageNo),
		attribute.Int("page.size", pageSize),
	))
	defer func() { endSpan(span, err) }()

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: pageSize, Offset: pageNo * pageSize})
	if err != nil {
		return nil, fmt.Errorf("list pokemon: %w", err)
	}
	return dto.NewPokemonPage(dto.ToPokemonDtos(res.Items), res.Total, pageNo, pageSize), nil
}

func (s *pokemonService) Get(ctx context.Context, id int) (out *dto.PokemonDto, err error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	ctx, span := tracer.Start(ctx, "PokemonService.Get", trace.WithAttributes(attribute.Int("pokemon.id", id)))
	defer func() { endSpan(span, err) }()

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, pokemonNotFound(MsgPokemonNotFound)
		}
		return nil, fmt.Errorf("find pokemon: %w", err)
	}
	d := dto.ToPokemonDto(*p)
	return &d, nil
}

func (s *pokemonService) GetByType(ctx context.Context, pokemonType string) (out *dto.PokemonDto, err error) {
	ctx, span := tracer.Start(ctx, "PokemonService.GetByType", trace.WithAttributes(attribute.String("pokemon.type", pokemonType)))
	defer func() { endSpan(span, err) }()

	p, err := s.repo.FindByType(ctx, pokemonType)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, pokemonNotFound(MsgPokemonNotFound)
		}
		return nil, fmt.Errorf("find pokemon by type: %w", err)
	}
	d := dto.ToPokemonDto(*p)
	return &d, nil
}

func (s *pokemonService) Update(ctx context.Context, id int, in dto.PokemonDto) (out *dto.PokemonDto, err error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	ctx, span := tracer.Start(ctx, "PokemonService.Update", trace.WithAttributes(attribute.Int("pokemon.id", id)))
	defer func() { endSpan(span, err) }()

	p := dto.ToPokemonModel(in)
	p.ID = id
	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, pokemonNotFound(MsgPokemonNotUpdated)
		}
		return nil, fmt.Errorf("update pokemon: %w", err)
	}
	d := dto.ToPokemonDto(*updated)
	return &d, nil
}

func (s *pokemonService) Delete(ctx context.Context, id int) (err error) {
	if id <= 0 {
		return ErrInvalidID
	}
	ctx, span := tracer.Start(ctx, "PokemonService.Delete", trace.WithAttributes(attribute.Int("pokemon.id", id)))
	defer func() { endSpan(span, err) }()

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pokemonNotFound(MsgPokemonNotDeleted)
		}
		return fmt.Errorf("find pokemon: %w", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pokemonNotFound(MsgPokemonNotDeleted)
		}
		return fmt.Errorf("delete pokemon: %w", err)
	}

	// Sprite removal is best effort once the row is gone.
	if s.store != nil && p.SpritePath != "" {
		if err := s.store.Delete(ctx, p.SpritePath); err != nil {
			s.log.WithError(err).WithFields(logrus.Fields{
				"pokemon_id": id,
				"key":        p.SpritePath,
			}).Warn("failed to remove sprite of deleted pokemon")
		}
	}
	return nil
}
