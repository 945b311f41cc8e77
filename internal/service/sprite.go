package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"pokemonreview/internal/repository"
	"pokemonreview/internal/storage"
)

// SpriteInfo describes an uploaded pokemon sprite.
type SpriteInfo struct {
	Key         string `json:"key"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType"`
}

// SpriteService manages the optional image attached to a pokemon.
type SpriteService interface {
	// Upload stores the image and points the pokemon at it, replacing any previous sprite.
	Upload(ctx context.Context, pokemonID int, r io.Reader, filename, contentType string, size int64) (*SpriteInfo, error)

	// URL returns a time-limited download URL for the pokemon's sprite.
	URL(ctx context.Context, pokemonID int) (string, error)
}

type spriteService struct {
	store    storage.Storage
	pokemons repository.PokemonRepository
	expiry   time.Duration
	log      logrus.FieldLogger
}

// NewSpriteService constructs a SpriteService issuing URLs valid for expiry.
func NewSpriteService(store storage.Storage, pokemons repository.PokemonRepository, expiry time.Duration, log logrus.FieldLogger) SpriteService {
	return &spriteService{
		store:    store,
		pokemons: pokemons,
		expiry:   expiry,
		log:      log.WithField("component", "sprite_service"),
	}
}

// spriteKey builds pokemon/<id>/<uuid><ext>.
func spriteKey(pokemonID int, filename string) string {
	return path.Join("pokemon", strconv.Itoa(pokemonID), uuid.NewString()+strings.ToLower(filepath.Ext(filename)))
}

func (s *spriteService) Upload(ctx context.Context, pokemonID int, r io.Reader, filename, contentType string, size int64) (*SpriteInfo, error) {
	if pokemonID <= 0 {
		return nil, ErrInvalidID
	}
	if r == nil {
		return nil, ErrReaderNil
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrUnsupportedType
	}

	p, err := s.pokemons.FindByID(ctx, pokemonID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, pokemonNotFound(MsgPokemonNotFound)
		}
		return nil, fmt.Errorf("find pokemon: %w", err)
	}

	key := spriteKey(pokemonID, filename)
	obj, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": filename,
			"pokemon-id":        strconv.Itoa(pokemonID),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	if err := s.pokemons.UpdateSprite(ctx, pokemonID, obj.Key); err != nil {
		if delErr := s.store.Delete(ctx, obj.Key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		if errors.Is(err, sql.ErrNoRows) {
			return nil, pokemonNotFound(MsgPokemonNotFound)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}

	if p.SpritePath != "" && p.SpritePath != obj.Key {
		if err := s.store.Delete(ctx, p.SpritePath); err != nil {
			s.log.WithError(err).WithFields(logrus.Fields{
				"pokemon_id": pokemonID,
				"key":        p.SpritePath,
			}).Warn("failed to remove replaced sprite")
		}
	}

	return &SpriteInfo{Key: obj.Key, Size: obj.Size, ContentType: obj.ContentType}, nil
}

func (s *spriteService) URL(ctx context.Context, pokemonID int) (string, error) {
	if pokemonID <= 0 {
		return "", ErrInvalidID
	}
	p, err := s.pokemons.FindByID(ctx, pokemonID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", pokemonNotFound(MsgPokemonNotFound)
		}
		return "", fmt.Errorf("find pokemon: %w", err)
	}
	if p.SpritePath == "" {
		return "", ErrSpriteNotFound
	}
	u, err := s.store.PresignGet(ctx, p.SpritePath, s.expiry)
	if err != nil {
		return "", fmt.Errorf("presign sprite: %w", err)
	}
	return u, nil
}
