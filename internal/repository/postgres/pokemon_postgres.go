package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"pokemonreview/internal/model"
	"pokemonreview/internal/repository"
)

const pokemonColumns = `id, name, type, sprite_path, created_at, updated_at`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// PokemonPostgres is a PostgreSQL implementation of repository.PokemonRepository.
type PokemonPostgres struct {
	db *sql.DB
}

// NewPokemonPostgres creates a new PokemonPostgres repository.
func NewPokemonPostgres(db *sql.DB) *PokemonPostgres {
	return &PokemonPostgres{db: db}
}

var _ repository.PokemonRepository = (*PokemonPostgres)(nil)

func scanPokemon(s rowScanner) (*model.Pokemon, error) {
	var (
		p      model.Pokemon
		sprite sql.NullString
	)
	if err := s.Scan(&p.ID, &p.Name, &p.Type, &sprite, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.SpritePath = sprite.String
	return &p, nil
}

// Create inserts a new pokemon row and returns the stored record.
func (r *PokemonPostgres) Create(ctx context.Context, p *model.Pokemon) (*model.Pokemon, error) {
	const q = `
		INSERT INTO pokemon (name, type)
		VALUES ($1, $2)
		RETURNING ` + pokemonColumns
	return scanPokemon(r.db.QueryRowContext(ctx, q, p.Name, p.Type))
}

// FindByID fetches a single pokemon by its ID.
func (r *PokemonPostgres) FindByID(ctx context.Context, id int) (*model.Pokemon, error) {
	const q = `SELECT ` + pokemonColumns + ` FROM pokemon WHERE id = $1`
	return scanPokemon(r.db.QueryRowContext(ctx, q, id))
}

// FindByType fetches the first pokemon of a type.
func (r *PokemonPostgres) FindByType(ctx context.Context, pokemonType string) (*model.Pokemon, error) {
	const q = `SELECT ` + pokemonColumns + ` FROM pokemon WHERE type = $1 ORDER BY id LIMIT 1`
	return scanPokemon(r.db.QueryRowContext(ctx, q, pokemonType))
}

// List returns pokemon using LIMIT/OFFSET pagination and a total count.
func (r *PokemonPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Pokemon], error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pokemon`).Scan(&total); err != nil {
		return nil, fmt.Errorf("count pokemon: %w", err)
	}

	const qList = `SELECT ` + pokemonColumns + ` FROM pokemon ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, fmt.Errorf("list pokemon: %w", err)
	}
	defer rows.Close()

	items := make([]model.Pokemon, 0)
	for rows.Next() {
		p, err := scanPokemon(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pokemon: %w", err)
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Pokemon]{Items: items, Total: total}, nil
}

// Update overwrites name and type. A missing row yields sql.ErrNoRows.
func (r *PokemonPostgres) Update(ctx context.Context, p *model.Pokemon) (*model.Pokemon, error) {
	const q = `
		UPDATE pokemon
		SET name = $2, type = $3, updated_at = now()
		WHERE id = $1
		RETURNING ` + pokemonColumns
	return scanPokemon(r.db.QueryRowContext(ctx, q, p.ID, p.Name, p.Type))
}

// UpdateSprite stores the sprite key. A missing row yields sql.ErrNoRows.
func (r *PokemonPostgres) UpdateSprite(ctx context.Context, id int, spritePath string) error {
	const q = `UPDATE pokemon SET sprite_path = $2, updated_at = now() WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id, spritePath)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// Delete removes a pokemon by ID. A missing row yields sql.ErrNoRows.
func (r *PokemonPostgres) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pokemon WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
