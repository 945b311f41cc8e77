package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"pokemonreview/internal/model"
	"pokemonreview/internal/repository"
)

const reviewColumns = `id, title, content, stars, pokemon_id, created_at, updated_at`

// ReviewPostgres is a PostgreSQL implementation of repository.ReviewRepository.
type ReviewPostgres struct {
	db *sql.DB
}

// NewReviewPostgres creates a new ReviewPostgres repository.
func NewReviewPostgres(db *sql.DB) *ReviewPostgres {
	return &ReviewPostgres{db: db}
}

var _ repository.ReviewRepository = (*ReviewPostgres)(nil)

func scanReview(s rowScanner) (*model.Review, error) {
	var (
		rv        model.Review
		pokemonID sql.NullInt64
	)
	if err := s.Scan(&rv.ID, &rv.Title, &rv.Content, &rv.Stars, &pokemonID, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
		return nil, err
	}
	rv.PokemonID = int(pokemonID.Int64)
	return &rv, nil
}

// nullablePokemonID stores an unattached review with a NULL owner.
func nullablePokemonID(id int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(id), Valid: id > 0}
}

func (r *ReviewPostgres) queryReviews(ctx context.Context, q string, args ...any) ([]model.Review, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	items := make([]model.Review, 0)
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		items = append(items, *rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts a new review row and returns the stored record.
func (r *ReviewPostgres) Create(ctx context.Context, rv *model.Review) (*model.Review, error) {
	const q = `
		INSERT INTO review (title, content, stars, pokemon_id)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + reviewColumns
	return scanReview(r.db.QueryRowContext(ctx, q, rv.Title, rv.Content, rv.Stars, nullablePokemonID(rv.PokemonID)))
}

// FindByID fetches a single review by its ID.
func (r *ReviewPostgres) FindByID(ctx context.Context, id int) (*model.Review, error) {
	const q = `SELECT ` + reviewColumns + ` FROM review WHERE id = $1`
	return scanReview(r.db.QueryRowContext(ctx, q, id))
}

// FindAll returns every review.
func (r *ReviewPostgres) FindAll(ctx context.Context) ([]model.Review, error) {
	return r.queryReviews(ctx, `SELECT `+reviewColumns+` FROM review ORDER BY id`)
}

// FindByPokemonID returns the reviews of one pokemon.
func (r *ReviewPostgres) FindByPokemonID(ctx context.Context, pokemonID int) ([]model.Review, error) {
	return r.queryReviews(ctx, `SELECT `+reviewColumns+` FROM review WHERE pokemon_id = $1 ORDER BY id`, pokemonID)
}

// Update overwrites title, content and stars. A missing row yields sql.ErrNoRows.
func (r *ReviewPostgres) Update(ctx context.Context, rv *model.Review) (*model.Review, error) {
	const q = `
		UPDATE review
		SET title = $2, content = $3, stars = $4, updated_at = now()
		WHERE id = $1
		RETURNING ` + reviewColumns
	return scanReview(r.db.QueryRowContext(ctx, q, rv.ID, rv.Title, rv.Content, rv.Stars))
}

// Delete removes a review by ID. A missing row yields sql.ErrNoRows.
func (r *ReviewPostgres) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM review WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
