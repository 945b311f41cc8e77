// Package repository defines data access for pokemon and reviews.
// Implementations live in subpackages (postgres, cached); a missing row is
// always reported as sql.ErrNoRows.
package repository

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
