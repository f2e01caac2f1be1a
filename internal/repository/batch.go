// Package repository holds persistence interfaces for archived batch metadata.
// Implementations live in subpackages and contain no grading logic.
package repository

import (
	"context"
	"errors"

	"psdgrader/internal/model"
)

// ErrNotFound is returned when no batch has the requested ID.
var ErrNotFound = errors.New("batch not found")

// BatchRepository stores the summary row of each archived batch.
type BatchRepository interface {
	// Create inserts b and returns the stored row.
	Create(ctx context.Context, b *model.Batch) (*model.Batch, error)

	// FindByID returns ErrNotFound when no row matches.
	FindByID(ctx context.Context, id string) (*model.Batch, error)

	// List returns one page of batches, newest first, and the total row count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Batch], error)

	// Delete returns ErrNotFound when no row matches.
	Delete(ctx context.Context, id string) error
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is one page of T plus the total across all pages.
type PageResult[T any] struct {
	Items []T
	Total int
}
