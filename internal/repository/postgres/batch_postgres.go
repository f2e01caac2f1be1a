// Package postgres implements the repository interfaces on PostgreSQL through database/sql.
package postgres

import (
	"context"
	"database/sql"
	"errors"

	"psdgrader/internal/model"
	"psdgrader/internal/repository"
)

const batchColumns = `id, total_files, average_score, passed_count, failed_count, report_path, created_at`

// BatchPostgres implements repository.BatchRepository with parameterized queries.
type BatchPostgres struct {
	db *sql.DB
}

// NewBatchPostgres creates a BatchPostgres on db.
func NewBatchPostgres(db *sql.DB) *BatchPostgres {
	return &BatchPostgres{db: db}
}

var _ repository.BatchRepository = (*BatchPostgres)(nil)

type scanner interface {
	Scan(dest ...any) error
}

func scanBatch(s scanner) (*model.Batch, error) {
	var b model.Batch
	if err := s.Scan(&b.ID, &b.TotalFiles, &b.AverageScore, &b.PassedCount, &b.FailedCount, &b.ReportPath, &b.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// Create inserts a batch row and returns the stored record.
func (r *BatchPostgres) Create(ctx context.Context, b *model.Batch) (*model.Batch, error) {
	const q = `
		INSERT INTO grading_batches (` + batchColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + batchColumns
	return scanBatch(r.db.QueryRowContext(ctx, q,
		b.ID, b.TotalFiles, b.AverageScore, b.PassedCount, b.FailedCount, b.ReportPath, b.CreatedAt))
}

// FindByID fetches a single batch.
func (r *BatchPostgres) FindByID(ctx context.Context, id string) (*model.Batch, error) {
	const q = `SELECT ` + batchColumns + ` FROM grading_batches WHERE id = $1`
	return scanBatch(r.db.QueryRowContext(ctx, q, id))
}

// List returns batches newest first with LIMIT/OFFSET pagination and a total count.
func (r *BatchPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Batch], error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM grading_batches`).Scan(&total); err != nil {
		return nil, err
	}

	const q = `
		SELECT ` + batchColumns + `
		FROM grading_batches
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, q, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Batch, 0)
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &repository.PageResult[model.Batch]{Items: items, Total: total}, nil
}

// Delete removes a batch row.
func (r *BatchPostgres) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM grading_batches WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
