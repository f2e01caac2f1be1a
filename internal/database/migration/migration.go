// Package migration applies the batch archive schema. Each step runs once, in its own
// transaction, and is recorded in schema_migrations.
package migration

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

type step struct {
	Name string
	SQL  string
}

const bootstrapSQL = `CREATE TABLE IF NOT EXISTS schema_migrations (
  name       TEXT        PRIMARY KEY,
  applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`

var steps = []step{
	{
		Name: "create_table_grading_batches",
		SQL: `CREATE TABLE IF NOT EXISTS grading_batches (
  id            UUID             PRIMARY KEY,
  total_files   INTEGER          NOT NULL CHECK (total_files >= 0),
  average_score DOUBLE PRECISION NOT NULL,
  passed_count  INTEGER          NOT NULL CHECK (passed_count >= 0),
  failed_count  INTEGER          NOT NULL CHECK (failed_count >= 0),
  report_path   TEXT             NOT NULL UNIQUE,
  created_at    TIMESTAMPTZ      NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_grading_batches_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_grading_batches_created_at ON grading_batches (created_at DESC);`,
	},
}

// EnsureMigrated applies every step not yet recorded in schema_migrations.
func EnsureMigrated(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	start := time.Now()
	log := logger.With("component", "database")

	if _, err := db.ExecContext(ctx, bootstrapSQL); err != nil {
		log.Error("db_migration_failed", "migration_step", "bootstrap", "error", err)
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	applied := 0
	for _, s := range steps {
		done, err := isApplied(ctx, db, s.Name)
		if err != nil {
			log.Error("db_migration_failed", "migration_step", s.Name, "error", err)
			return fmt.Errorf("check migration %s: %w", s.Name, err)
		}
		if done {
			continue
		}

		stepStart := time.Now()
		if err := apply(ctx, db, s); err != nil {
			log.Error("db_migration_failed", "migration_step", s.Name, "error", err,
				"step_duration_ms", time.Since(stepStart).Milliseconds())
			return fmt.Errorf("migration step %s failed: %w", s.Name, err)
		}
		applied++
		log.Info("db_migration_step", "migration_step", s.Name,
			"step_duration_ms", time.Since(stepStart).Milliseconds())
	}

	log.Info("db_migration_done", "applied", applied, "duration_ms", time.Since(start).Milliseconds())
	return nil
}

func isApplied(ctx context.Context, db *sql.DB, name string) (bool, error) {
	var exists bool
	err := db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE name = $1)`, name).Scan(&exists)
	return exists, err
}

func apply(ctx context.Context, db *sql.DB, s step) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, s.SQL); err != nil {
		_ = tx.Rollback()
		return err
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (name) VALUES ($1)`, s.Name); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
