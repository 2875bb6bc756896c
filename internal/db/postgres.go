package db

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the subset of pgxpool.Pool the repositories use. Keeping it
// narrow lets tests substitute a fake without a running database.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	return pool, nil
}

// RunMigrations executes the bundled schema file against the pool.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	migrationPath := filepath.Join("internal", "db", "migrations.sql")
	migrations, err := os.ReadFile(migrationPath)
	if err != nil {
		return fmt.Errorf("failed to read migrations file: %w", err)
	}

	if _, err := pool.Exec(ctx, string(migrations)); err != nil {
		return fmt.Errorf("failed to execute migrations: %w", err)
	}
	return nil
}
