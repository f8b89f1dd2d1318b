// Package migrations embeds the SQL schema and applies it in file name order.
package migrations

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed *.up.sql
var files embed.FS

const createVersionTable = `CREATE TABLE IF NOT EXISTS schema_migrations
(
    name       TEXT PRIMARY KEY,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// Names lists the embedded migrations in the order they are applied.
func Names() ([]string, error) {
	names, err := fs.Glob(files, "*.up.sql")
	if err != nil {
		return nil, fmt.Errorf("fs.Glob: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

// Apply runs every migration not yet recorded in schema_migrations, each in
// its own transaction. It returns the names it applied.
func Apply(ctx context.Context, pool *pgxpool.Pool) (_ []string, err error) {
	if _, err := pool.Exec(ctx, createVersionTable); err != nil {
		return nil, fmt.Errorf("pool.Exec: %w", err)
	}

	names, err := Names()
	if err != nil {
		return nil, err
	}

	var applied []string
	for _, name := range names {
		ok, err := applyOne(ctx, pool, name)
		if err != nil {
			return applied, fmt.Errorf("migration %s: %w", name, err)
		}
		if ok {
			applied = append(applied, strings.TrimSuffix(name, ".up.sql"))
		}
	}

	return applied, nil
}

func applyOne(ctx context.Context, pool *pgxpool.Pool, name string) (_ bool, txErr error) {
	script, err := files.ReadFile(name)
	if err != nil {
		return false, fmt.Errorf("files.ReadFile: %w", err)
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("pool.Begin: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			txErr = errors.Join(txErr, fmt.Errorf("tx.Rollback: %w", rollbackErr))
		}
	}()

	// serializes concurrent migrators
	if _, err := tx.Exec(ctx, `LOCK TABLE schema_migrations IN EXCLUSIVE MODE`); err != nil {
		return false, fmt.Errorf("tx.Exec lock: %w", err)
	}

	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE name = $1)`, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("tx.QueryRow: %w", err)
	}
	if exists {
		return false, nil
	}

	if _, err := tx.Exec(ctx, string(script)); err != nil {
		return false, fmt.Errorf("tx.Exec: %w", err)
	}
	if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (name) VALUES ($1)`, name); err != nil {
		return false, fmt.Errorf("tx.Exec record: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("tx.Commit: %w", err)
	}
	return true, nil
}
