package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// MigrationFiles returns the embedded migration names in apply order
func MigrationFiles() ([]string, error) {
	names, err := fs.Glob(migrationFS, "migrations/*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// Migrate applies pending migrations. Each file and its bookkeeping row are
// committed in one transaction. Returns the number of files applied.
func Migrate(ctx context.Context, conn *pgx.Conn, logger *zap.Logger) (int, error) {
	if _, err := conn.Exec(ctx, `CREATE TABLE IF NOT EXISTS migrations (
		migration TEXT PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`); err != nil {
		return 0, fmt.Errorf("create migrations table: %w", err)
	}

	rows, err := conn.Query(ctx, "SELECT migration FROM migrations")
	if err != nil {
		return 0, fmt.Errorf("list applied migrations: %w", err)
	}
	appliedNames, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return 0, fmt.Errorf("scan applied migrations: %w", err)
	}
	applied := make(map[string]bool, len(appliedNames))
	for _, name := range appliedNames {
		applied[name] = true
	}

	files, err := MigrationFiles()
	if err != nil {
		return 0, err
	}

	ran := 0
	for _, file := range files {
		if applied[file] {
			logger.Debug("skip migration", zap.String("file", file))
			continue
		}
		sql, err := migrationFS.ReadFile(file)
		if err != nil {
			return ran, err
		}

		err = pgx.BeginFunc(ctx, conn, func(tx pgx.Tx) error {
			if _, err := tx.Exec(ctx, string(sql)); err != nil {
				return err
			}
			_, err := tx.Exec(ctx, "INSERT INTO migrations (migration) VALUES ($1)", file)
			return err
		})
		if err != nil {
			return ran, fmt.Errorf("apply %s: %w", file, err)
		}
		logger.Info("applied migration", zap.String("file", file))
		ran++
	}
	return ran, nil
}
