// Command migrate applies pending profile store migrations. The SQL files are
// embedded in the binary; applied files are recorded in the migrations table.
// Usage: go run ./cmd/migrate
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"github.com/nutriplan/backend/internal/infrastructure/postgres"
	"github.com/nutriplan/backend/internal/logger"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error loading .env: %v\n", err)
		os.Exit(1)
	}

	databaseURL := os.Getenv("NUTRIPLAN_DATABASE_URL")
	if databaseURL == "" {
		fmt.Fprintln(os.Stderr, "NUTRIPLAN_DATABASE_URL is not set")
		os.Exit(1)
	}

	zl, err := logger.New("development", os.Getenv("NUTRIPLAN_LOG_LEVEL"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync(zl)

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, databaseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	ran, err := postgres.Migrate(ctx, conn, zl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Migration failed after %d file(s): %v\n", ran, err)
		os.Exit(1)
	}

	if ran == 0 {
		fmt.Println("Already up to date.")
	} else {
		fmt.Printf("Applied %d migration(s).\n", ran)
	}
}
