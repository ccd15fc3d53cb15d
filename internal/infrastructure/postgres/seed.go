package postgres

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// Seed executes a SQL seed file against the pool. The file is expected
// to be idempotent (ON CONFLICT DO NOTHING), so re-running it on boot
// is safe.
func Seed(ctx context.Context, pool *pgxpool.Pool, seedFile string) error {
	if seedFile == "" {
		return nil
	}

	sql, err := os.ReadFile(seedFile)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("failed to apply seed file: %w", err)
	}

	log.Info().Str("file", seedFile).Msg("seed data applied")
	return nil
}
