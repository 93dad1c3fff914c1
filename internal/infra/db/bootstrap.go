package db

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

// Bootstrap applies the idempotent schema (CREATE TABLE IF NOT EXISTS plus the
// promotion seed rows). It runs once at process startup; there is no versioned
// migration history for this service.
func Bootstrap(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to bootstrap schema: %w", err)
	}
	return nil
}
