package database

import (
	"context"
	"database/sql"
	"fmt"

	"cardhub/internal/config"
	"cardhub/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
)

// Migrate brings the schema up to date using the embedded goose
// migrations. Runs over database/sql because goose requires it; the
// pgx pool is untouched.
func Migrate(ctx context.Context, cfg config.DatabaseConfig, log zerolog.Logger) error {
	db, err := sql.Open("pgx", DSN(cfg))
	if err != nil {
		return fmt.Errorf("failed to open migration connection: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("database unreachable before migrations: %w", err)
	}

	goose.SetBaseFS(migrations.FS)
	goose.SetTableName("schema_migrations")
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	log.Info().Int64("version", version).Msg("schema migrations applied")
	return nil
}
