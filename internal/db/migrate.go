package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// Execer runs a statement. *pgxpool.Pool and pgx.Tx satisfy it.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS media (
		id          BIGSERIAL PRIMARY KEY,
		user_id     BIGINT NOT NULL,
		title       VARCHAR(200) NOT NULL,
		kind        VARCHAR(20) NOT NULL,
		year        INTEGER NOT NULL,
		description VARCHAR(1000),
		status      VARCHAR(20) NOT NULL DEFAULT 'to_watch',
		rating      INTEGER,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS media_owner_entry_idx ON media (user_id, lower(title), year, kind)`,
	`CREATE INDEX IF NOT EXISTS media_kind_idx ON media (kind)`,
	`CREATE INDEX IF NOT EXISTS media_status_idx ON media (status)`,
	`CREATE INDEX IF NOT EXISTS media_created_at_idx ON media (created_at)`,
}

// Migrate applies the schema. Every statement is idempotent.
func Migrate(ctx context.Context, db Execer, logger *zap.Logger) error {
	for i, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement %d: %w", i+1, err)
		}
	}

	logger.Info("database schema up to date", zap.Int("statements", len(schema)))
	return nil
}
