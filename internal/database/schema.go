package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Table DDL is idempotent so a restart (or two racing instances pointed at
// the same database) can run it redundantly. Executed once at startup,
// before the server accepts traffic.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS contact_messages (
		id           TEXT PRIMARY KEY,
		name         TEXT NOT NULL,
		email        TEXT NOT NULL,
		phone        TEXT,
		company      TEXT,
		inquiry_type TEXT NOT NULL,
		message      TEXT NOT NULL,
		status       TEXT NOT NULL DEFAULT 'new'
		             CHECK (status IN ('new', 'read', 'replied', 'archived')),
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_contact_messages_created_at
		ON contact_messages (created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS meeting_requests (
		id             TEXT PRIMARY KEY,
		name           TEXT NOT NULL,
		email          TEXT NOT NULL,
		phone          TEXT NOT NULL,
		company        TEXT,
		product_id     TEXT NOT NULL,
		product_name   TEXT NOT NULL,
		preferred_date TEXT NOT NULL,
		preferred_time TEXT NOT NULL,
		message        TEXT,
		status         TEXT NOT NULL DEFAULT 'pending'
		               CHECK (status IN ('pending', 'confirmed', 'completed', 'cancelled')),
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_meeting_requests_created_at
		ON meeting_requests (created_at DESC)`,
}

func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
