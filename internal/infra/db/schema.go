package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the tables on startup when they are missing.
// Timestamps are stored as timestamptz so they serialize to RFC 3339.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            uuid PRIMARY KEY,
		email         text NOT NULL UNIQUE,
		password_hash text NOT NULL,
		role          text NOT NULL,
		is_active     boolean NOT NULL DEFAULT true,
		created_at    timestamptz NOT NULL DEFAULT now(),
		updated_at    timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS rooms (
		id          uuid PRIMARY KEY,
		name        text NOT NULL,
		location    text NOT NULL,
		capacity    integer NOT NULL CHECK (capacity > 0),
		description text NOT NULL DEFAULT '',
		image       text NOT NULL DEFAULT '',
		amenities   jsonb NOT NULL DEFAULT '[]',
		created_at  timestamptz NOT NULL DEFAULT now(),
		updated_at  timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS reservations (
		id         uuid PRIMARY KEY,
		room_id    uuid NOT NULL REFERENCES rooms (id),
		user_id    uuid NOT NULL,
		start_at   timestamptz NOT NULL,
		end_at     timestamptz NOT NULL,
		created_at timestamptz NOT NULL DEFAULT now(),
		CHECK (start_at < end_at)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_reservations_room ON reservations (room_id, start_at)`,
	`CREATE INDEX IF NOT EXISTS idx_reservations_user ON reservations (user_id, created_at)`,
}

func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
