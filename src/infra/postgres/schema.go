package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS properties (
	seq          BIGSERIAL,
	id           TEXT PRIMARY KEY,
	title        TEXT NOT NULL,
	description  TEXT NOT NULL DEFAULT '',
	price        DOUBLE PRECISION NOT NULL,
	type         TEXT NOT NULL DEFAULT '',
	status       TEXT NOT NULL,
	bedrooms     INTEGER NOT NULL DEFAULT 0,
	bathrooms    DOUBLE PRECISION NOT NULL DEFAULT 0,
	garage       INTEGER NOT NULL DEFAULT 0,
	size         INTEGER NOT NULL DEFAULT 0,
	year_built   INTEGER NOT NULL DEFAULT 0,
	address      TEXT NOT NULL DEFAULT '',
	location     JSONB NOT NULL DEFAULT '{}',
	features     TEXT[] NOT NULL DEFAULT '{}',
	images       TEXT[] NOT NULL DEFAULT '{}',
	video_url    TEXT,
	highlighted  BOOLEAN NOT NULL DEFAULT FALSE,
	agent        JSONB NOT NULL DEFAULT '{}',
	created_at   TIMESTAMPTZ NOT NULL,
	updated_at   TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS users (
	seq        BIGSERIAL,
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL UNIQUE,
	password   TEXT NOT NULL,
	role       TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS messages (
	seq         BIGSERIAL,
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	email       TEXT NOT NULL,
	phone       TEXT,
	subject     TEXT NOT NULL,
	message     TEXT NOT NULL,
	property_id TEXT,
	read        BOOLEAN NOT NULL DEFAULT FALSE,
	created_at  TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_properties_status ON properties (status);
CREATE INDEX IF NOT EXISTS idx_messages_created_at ON messages (created_at DESC, seq DESC);
`

// Migrate cria as tabelas se ainda não existirem. messages.property_id não tem FK de propósito:
// a mensagem sobrevive à remoção do imóvel.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
