package pg

import (
	"context"
)

const createCalculationsTable = `
CREATE TABLE IF NOT EXISTS calculations (
	id           SERIAL PRIMARY KEY,
	session_id   VARCHAR(128) NOT NULL,
	left_operand  DOUBLE PRECISION NOT NULL,
	right_operand DOUBLE PRECISION NOT NULL,
	operator     VARCHAR(10) NOT NULL,
	result       DOUBLE PRECISION NOT NULL,
	display      TEXT NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS calculations_session_idx ON calculations (session_id, created_at);
`

// Migrate создаёт таблицу calculations и индекс по сессии, если их ещё нет.
func Migrate(ctx context.Context, db *DB) error {
	_, err := db.ExecContext(ctx, createCalculationsTable)
	return err
}
