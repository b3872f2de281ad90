package db

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// RunMigrations applies the schema at startup. Uniqueness of username and
// email and the metric range checks live here so that concurrent writers
// race against the constraint, not against an application-level pre-check.
func RunMigrations(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS users (
    id SERIAL PRIMARY KEY,
    username TEXT UNIQUE NOT NULL,
    email TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS sessions (
    id UUID PRIMARY KEY,
    user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    expires_at TIMESTAMPTZ NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS health_data (
    id SERIAL PRIMARY KEY,
    user_id INTEGER NOT NULL REFERENCES users(id),
    local_date DATE NOT NULL,
    exercise_minutes INTEGER NOT NULL CHECK (exercise_minutes >= 0),
    meditation_minutes INTEGER NOT NULL CHECK (meditation_minutes >= 0),
    sleep_hours INTEGER NOT NULL CHECK (sleep_hours BETWEEN 0 AND 24),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_health_data_user_id ON health_data(user_id);
`
	_, err := db.ExecContext(context.Background(), schema)
	return err
}
