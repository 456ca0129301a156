package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE EXTENSION IF NOT EXISTS pgcrypto;

DO $$
BEGIN
	IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'weight_unit') THEN
		CREATE TYPE weight_unit AS ENUM ('kg', 'lbs');
	END IF;
END
$$;

CREATE TABLE IF NOT EXISTS app_user (
	id            TEXT PRIMARY KEY,
	username      TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS exercise (
	id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name       TEXT NOT NULL,
	user_id    TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS ix_exercise_user_id ON exercise (user_id);

CREATE TABLE IF NOT EXISTS workout (
	id           UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	user_id      TEXT NOT NULL,
	name         TEXT NOT NULL,
	date         TIMESTAMPTZ NOT NULL,
	started_at   TIMESTAMPTZ,
	completed_at TIMESTAMPTZ,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS ix_workout_user_id_date ON workout (user_id, date);

CREATE TABLE IF NOT EXISTS workout_exercise (
	id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	workout_id  UUID NOT NULL REFERENCES workout (id) ON DELETE CASCADE,
	exercise_id UUID NOT NULL REFERENCES exercise (id),
	"order"     INTEGER NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS ix_workout_exercise_workout_id ON workout_exercise (workout_id);

CREATE TABLE IF NOT EXISTS workout_set (
	id                  UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	workout_exercise_id UUID NOT NULL REFERENCES workout_exercise (id) ON DELETE CASCADE,
	set_number          INTEGER NOT NULL CHECK (set_number > 0),
	reps                INTEGER CHECK (reps > 0),
	weight              NUMERIC CHECK (weight > 0),
	weight_unit         weight_unit,
	created_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
	CONSTRAINT uq_workout_set_number UNIQUE (workout_exercise_id, set_number) DEFERRABLE INITIALLY DEFERRED
);
`

// Migrate creates the schema if it does not exist yet. Safe to run on every start.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
