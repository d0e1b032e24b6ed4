package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema crea las tablas si no existen. Lo invoca cmd/seed; la API
// asume el esquema ya presente.
//
// inventory_transactions es append-only: ninguna ruta del código ejecuta
// UPDATE ni DELETE sobre ella, y el id serial preserva el orden cronológico
// de inserción.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS departments (
			id   BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id         BIGSERIAL PRIMARY KEY,
			name       TEXT NOT NULL,
			cost_price NUMERIC(12,2) NOT NULL CHECK (cost_price >= 0)
		)`,
		`CREATE TABLE IF NOT EXISTS inventory_transactions (
			id               BIGSERIAL PRIMARY KEY,
			product_id       BIGINT NOT NULL REFERENCES products (id),
			department_id    BIGINT NOT NULL REFERENCES departments (id),
			quantity_change  BIGINT NOT NULL,
			transaction_type TEXT NOT NULL CHECK (transaction_type IN ('import', 'sale')),
			selling_price    NUMERIC(12,2) NOT NULL DEFAULT 0,
			timestamp        TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_inventory_transactions_pair
			ON inventory_transactions (product_id, department_id)`,
		`CREATE TABLE IF NOT EXISTS users (
			id            BIGSERIAL PRIMARY KEY,
			username      TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			role          TEXT NOT NULL,
			department_id BIGINT NULL REFERENCES departments (id),
			full_name     TEXT NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL,
			last_login    TIMESTAMPTZ NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
