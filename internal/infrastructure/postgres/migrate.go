package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate crea el esquema si no existe. Idempotente: todas las sentencias
// usan IF NOT EXISTS, por lo que es seguro ejecutarlo en cada arranque.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migración: %w\nsentencia: %s", err, stmt)
		}
	}
	return nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		nif CHAR(9) NOT NULL UNIQUE,
		address TEXT NOT NULL,
		email TEXT UNIQUE,
		phone TEXT NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS providers (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		cif CHAR(9) NOT NULL UNIQUE,
		address TEXT NOT NULL,
		email TEXT UNIQUE,
		phone TEXT NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS furnitures (
		id UUID PRIMARY KEY,
		type TEXT NOT NULL,
		name TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL,
		color TEXT NOT NULL,
		dimensions TEXT NOT NULL,
		price NUMERIC(12,2) NOT NULL CHECK (price >= 0),
		stock BIGINT NOT NULL CHECK (stock >= 0),
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS transactions (
		id UUID PRIMARY KEY,
		entity_kind TEXT NOT NULL CHECK (entity_kind IN ('Customer', 'Provider')),
		entity_id UUID NOT NULL,
		entity_tax_id CHAR(9) NOT NULL,
		type TEXT NOT NULL CHECK (type IN
			('Purchase Order', 'Sell Order', 'Refund from client', 'Refund to provider')),
		observations TEXT NOT NULL DEFAULT '',
		total_amount NUMERIC(14,2) NOT NULL CHECK (total_amount >= 0),
		date_time TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS transaction_lines (
		transaction_id UUID NOT NULL REFERENCES transactions(id) ON DELETE CASCADE,
		position INT NOT NULL,
		furniture_id UUID NOT NULL,
		furniture_name TEXT NOT NULL,
		quantity BIGINT NOT NULL CHECK (quantity >= 1),
		unit_price NUMERIC(12,2) NOT NULL,
		PRIMARY KEY (transaction_id, position)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_transactions_date_time ON transactions (date_time)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_entity_tax_id ON transactions (entity_tax_id)`,

	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		name TEXT NOT NULL,
		role TEXT NOT NULL,
		status TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
}
