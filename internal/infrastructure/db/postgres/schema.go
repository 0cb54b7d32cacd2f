package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaStatements holds the DDL for every table the service owns. Each
// statement is idempotent (IF NOT EXISTS), so concurrent starters cannot
// trip over each other.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		email         TEXT PRIMARY KEY,
		full_name     TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS inventory_items (
		item_id    BIGSERIAL PRIMARY KEY,
		name       TEXT NOT NULL,
		sku        TEXT NOT NULL UNIQUE,
		quantity   INTEGER NOT NULL DEFAULT 0,
		price      NUMERIC(12,2) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS inventory_items_created_at_idx
		ON inventory_items (created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS orders (
		order_id      BIGSERIAL PRIMARY KEY,
		customer_name TEXT NOT NULL,
		order_date    TIMESTAMPTZ,
		total_amount  NUMERIC(12,2) NOT NULL DEFAULT 0,
		status        TEXT NOT NULL DEFAULT 'pending'
	)`,
	`CREATE INDEX IF NOT EXISTS orders_order_date_idx
		ON orders (order_date DESC)`,
}

// ApplySchema creates the tables and indexes the service needs. It runs once
// at process start, before the HTTP server accepts requests, so request
// handlers never have to probe for table existence.
func ApplySchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
