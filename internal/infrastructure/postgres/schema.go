package postgres

import (
	"context"
	"fmt"
)

// schema crea las tablas si no existen. Los IDs son UUID en texto para compartir formato con Mongo.
const schema = `
CREATE TABLE IF NOT EXISTS warehouses (
	id              TEXT PRIMARY KEY,
	name            TEXT NOT NULL,
	code            TEXT NOT NULL UNIQUE,
	address_street  TEXT NOT NULL DEFAULT '',
	address_city    TEXT NOT NULL DEFAULT '',
	address_state   TEXT NOT NULL DEFAULT '',
	address_zip     TEXT NOT NULL DEFAULT '',
	address_country TEXT NOT NULL DEFAULT '',
	manager         TEXT NOT NULL DEFAULT '',
	phone           TEXT NOT NULL DEFAULT '',
	email           TEXT NOT NULL DEFAULT '',
	capacity        DOUBLE PRECISION NOT NULL DEFAULT 0,
	notes           TEXT NOT NULL DEFAULT '',
	status          TEXT NOT NULL DEFAULT 'active',
	user_id         TEXT NOT NULL DEFAULT '',
	created_at      TIMESTAMPTZ NOT NULL,
	updated_at      TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS suppliers (
	id              TEXT PRIMARY KEY,
	name            TEXT NOT NULL,
	contact_person  TEXT NOT NULL DEFAULT '',
	email           TEXT NOT NULL DEFAULT '',
	phone           TEXT NOT NULL DEFAULT '',
	address_street  TEXT NOT NULL DEFAULT '',
	address_city    TEXT NOT NULL DEFAULT '',
	address_state   TEXT NOT NULL DEFAULT '',
	address_zip     TEXT NOT NULL DEFAULT '',
	address_country TEXT NOT NULL DEFAULT '',
	tax_id          TEXT NOT NULL DEFAULT '',
	payment_terms   TEXT NOT NULL DEFAULT 'Net 30',
	notes           TEXT NOT NULL DEFAULT '',
	status          TEXT NOT NULL DEFAULT 'active',
	categories      TEXT[] NOT NULL DEFAULT '{}',
	lead_time       INTEGER NOT NULL DEFAULT 7,
	user_id         TEXT NOT NULL DEFAULT '',
	created_at      TIMESTAMPTZ NOT NULL,
	updated_at      TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS skus (
	id                  TEXT PRIMARY KEY,
	name                TEXT NOT NULL,
	sku                 TEXT NOT NULL UNIQUE,
	barcode             TEXT NOT NULL,
	description         TEXT NOT NULL DEFAULT '',
	category            TEXT NOT NULL,
	cost_price          NUMERIC(14,2) NOT NULL,
	selling_price       NUMERIC(14,2) NOT NULL,
	initial_stock       INTEGER NOT NULL DEFAULT 0,
	current_stock       INTEGER NOT NULL DEFAULT 0,
	min_stock_level     INTEGER NOT NULL DEFAULT 0,
	image_url           TEXT NOT NULL DEFAULT '',
	warehouse_id        TEXT NOT NULL REFERENCES warehouses(id),
	supplier_id         TEXT NOT NULL REFERENCES suppliers(id),
	alternate_suppliers TEXT[] NOT NULL DEFAULT '{}',
	tags                TEXT[] NOT NULL DEFAULT '{}',
	notes               TEXT NOT NULL DEFAULT '',
	is_active           BOOLEAN NOT NULL DEFAULT TRUE,
	location            TEXT NOT NULL DEFAULT '',
	user_id             TEXT NOT NULL DEFAULT '',
	version             BIGINT NOT NULL DEFAULT 1,
	created_at          TIMESTAMPTZ NOT NULL,
	updated_at          TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_skus_category ON skus (category);
CREATE INDEX IF NOT EXISTS idx_skus_warehouse ON skus (warehouse_id);
CREATE INDEX IF NOT EXISTS idx_skus_supplier ON skus (supplier_id);
CREATE INDEX IF NOT EXISTS idx_skus_created_at ON skus (created_at DESC);
`

// Migrate aplica el esquema. Es idempotente.
func Migrate(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
