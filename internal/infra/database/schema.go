package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ToolRent/GoToolRent/internal/domain/entity"
)

// Postgres DDL, idempotent. products -> categories is RESTRICT on
// delete: removing a category that still has products must fail at the
// store. The quantity check backs the never-negative stock invariant.
const postgresSchema = `
CREATE TABLE IF NOT EXISTS categories (
  id          BIGSERIAL PRIMARY KEY,
  name        TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  image_url   TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS products (
  id          BIGSERIAL PRIMARY KEY,
  name        TEXT NOT NULL,
  brand       TEXT NOT NULL DEFAULT '',
  model       TEXT NOT NULL DEFAULT '',
  description TEXT NOT NULL DEFAULT '',
  status      TEXT NOT NULL DEFAULT '',
  quantity    INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
  category_id BIGINT NOT NULL REFERENCES categories(id) ON DELETE RESTRICT,
  attributes  TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id);
CREATE INDEX IF NOT EXISTS idx_products_status   ON products(status);

CREATE TABLE IF NOT EXISTS product_media (
  id         BIGSERIAL PRIMARY KEY,
  product_id BIGINT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
  url        TEXT NOT NULL,
  kind       TEXT NOT NULL DEFAULT 'image'
);
CREATE INDEX IF NOT EXISTS idx_product_media_product ON product_media(product_id);

CREATE TABLE IF NOT EXISTS orders (
  id               BIGSERIAL PRIMARY KEY,
  created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
  status           TEXT NOT NULL DEFAULT 'NEW_ORDER',
  product_status   TEXT NOT NULL DEFAULT '',
  rental_period    TEXT NOT NULL DEFAULT '',
  customer_name    TEXT NOT NULL DEFAULT '',
  customer_email   TEXT NOT NULL DEFAULT '',
  customer_phone   TEXT NOT NULL DEFAULT '',
  customer_address TEXT NOT NULL DEFAULT '',
  product_id       BIGINT NOT NULL REFERENCES products(id) ON DELETE RESTRICT
);
CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at);
CREATE INDEX IF NOT EXISTS idx_orders_product    ON orders(product_id);

CREATE TABLE IF NOT EXISTS users (
  id    BIGSERIAL PRIMARY KEY,
  name  TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE,
  role  TEXT NOT NULL DEFAULT 'USER'
);
`

// EnsureSchema bootstraps the Postgres schema at startup.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, postgresSchema); err != nil {
		return fmt.Errorf("%w: ensure schema: %v", entity.ErrStorage, err)
	}
	return nil
}
