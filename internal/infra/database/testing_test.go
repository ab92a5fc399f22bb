package database

import (
	"fmt"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// Mirrors the postgres schema closely enough for the repository queries;
// quantity check and the RESTRICT/CASCADE rules are kept so constraint
// behavior can be exercised without a running postgres.
const sqliteSchema = `
CREATE TABLE categories (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	image_url   TEXT NOT NULL DEFAULT ''
);

CREATE TABLE products (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	name        TEXT NOT NULL,
	brand       TEXT NOT NULL DEFAULT '',
	model       TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	status      TEXT NOT NULL DEFAULT '',
	quantity    INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
	category_id INTEGER NOT NULL REFERENCES categories (id) ON DELETE RESTRICT,
	attributes  TEXT NOT NULL DEFAULT ''
);

CREATE TABLE product_media (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	product_id INTEGER NOT NULL REFERENCES products (id) ON DELETE CASCADE,
	url        TEXT NOT NULL,
	kind       TEXT NOT NULL DEFAULT ''
);

CREATE TABLE orders (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at       TIMESTAMP NOT NULL,
	status           TEXT NOT NULL,
	product_status   TEXT NOT NULL DEFAULT '',
	rental_period    TEXT NOT NULL DEFAULT '',
	customer_name    TEXT NOT NULL DEFAULT '',
	customer_email   TEXT NOT NULL DEFAULT '',
	customer_phone   TEXT NOT NULL DEFAULT '',
	customer_address TEXT NOT NULL DEFAULT '',
	product_id       INTEGER NOT NULL REFERENCES products (id) ON DELETE RESTRICT
);

CREATE TABLE users (
	id    INTEGER PRIMARY KEY AUTOINCREMENT,
	name  TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	role  TEXT NOT NULL DEFAULT ''
);
`

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	// One connection so the in-memory database and the pragma survive
	// across pool checkouts.
	db.SetMaxOpenConns(1)
	_, err = db.Exec("PRAGMA foreign_keys = ON")
	require.NoError(t, err)
	_, err = db.Exec(sqliteSchema)
	require.NoError(t, err)
	return db
}

func seedCategory(t *testing.T, db *sqlx.DB, id int64, name string) {
	t.Helper()
	db.MustExec("INSERT INTO categories (id, name) VALUES (?, ?)", id, name)
}

func seedProduct(t *testing.T, db *sqlx.DB, id, categoryID int64, name, brand string, quantity int) {
	t.Helper()
	db.MustExec(
		"INSERT INTO products (id, name, brand, quantity, category_id) VALUES (?, ?, ?, ?, ?)",
		id, name, brand, quantity, categoryID)
}

func seedToolCatalog(t *testing.T, db *sqlx.DB) {
	t.Helper()
	seedCategory(t, db, 1, "Power Tools")
	seedCategory(t, db, 2, "Hand Tools")
	seedProduct(t, db, 1, 1, "Cordless Drill", "Bosch", 4)
	seedProduct(t, db, 2, 1, "Circular Saw", "Makita", 2)
	seedProduct(t, db, 3, 2, "Claw Hammer", "Stanley", 10)
}

func seedManyProducts(t *testing.T, db *sqlx.DB, n int) {
	t.Helper()
	seedCategory(t, db, 1, "Power Tools")
	for i := 1; i <= n; i++ {
		seedProduct(t, db, int64(i), 1, fmt.Sprintf("tool-%02d", i), "Generic", i)
	}
}

func countRows(t *testing.T, db *sqlx.DB, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Get(&n, "SELECT COUNT(*) FROM "+table))
	return n
}
