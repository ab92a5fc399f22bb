package outbound

import (
	"context"

	"github.com/ToolRent/GoToolRent/internal/domain/entity"
)

// UnitOfWork binds one storage session to one logical operation. It
// caches exactly one repository per entity type for its lifetime and
// manages a single transaction at a time.
type UnitOfWork interface {
	Products() Repository[entity.Product]
	Categories() Repository[entity.Category]
	Orders() Repository[entity.Order]
	Users() Repository[entity.User]

	// Begin is idempotent: with a transaction already active it reuses it
	// rather than starting a second one.
	Begin(ctx context.Context) error

	// Commit and Rollback fail with entity.ErrInvalidOperation when no
	// transaction is active.
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	// Flush persists all staged mutations and returns the affected-row
	// count; with nothing staged it returns 0 without touching the store.
	Flush(ctx context.Context) (int64, error)

	// Close releases the session, force-rolling back a still-active
	// transaction first.
	Close(ctx context.Context) error
}

// UnitOfWorkFactory hands out a fresh unit of work per request.
type UnitOfWorkFactory interface {
	New() UnitOfWork
}
