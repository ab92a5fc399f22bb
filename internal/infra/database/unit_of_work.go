package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ToolRent/GoToolRent/internal/application/port/outbound"
	"github.com/ToolRent/GoToolRent/internal/domain/entity"
	"github.com/ToolRent/GoToolRent/pkg/logger"
)

type txState int

const (
	txNone txState = iota
	txActive
)

// UnitOfWorkImpl owns one session for one logical operation. Repository
// accessors cache their instance for the unit of work's lifetime, so
// every caller of Products() within one operation gets the same value.
type UnitOfWorkImpl struct {
	session *session
	state   txState
	log     logger.Logger

	products   outbound.Repository[entity.Product]
	categories outbound.Repository[entity.Category]
	orders     outbound.Repository[entity.Order]
	users      outbound.Repository[entity.User]
}

func NewUnitOfWork(db *sqlx.DB, log logger.Logger) *UnitOfWorkImpl {
	return &UnitOfWorkImpl{session: &session{db: db}, log: log}
}

func (u *UnitOfWorkImpl) Products() outbound.Repository[entity.Product] {
	if u.products == nil {
		u.products = newRepository(u.session, productModel())
	}
	return u.products
}

func (u *UnitOfWorkImpl) Categories() outbound.Repository[entity.Category] {
	if u.categories == nil {
		u.categories = newRepository(u.session, categoryModel())
	}
	return u.categories
}

func (u *UnitOfWorkImpl) Orders() outbound.Repository[entity.Order] {
	if u.orders == nil {
		u.orders = newRepository(u.session, orderModel())
	}
	return u.orders
}

func (u *UnitOfWorkImpl) Users() outbound.Repository[entity.User] {
	if u.users == nil {
		u.users = newRepository(u.session, userModel())
	}
	return u.users
}

// Begin starts a transaction, or reuses the active one. Re-entrant calls
// never open a second transaction.
func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.state == txActive && u.session.tx != nil {
		return nil
	}
	tx, err := u.session.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %v", entity.ErrStorage, err)
	}
	u.session.tx = tx
	u.state = txActive
	return nil
}

func (u *UnitOfWorkImpl) Commit(ctx context.Context) error {
	if u.state != txActive {
		return fmt.Errorf("%w: commit without an active transaction", entity.ErrInvalidOperation)
	}
	err := u.session.tx.Commit()
	u.session.tx = nil
	u.state = txNone
	if err != nil {
		return fmt.Errorf("%w: commit: %v", entity.ErrStorage, err)
	}
	return nil
}

func (u *UnitOfWorkImpl) Rollback(ctx context.Context) error {
	if u.state != txActive {
		return fmt.Errorf("%w: rollback without an active transaction", entity.ErrInvalidOperation)
	}
	err := u.session.tx.Rollback()
	u.session.tx = nil
	u.state = txNone
	if err != nil {
		return fmt.Errorf("%w: rollback: %v", entity.ErrStorage, err)
	}
	return nil
}

// Flush runs every staged mutation in staging order against the current
// executor and returns the summed affected-row count. With nothing
// staged it returns 0 without a store round-trip.
func (u *UnitOfWorkImpl) Flush(ctx context.Context) (int64, error) {
	if len(u.session.pending) == 0 {
		return 0, nil
	}
	var total int64
	for _, m := range u.session.pending {
		n, err := m(ctx, u.session.ext())
		if err != nil {
			u.session.pending = nil
			return total, fmt.Errorf("%w: flush: %v", entity.ErrStorage, err)
		}
		total += n
	}
	u.session.pending = u.session.pending[:0]
	return total, nil
}

// Close releases the session. A transaction still active here means the
// operation ended without committing; it is rolled back, never left
// half-open.
func (u *UnitOfWorkImpl) Close(ctx context.Context) error {
	if u.state != txActive {
		return nil
	}
	u.log.Warn(ctx, "unit of work closed with an active transaction, rolling back")
	return u.Rollback(ctx)
}

// UnitOfWorkFactoryImpl hands out one fresh unit of work per request
// over a shared pool.
type UnitOfWorkFactoryImpl struct {
	db  *sqlx.DB
	log logger.Logger
}

func NewUnitOfWorkFactory(db *sqlx.DB, log logger.Logger) *UnitOfWorkFactoryImpl {
	return &UnitOfWorkFactoryImpl{db: db, log: log}
}

func (f *UnitOfWorkFactoryImpl) New() outbound.UnitOfWork {
	return NewUnitOfWork(f.db, f.log)
}
