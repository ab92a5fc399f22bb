package outbound

import (
	"context"

	"github.com/ToolRent/GoToolRent/internal/domain/specification"
)

// Repository executes specifications and CRUD for one entity type.
//
// Mutations (Add, AddRange, Update, Delete, DeleteRange) are staged on
// the owning unit of work and become durable only when Flush runs.
// Lookups that match nothing return entity.ErrNotFound; list queries
// return an empty slice.
type Repository[T any] interface {
	// GetByID is a bare fetch: no includes are applied.
	GetByID(ctx context.Context, id int64) (*T, error)

	// GetBySpec applies includes, predicate, sort and pagination, and
	// returns the first match.
	GetBySpec(ctx context.Context, spec *specification.Specification[T]) (*T, error)

	// GetAllBySpec returns every match in the specification's order.
	GetAllBySpec(ctx context.Context, spec *specification.Specification[T]) ([]T, error)

	// Count applies only the predicate; sort and pagination are ignored,
	// so the result is the unpaginated filtered total.
	Count(ctx context.Context, spec *specification.Specification[T]) (int64, error)

	Add(ctx context.Context, e *T) error
	AddRange(ctx context.Context, es []*T) error
	Update(ctx context.Context, e *T) error

	// Delete fails with entity.ErrNotFound when no row has the id; it is
	// never a silent no-op.
	Delete(ctx context.Context, id int64) error
	DeleteRange(ctx context.Context, ids []int64) error

	// Find is an ad hoc single-row lookup bypassing the specification
	// builders, with a small set of named includes.
	Find(ctx context.Context, clause specification.Clause, includes ...string) (*T, error)

	// Any reports whether a row matching the clause exists, without
	// materializing rows.
	Any(ctx context.Context, clause specification.Clause) (bool, error)
}
