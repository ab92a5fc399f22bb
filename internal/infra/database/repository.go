package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/ToolRent/GoToolRent/internal/domain/entity"
	"github.com/ToolRent/GoToolRent/internal/domain/specification"
)

// RepositoryImpl executes specifications and CRUD for one entity type
// over the unit of work's session. It holds no state of its own beyond
// the session reference and the table mapping.
type RepositoryImpl[T any] struct {
	session *session
	model   model[T]
}

func newRepository[T any](s *session, m model[T]) *RepositoryImpl[T] {
	return &RepositoryImpl[T]{session: s, model: m}
}

func (r *RepositoryImpl[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = ?", r.model.selectList(), r.model.table)
	var row T
	err := sqlx.GetContext(ctx, r.session.ext(), &row, r.session.rebind(query), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s id %d", entity.ErrNotFound, r.model.table, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get %s id %d: %v", entity.ErrStorage, r.model.table, id, err)
	}
	return &row, nil
}

func (r *RepositoryImpl[T]) GetBySpec(ctx context.Context, spec *specification.Specification[T]) (*T, error) {
	rows, err := r.GetAllBySpec(ctx, spec)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrNotFound, r.model.table)
	}
	return &rows[0], nil
}

func (r *RepositoryImpl[T]) GetAllBySpec(ctx context.Context, spec *specification.Specification[T]) ([]T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s", r.model.selectList(), r.model.table)
	where, args := spec.Predicate()
	if where != "" {
		query += " WHERE " + where
	}
	if column, desc, ok := spec.Ordering(); ok {
		query += " ORDER BY " + column
		if desc {
			query += " DESC"
		}
	}
	if skip, take, ok := spec.Pagination(); ok {
		query += " LIMIT ? OFFSET ?"
		args = append(args, take, skip)
	}

	rows := []T{}
	if err := sqlx.SelectContext(ctx, r.session.ext(), &rows, r.session.rebind(query), args...); err != nil {
		return nil, fmt.Errorf("%w: select %s: %v", entity.ErrStorage, r.model.table, err)
	}
	if err := r.hydrate(ctx, spec.Includes(), rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// hydrate runs the relation loaders in the specification's registration
// order.
func (r *RepositoryImpl[T]) hydrate(ctx context.Context, includes []string, rows []T) error {
	if len(includes) == 0 || len(rows) == 0 {
		return nil
	}
	ptrs := make([]*T, len(rows))
	for i := range rows {
		ptrs[i] = &rows[i]
	}
	for _, name := range includes {
		loader, ok := r.model.relations[name]
		if !ok {
			return fmt.Errorf("%w: unknown include %q for %s", entity.ErrValidation, name, r.model.table)
		}
		if err := loader(ctx, r.session, ptrs); err != nil {
			return fmt.Errorf("%w: include %q for %s: %v", entity.ErrStorage, name, r.model.table, err)
		}
	}
	return nil
}

func (r *RepositoryImpl[T]) Count(ctx context.Context, spec *specification.Specification[T]) (int64, error) {
	query := "SELECT COUNT(*) FROM " + r.model.table
	where, args := spec.Predicate()
	if where != "" {
		query += " WHERE " + where
	}
	var n int64
	if err := sqlx.GetContext(ctx, r.session.ext(), &n, r.session.rebind(query), args...); err != nil {
		return 0, fmt.Errorf("%w: count %s: %v", entity.ErrStorage, r.model.table, err)
	}
	return n, nil
}

func (r *RepositoryImpl[T]) Add(ctx context.Context, e *T) error {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(r.model.columns)), ", ")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		r.model.table, strings.Join(r.model.columns, ", "), placeholders)
	r.session.stage(func(ctx context.Context, ext sqlx.ExtContext) (int64, error) {
		var id int64
		if err := ext.QueryRowxContext(ctx, r.session.rebind(query), r.model.values(e)...).Scan(&id); err != nil {
			return 0, fmt.Errorf("insert %s: %w", r.model.table, err)
		}
		r.model.setID(e, id)
		return 1, nil
	})
	return nil
}

func (r *RepositoryImpl[T]) AddRange(ctx context.Context, es []*T) error {
	for _, e := range es {
		if err := r.Add(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (r *RepositoryImpl[T]) Update(ctx context.Context, e *T) error {
	sets := make([]string, len(r.model.columns))
	for i, c := range r.model.columns {
		sets[i] = c + " = ?"
	}
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", r.model.table, strings.Join(sets, ", "))
	r.session.stage(func(ctx context.Context, ext sqlx.ExtContext) (int64, error) {
		args := append(r.model.values(e), r.model.id(e))
		res, err := ext.ExecContext(ctx, r.session.rebind(query), args...)
		if err != nil {
			return 0, fmt.Errorf("update %s id %d: %w", r.model.table, r.model.id(e), err)
		}
		return res.RowsAffected()
	})
	return nil
}

func (r *RepositoryImpl[T]) Delete(ctx context.Context, id int64) error {
	exists, err := r.Any(ctx, specification.Where("id = ?", id))
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s id %d", entity.ErrNotFound, r.model.table, id)
	}
	query := "DELETE FROM " + r.model.table + " WHERE id = ?"
	r.session.stage(func(ctx context.Context, ext sqlx.ExtContext) (int64, error) {
		res, err := ext.ExecContext(ctx, r.session.rebind(query), id)
		if err != nil {
			return 0, fmt.Errorf("delete %s id %d: %w", r.model.table, id, err)
		}
		return res.RowsAffected()
	})
	return nil
}

func (r *RepositoryImpl[T]) DeleteRange(ctx context.Context, ids []int64) error {
	for _, id := range ids {
		if err := r.Delete(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (r *RepositoryImpl[T]) Find(ctx context.Context, clause specification.Clause, includes ...string) (*T, error) {
	spec := specification.New[T](clause)
	for _, inc := range includes {
		spec.AddInclude(inc)
	}
	return r.GetBySpec(ctx, spec)
}

func (r *RepositoryImpl[T]) Any(ctx context.Context, clause specification.Clause) (bool, error) {
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s)", r.model.table, clause.Expr)
	var exists bool
	if err := sqlx.GetContext(ctx, r.session.ext(), &exists, r.session.rebind(query), clause.Args...); err != nil {
		return false, fmt.Errorf("%w: exists %s: %v", entity.ErrStorage, r.model.table, err)
	}
	return exists, nil
}
