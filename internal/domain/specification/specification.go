package specification

import (
	"fmt"
	"strings"

	"github.com/ToolRent/GoToolRent/internal/domain/entity"
)

// Clause is one independent filter condition. Expr references columns of
// the entity's table and uses ? placeholders; the executor rebinds them
// for the active driver.
type Clause struct {
	Expr string
	Args []any
}

func Where(expr string, args ...any) Clause {
	return Clause{Expr: expr, Args: args}
}

// Specification describes, without executing, which rows of one entity
// type a caller wants: a conjunction of filter clauses, an ordered list
// of eager-load relations, an optional sort key and optional pagination.
// The zero filter matches everything.
type Specification[T any] struct {
	clauses     []Clause
	includes    []string
	orderBy     string
	orderByDesc string
	skip        int
	take        int
	paginated   bool
}

func New[T any](clauses ...Clause) *Specification[T] {
	return &Specification[T]{clauses: clauses}
}

func (s *Specification[T]) AddClause(c Clause) {
	s.clauses = append(s.clauses, c)
}

// AddInclude registers one eager-load relation. Registration order is
// preserved.
func (s *Specification[T]) AddInclude(relation string) {
	s.includes = append(s.includes, relation)
}

func (s *Specification[T]) ApplyOrderBy(column string) {
	s.orderBy = column
}

func (s *Specification[T]) ApplyOrderByDescending(column string) {
	s.orderByDesc = column
}

// ApplyPagination enables skip/take. Page indexes start at 1.
func (s *Specification[T]) ApplyPagination(pageIndex, pageSize int) error {
	if pageIndex < 1 || pageSize < 1 {
		return fmt.Errorf("%w: page index %d and page size %d must both be >= 1",
			entity.ErrValidation, pageIndex, pageSize)
	}
	s.skip = pageSize * (pageIndex - 1)
	s.take = pageSize
	s.paginated = true
	return nil
}

// Predicate folds all clauses into a single AND expression. An empty
// clause list yields an empty expression, meaning match every row.
func (s *Specification[T]) Predicate() (string, []any) {
	if len(s.clauses) == 0 {
		return "", nil
	}
	exprs := make([]string, len(s.clauses))
	var args []any
	for i, c := range s.clauses {
		exprs[i] = "(" + c.Expr + ")"
		args = append(args, c.Args...)
	}
	return strings.Join(exprs, " AND "), args
}

func (s *Specification[T]) Includes() []string {
	return s.includes
}

// Ordering returns the effective sort. When both an ascending and a
// descending key are set, ascending wins (kept for compatibility with
// the original behavior).
func (s *Specification[T]) Ordering() (column string, desc bool, ok bool) {
	if s.orderBy != "" {
		return s.orderBy, false, true
	}
	if s.orderByDesc != "" {
		return s.orderByDesc, true, true
	}
	return "", false, false
}

// Pagination reports the skip/take bounds; ok is false when pagination
// was never enabled, in which case skip/take must be ignored.
func (s *Specification[T]) Pagination() (skip, take int, ok bool) {
	if !s.paginated {
		return 0, 0, false
	}
	return s.skip, s.take, true
}
