package database

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// mutation is one staged write. It runs against the session's current
// executor at flush time and reports affected rows.
type mutation func(ctx context.Context, ext sqlx.ExtContext) (int64, error)

// session is the storage handle shared by one unit of work and its
// repositories. It is owned by a single logical operation and must not
// be shared across concurrent ones.
type session struct {
	db      *sqlx.DB
	tx      *sqlx.Tx
	pending []mutation
}

// ext returns the active transaction when one is open, the pool
// otherwise. Repositories always query through this so they observe the
// transaction the unit of work manages.
func (s *session) ext() sqlx.ExtContext {
	if s.tx != nil {
		return s.tx
	}
	return s.db
}

// rebind translates ? placeholders for the active driver (pq uses $N,
// sqlite keeps ?).
func (s *session) rebind(query string) string {
	return s.db.Rebind(query)
}

func (s *session) stage(m mutation) {
	s.pending = append(s.pending, m)
}
