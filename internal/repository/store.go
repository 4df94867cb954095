package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// Queryer is the read surface available inside a session.
type Queryer interface {
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
	Rebind(query string) string
}

// QueryObserver receives timing for each executed statement.
type QueryObserver interface {
	ObserveDBQuery(label string, duration time.Duration)
}

// Store hands out short-lived transactional sessions over the backing database.
type Store struct {
	db       *sqlx.DB
	readOnly bool
}

// NewStore constructs a store. readOnly requests read-only transactions from the driver.
func NewStore(db *sqlx.DB, readOnly bool) *Store {
	return &Store{db: db, readOnly: readOnly}
}

// Session runs fn inside one transaction that is committed when fn succeeds
// and rolled back otherwise.
func (s *Store) Session(ctx context.Context, fn func(q Queryer) error) error {
	tx, err := s.db.BeginTxx(ctx, &sql.TxOptions{ReadOnly: s.readOnly})
	if err != nil {
		return fmt.Errorf("begin session: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit session: %w", err)
	}
	return nil
}

// Ping checks connectivity for readiness probes.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func observe(obs QueryObserver, label string, start time.Time) {
	if obs != nil {
		obs.ObserveDBQuery(label, time.Since(start))
	}
}
