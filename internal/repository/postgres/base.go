package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ConnectionSource hands out a live pool, reconnecting under the hood
// when the held one has died.
type ConnectionSource interface {
	Acquire(ctx context.Context) (*pgxpool.Pool, error)
}

// TransactionManager provides common database functionality
type TransactionManager struct {
	db ConnectionSource
}

func NewTransactionManager(db ConnectionSource) *TransactionManager {
	return &TransactionManager{db: db}
}

// WithTransaction executes a function within a database transaction.
// The transaction commits on clean return and rolls back on error or
// panic; fn's error propagates unchanged.
func (r *TransactionManager) WithTransaction(ctx context.Context, fn func(pgx.Tx) error) error {
	pool, err := r.db.Acquire(ctx)
	if err != nil {
		return err
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// No-op once committed, so this is the release on every exit path.
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
