// Package tx scopes a database transaction to a callback and carries it through the context.
package tx

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-accounts/internal/logger"
)

// Manager opens transactions on a connection pool.
type Manager struct {
	db *sqlx.DB
}

// New creates a Manager for db.
func New(db *sqlx.DB) *Manager {
	return &Manager{db: db}
}

// WithinTx runs fn inside a transaction. The transaction commits only when fn
// returns nil; a returned error, a failed commit or a panic rolls it back.
// The transaction is released exactly once on every path.
func (m *Manager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		logger.Log.Errorw("failed to begin transaction", "error", err)
		return fmt.Errorf("begin transaction: %w", err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			logger.Log.Errorw("failed to rollback transaction", "error", rbErr)
		}
	}()

	if err := fn(setTxToContext(ctx, tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		logger.Log.Errorw("failed to commit transaction", "error", err)
		return fmt.Errorf("commit transaction: %w", err)
	}
	committed = true
	return nil
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext returns the transaction carried by ctx, or nil.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}
