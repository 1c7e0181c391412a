package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/rafaelleal24/commerce/internal/core/port"
)

type TransactionManager struct {
	db *DB
}

func NewTransactionManager(db *DB) port.TransactionManager {
	return &TransactionManager{db: db}
}

// WithTransaction commits when fn returns nil and rolls back otherwise. A ctx
// that already carries a transaction is reused.
func (tm *TransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if tm.db.InTx(ctx) {
		return fn(ctx)
	}

	return pgx.BeginTxFunc(ctx, tm.db.Pool, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
		return fn(withTx(ctx, tx))
	})
}
