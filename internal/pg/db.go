package pg

import (
	"context"

	"github.com/jackc/pgx/v4"
)

// Querier is the subset of pgx used by read-only repository code.
type Querier interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
}

func NewConn(ctx context.Context, connString string) (*pgx.Conn, error) {
	return pgx.Connect(ctx, connString)
}

// WithTX runs fn inside a transaction and commits it when fn returns nil.
// Rollback is safe to call even if the tx is already closed, so if the tx
// commits successfully, the deferred rollback is a no-op.
func WithTX(ctx context.Context, conn *pgx.Conn, fn func(ctx context.Context, tx pgx.Tx) error) error {
	tx, err := conn.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := fn(ctx, tx); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
