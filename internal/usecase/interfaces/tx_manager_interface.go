package interfaces

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// ITxManager runs a unit of work inside one database transaction.
//
// fn's error (or a panic) rolls the transaction back; a nil error commits it.
// Row locks taken inside fn are released on commit/rollback.
type ITxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error
}
