package interfaces

import (
	"context"
	"encoding/json"
	"time"

	"municipal_backoffice/internal/domain/entities"

	"github.com/jackc/pgx/v5"
)

// IVSTTransactionRepository abstracts Postgres persistence for vst.transactions.
//
// Lookups return a zero-valued entity (ID == 0) when nothing matches.

type IVSTTransactionRepository interface {
	// LockOperationID blocks until no other unit of work holds operationID,
	// then holds it until the surrounding transaction ends.
	LockOperationID(ctx context.Context, tx pgx.Tx, operationID string) error
	// FindSettledByOperationID returns the success row carrying operationID.
	FindSettledByOperationID(ctx context.Context, tx pgx.Tx, operationID string) (entities.VSTTransaction, error)
	// LockPendingByAccountNumber locks the newest initiated/expired row for
	// accountNumber without waiting. When that row is locked elsewhere it
	// returns a zero value; older rows are never considered.
	LockPendingByAccountNumber(ctx context.Context, tx pgx.Tx, accountNumber string) (entities.VSTTransaction, error)
	MarkSuccess(ctx context.Context, tx pgx.Tx, id int64, operationID string, responseInfo json.RawMessage) (entities.VSTTransaction, error)
	ExpireStale(ctx context.Context, olderThan time.Duration) ([]entities.VSTTransaction, error)
	GetLatestByOperationID(ctx context.Context, operationID string) (entities.VSTTransaction, error)
	GetLatestByAccountNumber(ctx context.Context, accountNumber string) (entities.VSTTransaction, error)
}
