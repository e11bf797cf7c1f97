package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"municipal_backoffice/internal/domain/entities"
	"municipal_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const vstTransactionColumns = `id, COALESCE(uuid::text, ''), account_number, COALESCE(operation_id, ''), operation_status, COALESCE(response_status, ''), COALESCE(response_info, '{}'::jsonb), operation_date, editor_date, cdate`

const (
	// Held until the unit of work ends; serializes callbacks sharing an operation id.
	lockOperationIDSQL = `SELECT pg_advisory_xact_lock(hashtext($1))`

	findSettledByOperationIDSQL = `
		SELECT ` + vstTransactionColumns + `
		FROM vst.transactions
		WHERE operation_id = $1 AND operation_status = 'success'
		ORDER BY editor_date DESC NULLS LAST, id DESC
		LIMIT 1
	`

	// Only the newest candidate is ever locked. If another callback holds it
	// this one sees "no row" instead of falling through to an older attempt.
	lockPendingByAccountNumberSQL = `
		SELECT ` + vstTransactionColumns + `
		FROM vst.transactions
		WHERE id = (
			SELECT id FROM vst.transactions
			WHERE account_number = $1 AND operation_status IN ('initiated', 'expired')
			ORDER BY cdate DESC, id DESC
			LIMIT 1
		)
		AND operation_status IN ('initiated', 'expired')
		FOR UPDATE SKIP LOCKED
	`

	markSuccessSQL = `
		UPDATE vst.transactions
		SET operation_id = COALESCE(NULLIF($2, ''), operation_id),
			operation_status = 'success',
			response_status = 'SUCCESS',
			response_info = $3::jsonb,
			editor_date = now()
		WHERE id = $1
		RETURNING ` + vstTransactionColumns

	// One statement: concurrent sweeps and in-flight settlements never see a
	// half-applied state, and rows locked by a settlement are skipped.
	expireStaleSQL = `
		UPDATE vst.transactions t
		SET operation_status = 'expired',
			response_status = 'TIMEOUT',
			response_info = COALESCE(t.response_info, '{}'::jsonb) || jsonb_build_object(
				'reason', 'expired_by_timeout',
				'previous_status', t.operation_status,
				'threshold_hours', $2::float8,
				'expired_at', now()
			),
			editor_date = now()
		WHERE t.id IN (
			SELECT id FROM vst.transactions
			WHERE operation_status = 'initiated' AND cdate < now() - make_interval(secs => $1::float8)
			FOR UPDATE SKIP LOCKED
		)
		RETURNING ` + vstTransactionColumns

	getLatestByOperationIDSQL = `
		SELECT ` + vstTransactionColumns + `
		FROM vst.transactions
		WHERE operation_id = $1
		ORDER BY cdate DESC, id DESC
		LIMIT 1
	`

	getLatestByAccountNumberSQL = `
		SELECT ` + vstTransactionColumns + `
		FROM vst.transactions
		WHERE account_number = $1
		ORDER BY cdate DESC, id DESC
		LIMIT 1
	`
)

// VSTTransactionPgRepository persists VST transactions in Postgres.
//
// Table requirements: see migrations/001_create_vst_transactions.sql.
//   - (account_number, operation_status, cdate) index backs the lock query
//   - (operation_id) index backs idempotency and status lookups

type VSTTransactionPgRepository struct {
	db DBTX
}

var _ interfaces.IVSTTransactionRepository = (*VSTTransactionPgRepository)(nil)

func NewVSTTransactionPgRepository(db DBTX) *VSTTransactionPgRepository {
	return &VSTTransactionPgRepository{db: db}
}

func (r *VSTTransactionPgRepository) LockOperationID(ctx context.Context, tx pgx.Tx, operationID string) error {
	if _, err := tx.Exec(ctx, lockOperationIDSQL, operationID); err != nil {
		return fmt.Errorf("lock operation_id %s: %w", operationID, err)
	}
	return nil
}

func (r *VSTTransactionPgRepository) FindSettledByOperationID(ctx context.Context, tx pgx.Tx, operationID string) (entities.VSTTransaction, error) {
	t, err := scanVSTTransaction(tx.QueryRow(ctx, findSettledByOperationIDSQL, operationID))
	if err != nil {
		return entities.VSTTransaction{}, fmt.Errorf("find settled transaction by operation_id %s: %w", operationID, err)
	}
	return t, nil
}

func (r *VSTTransactionPgRepository) LockPendingByAccountNumber(ctx context.Context, tx pgx.Tx, accountNumber string) (entities.VSTTransaction, error) {
	t, err := scanVSTTransaction(tx.QueryRow(ctx, lockPendingByAccountNumberSQL, accountNumber))
	if err != nil {
		return entities.VSTTransaction{}, fmt.Errorf("lock pending transaction for account %s: %w", accountNumber, err)
	}
	return t, nil
}

func (r *VSTTransactionPgRepository) MarkSuccess(ctx context.Context, tx pgx.Tx, id int64, operationID string, responseInfo json.RawMessage) (entities.VSTTransaction, error) {
	if len(responseInfo) == 0 {
		responseInfo = json.RawMessage("{}")
	}
	t, err := scanVSTTransaction(tx.QueryRow(ctx, markSuccessSQL, id, operationID, string(responseInfo)))
	if err != nil {
		return entities.VSTTransaction{}, fmt.Errorf("mark transaction %d as success: %w", id, err)
	}
	if t.ID == 0 {
		return entities.VSTTransaction{}, fmt.Errorf("mark transaction %d as success: %w", id, pgx.ErrNoRows)
	}
	return t, nil
}

func (r *VSTTransactionPgRepository) ExpireStale(ctx context.Context, olderThan time.Duration) ([]entities.VSTTransaction, error) {
	rows, err := r.db.Query(ctx, expireStaleSQL, olderThan.Seconds(), olderThan.Hours())
	if err != nil {
		return nil, fmt.Errorf("expire stale transactions: %w", err)
	}
	defer rows.Close()

	expired := make([]entities.VSTTransaction, 0)
	for rows.Next() {
		t, err := scanVSTTransactionRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expired transaction: %w", err)
		}
		expired = append(expired, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expired transactions: %w", err)
	}
	return expired, nil
}

func (r *VSTTransactionPgRepository) GetLatestByOperationID(ctx context.Context, operationID string) (entities.VSTTransaction, error) {
	t, err := scanVSTTransaction(r.db.QueryRow(ctx, getLatestByOperationIDSQL, operationID))
	if err != nil {
		return entities.VSTTransaction{}, fmt.Errorf("get transaction by operation_id %s: %w", operationID, err)
	}
	return t, nil
}

func (r *VSTTransactionPgRepository) GetLatestByAccountNumber(ctx context.Context, accountNumber string) (entities.VSTTransaction, error) {
	t, err := scanVSTTransaction(r.db.QueryRow(ctx, getLatestByAccountNumberSQL, accountNumber))
	if err != nil {
		return entities.VSTTransaction{}, fmt.Errorf("get transaction by account %s: %w", accountNumber, err)
	}
	return t, nil
}

// scanVSTTransaction maps pgx.ErrNoRows to a zero-valued transaction.
func scanVSTTransaction(row pgx.Row) (entities.VSTTransaction, error) {
	t, err := scanVSTTransactionRow(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.VSTTransaction{}, nil
	}
	return t, err
}

func scanVSTTransactionRow(row rowScanner) (entities.VSTTransaction, error) {
	var (
		t      entities.VSTTransaction
		uid    string
		status string
		info   []byte
	)
	err := row.Scan(
		&t.ID, &uid, &t.AccountNumber, &t.OperationID, &status,
		&t.ResponseStatus, &info, &t.OperationDate, &t.EditorDate, &t.CDate,
	)
	if err != nil {
		return entities.VSTTransaction{}, err
	}
	if uid != "" {
		parsed, err := uuid.Parse(uid)
		if err != nil {
			return entities.VSTTransaction{}, fmt.Errorf("parse transaction uuid %q: %w", uid, err)
		}
		t.UUID = parsed
	}
	t.OperationStatus = entities.OperationStatus(status)
	t.ResponseInfo = json.RawMessage(info)
	return t, nil
}
