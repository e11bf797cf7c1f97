package repository

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"municipal_backoffice/internal/domain/entities"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var vstTransactionColumnNames = []string{
	"id", "uuid", "account_number", "operation_id", "operation_status",
	"response_status", "response_info", "operation_date", "editor_date", "cdate",
}

const testTxUUID = "6f1c2b8e-3d4a-4f5b-9c6d-7e8f9a0b1c2d"

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func beginMockTx(t *testing.T, mock pgxmock.PgxPoolIface) pgx.Tx {
	t.Helper()
	mock.ExpectBegin()
	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)
	return tx
}

func TestVSTTransactionPgRepository_LockPendingByAccountNumber(t *testing.T) {
	t.Run("row locked", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewVSTTransactionPgRepository(mock)
		tx := beginMockTx(t, mock)

		cdate := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
		mock.ExpectQuery(regexp.QuoteMeta("operation_status IN ('initiated', 'expired')")).
			WithArgs("123456781").
			WillReturnRows(pgxmock.NewRows(vstTransactionColumnNames).
				AddRow(int64(7), testTxUUID, "123456781", "", "initiated", "", []byte(`{}`), (*time.Time)(nil), (*time.Time)(nil), cdate))

		got, err := repo.LockPendingByAccountNumber(context.Background(), tx, "123456781")
		require.NoError(t, err)
		assert.Equal(t, int64(7), got.ID)
		assert.Equal(t, testTxUUID, got.UUID.String())
		assert.Equal(t, entities.OperationStatusInitiated, got.OperationStatus)
		assert.True(t, got.CDate.Equal(cdate))
		assert.Nil(t, got.EditorDate)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nothing available", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewVSTTransactionPgRepository(mock)
		tx := beginMockTx(t, mock)

		mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE SKIP LOCKED")).
			WithArgs("123456781").
			WillReturnRows(pgxmock.NewRows(vstTransactionColumnNames))

		got, err := repo.LockPendingByAccountNumber(context.Background(), tx, "123456781")
		require.NoError(t, err)
		assert.Zero(t, got.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewVSTTransactionPgRepository(mock)
		tx := beginMockTx(t, mock)

		boom := errors.New("connection reset")
		mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE SKIP LOCKED")).
			WithArgs("123456781").
			WillReturnError(boom)

		_, err := repo.LockPendingByAccountNumber(context.Background(), tx, "123456781")
		require.ErrorIs(t, err, boom)
	})
}

func TestVSTTransactionPgRepository_LockPendingOnlyConsidersNewestRow(t *testing.T) {
	mock := newMockPool(t)
	repo := NewVSTTransactionPgRepository(mock)
	tx := beginMockTx(t, mock)

	mock.ExpectQuery(`WHERE id = \(\s*SELECT id FROM vst\.transactions[\s\S]*LIMIT 1\s*\)[\s\S]*FOR UPDATE SKIP LOCKED`).
		WithArgs("123456781").
		WillReturnRows(pgxmock.NewRows(vstTransactionColumnNames))

	got, err := repo.LockPendingByAccountNumber(context.Background(), tx, "123456781")
	require.NoError(t, err)
	assert.Zero(t, got.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVSTTransactionPgRepository_LockOperationID(t *testing.T) {
	t.Run("lock taken", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewVSTTransactionPgRepository(mock)
		tx := beginMockTx(t, mock)

		mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_xact_lock(hashtext($1))")).
			WithArgs("tx-1").
			WillReturnResult(pgxmock.NewResult("SELECT", 1))

		require.NoError(t, repo.LockOperationID(context.Background(), tx, "tx-1"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("lock error", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewVSTTransactionPgRepository(mock)
		tx := beginMockTx(t, mock)

		boom := errors.New("canceling statement due to lock timeout")
		mock.ExpectExec(regexp.QuoteMeta("pg_advisory_xact_lock")).
			WithArgs("tx-1").
			WillReturnError(boom)

		err := repo.LockOperationID(context.Background(), tx, "tx-1")
		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "tx-1")
	})
}

func TestVSTTransactionPgRepository_FindSettledByOperationID(t *testing.T) {
	mock := newMockPool(t)
	repo := NewVSTTransactionPgRepository(mock)
	tx := beginMockTx(t, mock)

	settledAt := time.Date(2026, 10, 2, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE operation_id = $1 AND operation_status = 'success'")).
		WithArgs("tx-1").
		WillReturnRows(pgxmock.NewRows(vstTransactionColumnNames).
			AddRow(int64(3), testTxUUID, "123456781", "tx-1", "success", "SUCCESS", []byte(`{"newDebt":500}`), &settledAt, &settledAt, settledAt.Add(-time.Hour)))

	got, err := repo.FindSettledByOperationID(context.Background(), tx, "tx-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ID)
	assert.Equal(t, "tx-1", got.OperationID)
	assert.Equal(t, entities.OperationStatusSuccess, got.OperationStatus)
	assert.JSONEq(t, `{"newDebt":500}`, string(got.ResponseInfo))
	require.NotNil(t, got.EditorDate)
	assert.True(t, got.EditorDate.Equal(settledAt))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVSTTransactionPgRepository_MarkSuccess(t *testing.T) {
	t.Run("updates the locked row", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewVSTTransactionPgRepository(mock)
		tx := beginMockTx(t, mock)

		now := time.Now().UTC()
		info := json.RawMessage(`{"type":"tax"}`)
		mock.ExpectQuery(regexp.QuoteMeta("SET operation_id = COALESCE(NULLIF($2, ''), operation_id)")).
			WithArgs(int64(7), "tx-1", `{"type":"tax"}`).
			WillReturnRows(pgxmock.NewRows(vstTransactionColumnNames).
				AddRow(int64(7), testTxUUID, "123456781", "tx-1", "success", "SUCCESS", []byte(info), (*time.Time)(nil), &now, now.Add(-time.Minute)))

		got, err := repo.MarkSuccess(context.Background(), tx, 7, "tx-1", info)
		require.NoError(t, err)
		assert.Equal(t, entities.OperationStatusSuccess, got.OperationStatus)
		assert.Equal(t, entities.ResponseStatusSuccess, got.ResponseStatus)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row is an error", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewVSTTransactionPgRepository(mock)
		tx := beginMockTx(t, mock)

		mock.ExpectQuery(regexp.QuoteMeta("SET operation_id = COALESCE(NULLIF($2, ''), operation_id)")).
			WithArgs(int64(7), "", "{}").
			WillReturnRows(pgxmock.NewRows(vstTransactionColumnNames))

		_, err := repo.MarkSuccess(context.Background(), tx, 7, "", nil)
		require.ErrorIs(t, err, pgx.ErrNoRows)
	})
}

func TestVSTTransactionPgRepository_ExpireStale(t *testing.T) {
	mock := newMockPool(t)
	repo := NewVSTTransactionPgRepository(mock)

	old := time.Now().Add(-48 * time.Hour).UTC()
	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("SET operation_status = 'expired'")).
		WithArgs(float64(24*3600), float64(24)).
		WillReturnRows(pgxmock.NewRows(vstTransactionColumnNames).
			AddRow(int64(1), testTxUUID, "123456781", "", "expired", "TIMEOUT", []byte(`{"reason":"expired_by_timeout"}`), (*time.Time)(nil), &now, old).
			AddRow(int64(2), "", "CNAP-1", "", "expired", "TIMEOUT", []byte(`{"reason":"expired_by_timeout"}`), (*time.Time)(nil), &now, old))

	got, err := repo.ExpireStale(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, entities.OperationStatusExpired, got[0].OperationStatus)
	assert.Equal(t, entities.ResponseStatusTimeout, got[1].ResponseStatus)
	assert.Equal(t, "CNAP-1", got[1].AccountNumber)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVSTTransactionPgRepository_ExpireStale_NothingToExpire(t *testing.T) {
	mock := newMockPool(t)
	repo := NewVSTTransactionPgRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("SET operation_status = 'expired'")).
		WithArgs(float64(3600), float64(1)).
		WillReturnRows(pgxmock.NewRows(vstTransactionColumnNames))

	got, err := repo.ExpireStale(context.Background(), time.Hour)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestVSTTransactionPgRepository_GetLatest(t *testing.T) {
	cdate := time.Date(2026, 10, 3, 8, 0, 0, 0, time.UTC)

	t.Run("by operation id", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewVSTTransactionPgRepository(mock)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE operation_id = $1 ORDER BY cdate DESC")).
			WithArgs("tx-9").
			WillReturnRows(pgxmock.NewRows(vstTransactionColumnNames).
				AddRow(int64(9), testTxUUID, "CNAP-9", "tx-9", "initiated", "", []byte(`{}`), (*time.Time)(nil), (*time.Time)(nil), cdate))

		got, err := repo.GetLatestByOperationID(context.Background(), "tx-9")
		require.NoError(t, err)
		assert.Equal(t, int64(9), got.ID)
		assert.Equal(t, entities.OperationStatusInitiated, got.OperationStatus)
	})

	t.Run("by account number not found", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewVSTTransactionPgRepository(mock)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE account_number = $1 ORDER BY cdate DESC")).
			WithArgs("CNAP-404").
			WillReturnRows(pgxmock.NewRows(vstTransactionColumnNames))

		got, err := repo.GetLatestByAccountNumber(context.Background(), "CNAP-404")
		require.NoError(t, err)
		assert.Zero(t, got.ID)
	})
}
