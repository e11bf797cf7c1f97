package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"municipal_backoffice/internal/domain/entities"
	"municipal_backoffice/internal/infrastructure/database"
	"municipal_backoffice/migrations"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a real Postgres when TEST_DATABASE_URL is set.
func newIntegrationPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := database.NewPostgresPool(ctx, url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = migrations.Apply(ctx, pool)
	require.NoError(t, err)
	return pool
}

func insertTransaction(t *testing.T, pool *pgxpool.Pool, account string, status entities.OperationStatus, age time.Duration) int64 {
	t.Helper()
	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO vst.transactions (uuid, account_number, operation_status, cdate)
		VALUES (gen_random_uuid(), $1, $2, now() - make_interval(secs => $3::float8)) RETURNING id`,
		account, string(status), age.Seconds(),
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func TestIntegration_LockSkipsRowsLockedElsewhere(t *testing.T) {
	pool := newIntegrationPool(t)
	ctx := context.Background()
	repo := NewVSTTransactionPgRepository(pool)
	account := "IT-" + uuid.NewString()
	// An older expired attempt must not be handed to the second transaction.
	olderID := insertTransaction(t, pool, account, entities.OperationStatusExpired, time.Hour)
	id := insertTransaction(t, pool, account, entities.OperationStatusInitiated, 0)

	tx1, err := pool.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = tx1.Rollback(ctx) }()

	first, err := repo.LockPendingByAccountNumber(ctx, tx1, account)
	require.NoError(t, err)
	assert.Equal(t, id, first.ID)

	tx2, err := pool.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = tx2.Rollback(ctx) }()

	second, err := repo.LockPendingByAccountNumber(ctx, tx2, account)
	require.NoError(t, err)
	assert.Zero(t, second.ID, "the newest row is locked; older attempts must not be returned")
	assert.NotEqual(t, olderID, second.ID)

	_, err = repo.MarkSuccess(ctx, tx1, first.ID, "op-"+account, []byte(`{"type":"service"}`))
	require.NoError(t, err)
	require.NoError(t, tx1.Commit(ctx))

	settled, err := repo.FindSettledByOperationID(ctx, tx2, "op-"+account)
	require.NoError(t, err)
	assert.Equal(t, id, settled.ID)
}

func TestIntegration_ExpireStaleIsRepeatable(t *testing.T) {
	pool := newIntegrationPool(t)
	ctx := context.Background()
	repo := NewVSTTransactionPgRepository(pool)
	account := "IT-" + uuid.NewString()
	oldID := insertTransaction(t, pool, account, entities.OperationStatusInitiated, 48*time.Hour)
	freshID := insertTransaction(t, pool, account, entities.OperationStatusInitiated, time.Hour)

	expired, err := repo.ExpireStale(ctx, 24*time.Hour)
	require.NoError(t, err)
	ids := map[int64]bool{}
	for _, e := range expired {
		ids[e.ID] = true
	}
	assert.True(t, ids[oldID])
	assert.False(t, ids[freshID])

	again, err := repo.ExpireStale(ctx, 24*time.Hour)
	require.NoError(t, err)
	for _, e := range again {
		assert.NotEqual(t, oldID, e.ID)
	}

	row, err := repo.GetLatestByAccountNumber(ctx, account)
	require.NoError(t, err)
	assert.Equal(t, freshID, row.ID)
	assert.Equal(t, entities.OperationStatusInitiated, row.OperationStatus)
}

func TestIntegration_OperationLockSerializesDuplicates(t *testing.T) {
	pool := newIntegrationPool(t)
	ctx := context.Background()
	repo := NewVSTTransactionPgRepository(pool)
	account := "IT-" + uuid.NewString()
	opID := "op-" + account
	insertTransaction(t, pool, account, entities.OperationStatusExpired, time.Hour)
	id := insertTransaction(t, pool, account, entities.OperationStatusInitiated, 0)

	tx1, err := pool.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = tx1.Rollback(ctx) }()
	require.NoError(t, repo.LockOperationID(ctx, tx1, opID))

	tx2, err := pool.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = tx2.Rollback(ctx) }()

	locked := make(chan error, 1)
	go func() { locked <- repo.LockOperationID(ctx, tx2, opID) }()

	select {
	case err := <-locked:
		t.Fatalf("second unit of work acquired the operation lock while the first held it: %v", err)
	case <-time.After(200 * time.Millisecond):
	}

	row, err := repo.LockPendingByAccountNumber(ctx, tx1, account)
	require.NoError(t, err)
	require.Equal(t, id, row.ID)
	_, err = repo.MarkSuccess(ctx, tx1, row.ID, opID, []byte(`{"type":"service"}`))
	require.NoError(t, err)
	require.NoError(t, tx1.Commit(ctx))

	select {
	case err := <-locked:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("operation lock not released on commit")
	}

	settled, err := repo.FindSettledByOperationID(ctx, tx2, opID)
	require.NoError(t, err)
	assert.Equal(t, id, settled.ID)
}
