package repository

import (
	"context"
	"regexp"
	"testing"

	"municipal_backoffice/internal/domain/entities"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var debtorColumnNames = []string{"id", "name", "residential_debt", "non_residential_debt", "land_debt", "orenda_debt", "mpz"}

func TestDebtorPgRepository_GetByIDForUpdate(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mock := newMockPool(t)
		tx := beginMockTx(t, mock)
		repo := NewDebtorPgRepository()

		mock.ExpectQuery(regexp.QuoteMeta("FROM ower.ower WHERE id = $1 FOR UPDATE")).
			WithArgs(int64(12345678)).
			WillReturnRows(pgxmock.NewRows(debtorColumnNames).
				AddRow(int64(12345678), "Ivan Petrenko", "1500.00", "0", "10.5", "0", "3"))

		d, err := repo.GetByIDForUpdate(context.Background(), tx, 12345678)
		require.NoError(t, err)
		assert.Equal(t, "Ivan Petrenko", d.Name)
		assert.True(t, d.ResidentialDebt.Equal(decimal.NewFromInt(1500)))
		assert.True(t, d.LandDebt.Equal(decimal.RequireFromString("10.5")))
		assert.True(t, d.MPZ.Equal(decimal.NewFromInt(3)))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		mock := newMockPool(t)
		tx := beginMockTx(t, mock)
		repo := NewDebtorPgRepository()

		mock.ExpectQuery(regexp.QuoteMeta("FROM ower.ower")).
			WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows(debtorColumnNames))

		d, err := repo.GetByIDForUpdate(context.Background(), tx, 1)
		require.NoError(t, err)
		assert.Zero(t, d.ID)
	})
}

func TestDebtorPgRepository_UpdateDebt(t *testing.T) {
	t.Run("updates only the selected column", func(t *testing.T) {
		mock := newMockPool(t)
		tx := beginMockTx(t, mock)
		repo := NewDebtorPgRepository()

		mock.ExpectExec(regexp.QuoteMeta("UPDATE ower.ower SET land_debt = $2::numeric WHERE id = $1")).
			WithArgs(int64(42), "0").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.UpdateDebt(context.Background(), tx, 42, entities.TaxTypeLand, decimal.Zero)
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no row updated", func(t *testing.T) {
		mock := newMockPool(t)
		tx := beginMockTx(t, mock)
		repo := NewDebtorPgRepository()

		mock.ExpectExec(regexp.QuoteMeta("UPDATE ower.ower SET mpz = $2::numeric")).
			WithArgs(int64(42), "12.5").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.UpdateDebt(context.Background(), tx, 42, entities.TaxTypeMPZ, decimal.RequireFromString("12.5"))
		require.ErrorIs(t, err, pgx.ErrNoRows)
	})

	t.Run("unknown tax type never reaches the database", func(t *testing.T) {
		mock := newMockPool(t)
		tx := beginMockTx(t, mock)
		repo := NewDebtorPgRepository()

		err := repo.UpdateDebt(context.Background(), tx, 42, entities.TaxType(8), decimal.Zero)
		require.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
