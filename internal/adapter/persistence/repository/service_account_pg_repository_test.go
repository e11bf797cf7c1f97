package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var serviceAccountColumnNames = []string{"id", "account_number", "amount", "payer", "enabled", "service_id", "name"}

func TestServiceAccountPgRepository_GetEnabledByAccountNumber(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mock := newMockPool(t)
		tx := beginMockTx(t, mock)
		repo := NewServiceAccountPgRepository()

		mock.ExpectQuery(regexp.QuoteMeta("WHERE a.account_number = $1 AND a.enabled = true")).
			WithArgs("CNAP-77").
			WillReturnRows(pgxmock.NewRows(serviceAccountColumnNames).
				AddRow(int64(5), "CNAP-77", "250.00", "Olena", true, int64(3), "Extract from registry"))

		a, err := repo.GetEnabledByAccountNumber(context.Background(), tx, "CNAP-77")
		require.NoError(t, err)
		assert.Equal(t, int64(5), a.ID)
		assert.True(t, a.Amount.Equal(decimal.NewFromInt(250)))
		assert.Equal(t, "Extract from registry", a.ServiceName)
		assert.True(t, a.Enabled)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("disabled or missing", func(t *testing.T) {
		mock := newMockPool(t)
		tx := beginMockTx(t, mock)
		repo := NewServiceAccountPgRepository()

		mock.ExpectQuery(regexp.QuoteMeta("FROM admin.cnap_accounts a")).
			WithArgs("CNAP-0").
			WillReturnRows(pgxmock.NewRows(serviceAccountColumnNames))

		a, err := repo.GetEnabledByAccountNumber(context.Background(), tx, "CNAP-0")
		require.NoError(t, err)
		assert.Zero(t, a.ID)
	})
}
