package interfaces

import (
	"context"

	"municipal_backoffice/internal/domain/entities"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// IDebtorRepository gives reconciliation read + single-column update access to
// ower.ower. Rows are never created or deleted here.

type IDebtorRepository interface {
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (entities.Debtor, error)
	UpdateDebt(ctx context.Context, tx pgx.Tx, id int64, taxType entities.TaxType, newDebt decimal.Decimal) error
}
