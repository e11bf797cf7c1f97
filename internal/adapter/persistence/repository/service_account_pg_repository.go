package repository

import (
	"context"
	"errors"
	"fmt"

	"municipal_backoffice/internal/domain/entities"
	"municipal_backoffice/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const getEnabledServiceAccountSQL = `
	SELECT a.id, a.account_number, COALESCE(a.amount, 0)::text, COALESCE(a.payer, ''), a.enabled,
		COALESCE(a.service_id, 0), COALESCE(s.name, '')
	FROM admin.cnap_accounts a
	LEFT JOIN admin.cnap_services s ON s.id = a.service_id
	WHERE a.account_number = $1 AND a.enabled = true
	ORDER BY a.id DESC
	LIMIT 1
`

type ServiceAccountPgRepository struct{}

var _ interfaces.IServiceAccountRepository = (*ServiceAccountPgRepository)(nil)

func NewServiceAccountPgRepository() *ServiceAccountPgRepository {
	return &ServiceAccountPgRepository{}
}

func (r *ServiceAccountPgRepository) GetEnabledByAccountNumber(ctx context.Context, tx pgx.Tx, accountNumber string) (entities.ServiceAccount, error) {
	var (
		a      entities.ServiceAccount
		amount string
	)
	err := tx.QueryRow(ctx, getEnabledServiceAccountSQL, accountNumber).Scan(
		&a.ID, &a.AccountNumber, &amount, &a.Payer, &a.Enabled, &a.ServiceID, &a.ServiceName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.ServiceAccount{}, nil
		}
		return entities.ServiceAccount{}, fmt.Errorf("select service account %s: %w", accountNumber, err)
	}

	a.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return entities.ServiceAccount{}, fmt.Errorf("parse service account %s amount %q: %w", accountNumber, amount, err)
	}
	return a, nil
}
