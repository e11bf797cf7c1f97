package interfaces

import (
	"context"

	"municipal_backoffice/internal/domain/entities"

	"github.com/jackc/pgx/v5"
)

// IServiceAccountRepository reads admin.cnap_accounts.

type IServiceAccountRepository interface {
	GetEnabledByAccountNumber(ctx context.Context, tx pgx.Tx, accountNumber string) (entities.ServiceAccount, error)
}
