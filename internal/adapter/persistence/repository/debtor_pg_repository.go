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

// Row lock on the debtor keeps two settlements for different tax types of the
// same debtor from losing each other's update.
const getDebtorForUpdateSQL = `
	SELECT id, COALESCE(name, ''),
		COALESCE(residential_debt, 0)::text, COALESCE(non_residential_debt, 0)::text,
		COALESCE(land_debt, 0)::text, COALESCE(orenda_debt, 0)::text, COALESCE(mpz, 0)::text
	FROM ower.ower
	WHERE id = $1
	FOR UPDATE
`

type DebtorPgRepository struct{}

var _ interfaces.IDebtorRepository = (*DebtorPgRepository)(nil)

func NewDebtorPgRepository() *DebtorPgRepository {
	return &DebtorPgRepository{}
}

func (r *DebtorPgRepository) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (entities.Debtor, error) {
	var d entities.Debtor
	var residential, nonResidential, land, orenda, mpz string
	err := tx.QueryRow(ctx, getDebtorForUpdateSQL, id).Scan(
		&d.ID, &d.Name, &residential, &nonResidential, &land, &orenda, &mpz,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Debtor{}, nil
		}
		return entities.Debtor{}, fmt.Errorf("select debtor %d: %w", id, err)
	}

	balances := []struct {
		dst *decimal.Decimal
		raw string
	}{
		{&d.ResidentialDebt, residential},
		{&d.NonResidentialDebt, nonResidential},
		{&d.LandDebt, land},
		{&d.OrendaDebt, orenda},
		{&d.MPZ, mpz},
	}
	for _, b := range balances {
		v, err := decimal.NewFromString(b.raw)
		if err != nil {
			return entities.Debtor{}, fmt.Errorf("parse debtor %d balance %q: %w", id, b.raw, err)
		}
		*b.dst = v
	}
	return d, nil
}

func (r *DebtorPgRepository) UpdateDebt(ctx context.Context, tx pgx.Tx, id int64, taxType entities.TaxType, newDebt decimal.Decimal) error {
	column := taxType.Column()
	if column == "" {
		return fmt.Errorf("update debtor %d: unknown tax type %d", id, taxType)
	}

	// column comes from the closed TaxType enum, never from input.
	query := fmt.Sprintf(`UPDATE ower.ower SET %s = $2::numeric WHERE id = $1`, column)
	tag, err := tx.Exec(ctx, query, id, newDebt.String())
	if err != nil {
		return fmt.Errorf("update debtor %d %s: %w", id, column, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update debtor %d %s: %w", id, column, pgx.ErrNoRows)
	}
	return nil
}
