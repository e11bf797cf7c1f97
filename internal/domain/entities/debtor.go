package entities

import "github.com/shopspring/decimal"

// TaxType selects one of the five debt balances of a debtor.
//
// The set is closed: only 1..5 exist.
type TaxType int

const (
	TaxTypeResidential    TaxType = 1
	TaxTypeNonResidential TaxType = 2
	TaxTypeLand           TaxType = 3
	TaxTypeOrenda         TaxType = 4
	TaxTypeMPZ            TaxType = 5
)

func (t TaxType) Valid() bool {
	return t >= TaxTypeResidential && t <= TaxTypeMPZ
}

// Column returns the ower.ower column holding the balance for t, or "" when t
// is not a known tax type.
func (t TaxType) Column() string {
	switch t {
	case TaxTypeResidential:
		return "residential_debt"
	case TaxTypeNonResidential:
		return "non_residential_debt"
	case TaxTypeLand:
		return "land_debt"
	case TaxTypeOrenda:
		return "orenda_debt"
	case TaxTypeMPZ:
		return "mpz"
	}
	return ""
}

// Debtor is a row of ower.ower, owned by the debtor registry module.
//
// Reconciliation only ever decrements one balance per settled callback.
type Debtor struct {
	ID                 int64
	Name               string
	ResidentialDebt    decimal.Decimal
	NonResidentialDebt decimal.Decimal
	LandDebt           decimal.Decimal
	OrendaDebt         decimal.Decimal
	MPZ                decimal.Decimal
}

// Debt returns the balance selected by t.
func (d Debtor) Debt(t TaxType) decimal.Decimal {
	switch t {
	case TaxTypeResidential:
		return d.ResidentialDebt
	case TaxTypeNonResidential:
		return d.NonResidentialDebt
	case TaxTypeLand:
		return d.LandDebt
	case TaxTypeOrenda:
		return d.OrendaDebt
	case TaxTypeMPZ:
		return d.MPZ
	}
	return decimal.Zero
}
