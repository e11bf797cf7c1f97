package entities

import "github.com/shopspring/decimal"

// ServiceAccount is a one-off administrative service charge (admin.cnap_accounts).
//
// Amount is the expected charge in major units. The enabled flag belongs to the
// service catalog module; settlement never flips it.
type ServiceAccount struct {
	ID            int64
	AccountNumber string
	Amount        decimal.Decimal
	Payer         string
	Enabled       bool
	ServiceID     int64
	ServiceName   string
}
