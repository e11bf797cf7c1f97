package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Decimals marshal as exact JSON numbers, not quoted strings.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Settlement is the audit payload stored in vst.transactions.response_info when
// a callback settles a row. Exactly one of TaxSettlement / ServiceSettlement is
// set; its fields are flattened into the JSON object.
type Settlement struct {
	Type        PaymentKind     `json:"type"`
	OperationID string          `json:"operationId,omitempty"`
	PaidAmount  decimal.Decimal `json:"paidAmount"`
	SettledAt   time.Time       `json:"settledAt"`

	*TaxSettlement
	*ServiceSettlement
}

type TaxSettlement struct {
	DebtorID     string          `json:"debtorId"`
	DebtorName   string          `json:"debtorName"`
	TaxType      TaxType         `json:"taxType"`
	FieldUpdated string          `json:"fieldUpdated"`
	OldDebt      decimal.Decimal `json:"oldDebt"`
	NewDebt      decimal.Decimal `json:"newDebt"`
}

type ServiceSettlement struct {
	AccountNumber  string          `json:"accountNumber"`
	ServiceName    string          `json:"serviceName,omitempty"`
	Payer          string          `json:"payer,omitempty"`
	ExpectedAmount decimal.Decimal `json:"expectedAmount"`
	AmountMismatch bool            `json:"amountMismatch"`
}
