package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

const CallbackStatusSuccess = "success"

// CallbackNotification is a validated VST callback.
//
// Status is already normalized (trimmed, lower case). AmountMinor is in minor
// units (kopecks), exactly as sent by the processor. Extra keeps every body
// field the reconciliation ignores (commission, payer_name, card_mask, ...).
type CallbackNotification struct {
	ID          string                     `json:"id"`
	OperationID string                     `json:"transaction_id,omitempty"`
	PaymentID   string                     `json:"payment_id"`
	Status      string                     `json:"status"`
	AmountMinor decimal.Decimal            `json:"amount"`
	Extra       map[string]json.RawMessage `json:"extra,omitempty"`
	RawPayload  json.RawMessage            `json:"raw_payload,omitempty"`
	ReceivedAt  time.Time                  `json:"received_at"`
}

// IsSuccess reports whether the processor declared the payment successful.
func (n CallbackNotification) IsSuccess() bool {
	return n.Status == CallbackStatusSuccess
}

// AmountMajor converts the minor-unit amount into major units (amount / 100).
// The shift is exact, unlike Div which rounds to DivisionPrecision.
func (n CallbackNotification) AmountMajor() decimal.Decimal {
	return n.AmountMinor.Shift(-2)
}
