package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"unicode/utf8"

	"municipal_backoffice/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidBody           = errors.New("request body must be a JSON object")
	ErrMissingRequiredFields = errors.New("payment_id, status and amount are required")
	ErrInvalidPaymentID      = errors.New("payment_id must be a string of 1 to 100 characters")
	ErrInvalidAmount         = errors.New("amount must be a non-negative whole number of minor units")
)

const (
	maxPaymentIDLength = 100
	// maxAmountText bounds the literal before it is parsed; exponent
	// notation is still accepted but cannot expand past maxAmountExponent.
	maxAmountText     = 32
	maxAmountExponent = 15
)

// maxAmountMinor is the exclusive upper bound for a callback amount in minor units.
var maxAmountMinor = decimal.New(1, maxAmountExponent)

// VSTCallbackRequest is the body VST posts to /vst-success.
//
// Known fields stay raw until Validate so type errors map to the right code.
// Every other field is kept in Extra (commission, payer_name, card_mask, ...).
type VSTCallbackRequest struct {
	PaymentID     json.RawMessage
	TransactionID json.RawMessage
	Status        json.RawMessage
	Amount        json.RawMessage
	Extra         map[string]json.RawMessage
	Raw           json.RawMessage
}

func ParseVSTCallbackRequest(body []byte) (VSTCallbackRequest, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return VSTCallbackRequest{}, ErrInvalidBody
	}

	r := VSTCallbackRequest{
		PaymentID:     fields["payment_id"],
		TransactionID: fields["transaction_id"],
		Status:        fields["status"],
		Amount:        fields["amount"],
		Raw:           json.RawMessage(body),
	}
	for _, k := range []string{"payment_id", "transaction_id", "status", "amount"} {
		delete(fields, k)
	}
	if len(fields) > 0 {
		r.Extra = fields
	}
	return r, nil
}

// ToNotification validates the request and builds the domain notification.
// Checks run in order: required fields, payment_id, amount.
func (r VSTCallbackRequest) ToNotification() (entities.CallbackNotification, error) {
	if isMissing(r.PaymentID) || isMissing(r.Status) || isMissing(r.Amount) {
		return entities.CallbackNotification{}, ErrMissingRequiredFields
	}

	var paymentID string
	if err := json.Unmarshal(r.PaymentID, &paymentID); err != nil {
		return entities.CallbackNotification{}, ErrInvalidPaymentID
	}
	if n := utf8.RuneCountInString(paymentID); n < 1 || n > maxPaymentIDLength {
		return entities.CallbackNotification{}, ErrInvalidPaymentID
	}
	// NUL separates key parts in the bolt journal.
	if strings.ContainsRune(paymentID, 0) {
		return entities.CallbackNotification{}, ErrInvalidPaymentID
	}

	amount, err := parseAmount(r.Amount)
	if err != nil {
		return entities.CallbackNotification{}, ErrInvalidAmount
	}

	return entities.CallbackNotification{
		OperationID: scalarText(r.TransactionID),
		PaymentID:   paymentID,
		Status:      strings.ToLower(scalarText(r.Status)),
		AmountMinor: amount,
		Extra:       r.Extra,
		RawPayload:  r.Raw,
	}, nil
}

func isMissing(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return true
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return strings.TrimSpace(s) == ""
	}
	return false
}

// parseAmount accepts a JSON number or a numeric string holding a whole,
// non-negative count of minor units below maxAmountMinor.
func parseAmount(raw json.RawMessage) (decimal.Decimal, error) {
	text := string(bytes.TrimSpace(raw))
	if strings.HasPrefix(text, `"`) {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return decimal.Decimal{}, err
		}
		text = strings.TrimSpace(s)
	}
	if len(text) > maxAmountText {
		return decimal.Decimal{}, ErrInvalidAmount
	}

	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Decimal{}, err
	}
	// Exponent is bounded before any arithmetic: rescaling 1e50000000 is not cheap.
	if exp := d.Exponent(); exp > maxAmountExponent || exp < -maxAmountText || d.IsNegative() {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	whole := d.Truncate(0)
	if !whole.Equal(d) || !whole.LessThan(maxAmountMinor) {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	return whole, nil
}

// scalarText returns a JSON string's value, a number's literal text, or "".
func scalarText(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err == nil {
		return n.String()
	}
	return ""
}
