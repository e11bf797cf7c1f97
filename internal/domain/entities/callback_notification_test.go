package entities

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallbackNotification_AmountMajor(t *testing.T) {
	cases := map[string]string{
		"100000": "1000",
		"150":    "1.5",
		"1":      "0.01",
		"0":      "0",
		"12.5":   "0.125",
	}
	for minor, major := range cases {
		n := CallbackNotification{AmountMinor: decimal.RequireFromString(minor)}
		assert.True(t, n.AmountMajor().Equal(decimal.RequireFromString(major)), "%s -> %s, got %s", minor, major, n.AmountMajor())
	}
}

func TestCallbackNotification_IsSuccess(t *testing.T) {
	assert.True(t, CallbackNotification{Status: "success"}.IsSuccess())
	assert.False(t, CallbackNotification{Status: "failed"}.IsSuccess())
	assert.False(t, CallbackNotification{Status: "SUCCESS"}.IsSuccess())
}

func TestSettlement_JSONFlattensDetails(t *testing.T) {
	s := Settlement{
		Type:        PaymentKindTax,
		OperationID: "tx-1",
		PaidAmount:  decimal.NewFromInt(1000),
		SettledAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		TaxSettlement: &TaxSettlement{
			DebtorID:     "12345678",
			DebtorName:   "Ivan",
			TaxType:      TaxTypeResidential,
			FieldUpdated: "residential_debt",
			OldDebt:      decimal.NewFromInt(1500),
			NewDebt:      decimal.RequireFromString("500.10"),
		},
	}

	b, err := json.Marshal(s)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, "tax", got["type"])
	assert.Equal(t, "residential_debt", got["fieldUpdated"])
	assert.Equal(t, float64(1500), got["oldDebt"])
	assert.Equal(t, float64(1000), got["paidAmount"])
	assert.Equal(t, 500.1, got["newDebt"])
	assert.Contains(t, string(b), `"newDebt":500.1`)
	assert.NotContains(t, got, "accountNumber")

	var back Settlement
	require.NoError(t, json.Unmarshal(b, &back))
	require.NotNil(t, back.TaxSettlement)
	assert.Equal(t, "12345678", back.DebtorID)
	assert.True(t, back.NewDebt.Equal(decimal.RequireFromString("500.1")))
}

func TestOperationStatus_Settleable(t *testing.T) {
	assert.True(t, OperationStatusInitiated.Settleable())
	assert.True(t, OperationStatusExpired.Settleable())
	assert.False(t, OperationStatusSuccess.Settleable())
}
