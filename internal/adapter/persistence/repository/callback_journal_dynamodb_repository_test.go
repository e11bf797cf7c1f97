package repository

import (
	"encoding/json"
	"testing"
	"time"

	"municipal_backoffice/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCallbackJournalItem_Mapping(t *testing.T) {
	receivedAt := time.Date(2025, 3, 1, 10, 0, 0, 123, time.UTC)
	n := entities.CallbackNotification{
		ID:          "cb-1",
		OperationID: "op-1",
		PaymentID:   "123456781",
		Status:      "success",
		AmountMinor: decimal.NewFromInt(100000),
		Extra: map[string]json.RawMessage{
			"payer_name": json.RawMessage(`"Ivan"`),
			"commission": json.RawMessage(`150`),
		},
		RawPayload: json.RawMessage(`{"payment_id":"123456781"}`),
		ReceivedAt: receivedAt,
	}

	item := toCallbackJournalItem(n)
	assert.Equal(t, "100000", item.Amount)
	assert.Equal(t, "Ivan", item.Extra["payer_name"])
	assert.Equal(t, float64(150), item.Extra["commission"])

	back := fromCallbackJournalItem(item)
	assert.Equal(t, n.ID, back.ID)
	assert.Equal(t, n.OperationID, back.OperationID)
	assert.True(t, back.AmountMinor.Equal(n.AmountMinor))
	assert.True(t, back.ReceivedAt.Equal(receivedAt))
	assert.JSONEq(t, `"Ivan"`, string(back.Extra["payer_name"]))
	assert.JSONEq(t, string(n.RawPayload), string(back.RawPayload))
}

func TestNewCallbackJournalDynamoRepository_TableFromEnv(t *testing.T) {
	t.Setenv("CALLBACK_JOURNAL_TABLE", "custom_callbacks")
	r := NewCallbackJournalDynamoRepository(nil)
	assert.Equal(t, "custom_callbacks", r.tableName)

	t.Setenv("CALLBACK_JOURNAL_TABLE", "")
	r = NewCallbackJournalDynamoRepository(nil)
	assert.Equal(t, defaultCallbackJournalTableName, r.tableName)
}
