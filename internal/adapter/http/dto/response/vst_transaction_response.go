package response

import (
	"encoding/json"
	"time"

	"municipal_backoffice/internal/domain/entities"

	"github.com/google/uuid"
)

type VSTTransactionView struct {
	ID              int64           `json:"id"`
	UUID            *string         `json:"uuid"`
	AccountNumber   string          `json:"account_number"`
	OperationID     *string         `json:"operation_id"`
	OperationStatus string          `json:"operation_status"`
	ResponseStatus  *string         `json:"response_status"`
	ResponseInfo    json.RawMessage `json:"response_info"`
	OperationDate   *time.Time      `json:"operation_date"`
	EditorDate      *time.Time      `json:"editor_date"`
	CDate           time.Time       `json:"cdate"`
}

type VSTStatusResponse struct {
	Success     bool               `json:"success"`
	Transaction VSTTransactionView `json:"transaction"`
}

type VSTExpiryResponse struct {
	Success             bool                 `json:"success"`
	Hours               int                  `json:"hours"`
	ExpiredCount        int                  `json:"expiredCount"`
	ExpiredTransactions []VSTTransactionView `json:"expiredTransactions"`
}

type CallbackJournalEntry struct {
	ID            string                     `json:"id"`
	PaymentID     string                     `json:"payment_id"`
	TransactionID string                     `json:"transaction_id,omitempty"`
	Status        string                     `json:"status"`
	Amount        string                     `json:"amount"`
	ReceivedAt    time.Time                  `json:"received_at"`
	Extra         map[string]json.RawMessage `json:"extra,omitempty"`
}

type CallbackJournalResponse struct {
	Success   bool                   `json:"success"`
	PaymentID string                 `json:"payment_id"`
	Callbacks []CallbackJournalEntry `json:"callbacks"`
}

func FromVSTTransaction(t entities.VSTTransaction) VSTTransactionView {
	info := t.ResponseInfo
	if len(info) == 0 {
		info = json.RawMessage("null")
	}
	v := VSTTransactionView{
		ID:              t.ID,
		AccountNumber:   t.AccountNumber,
		OperationID:     optionalString(t.OperationID),
		OperationStatus: string(t.OperationStatus),
		ResponseStatus:  optionalString(t.ResponseStatus),
		ResponseInfo:    info,
		OperationDate:   t.OperationDate,
		EditorDate:      t.EditorDate,
		CDate:           t.CDate,
	}
	if t.UUID != uuid.Nil {
		v.UUID = optionalString(t.UUID.String())
	}
	return v
}

func NewVSTStatusResponse(t entities.VSTTransaction) VSTStatusResponse {
	return VSTStatusResponse{Success: true, Transaction: FromVSTTransaction(t)}
}

func NewVSTExpiryResponse(hours int, expired []entities.VSTTransaction) VSTExpiryResponse {
	views := make([]VSTTransactionView, 0, len(expired))
	for _, t := range expired {
		views = append(views, FromVSTTransaction(t))
	}
	return VSTExpiryResponse{Success: true, Hours: hours, ExpiredCount: len(views), ExpiredTransactions: views}
}

func NewCallbackJournalResponse(paymentID string, items []entities.CallbackNotification) CallbackJournalResponse {
	entries := make([]CallbackJournalEntry, 0, len(items))
	for _, n := range items {
		entries = append(entries, CallbackJournalEntry{
			ID:            n.ID,
			PaymentID:     n.PaymentID,
			TransactionID: n.OperationID,
			Status:        n.Status,
			Amount:        n.AmountMinor.String(),
			ReceivedAt:    n.ReceivedAt,
			Extra:         n.Extra,
		})
	}
	return CallbackJournalResponse{Success: true, PaymentID: paymentID, Callbacks: entries}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
