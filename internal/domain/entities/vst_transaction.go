package entities

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// OperationStatus is the lifecycle state of a VST transaction row.
//
// State machine:
//   - initiated -> success (settled by a callback)
//   - initiated -> expired (swept after the age threshold)
//   - expired   -> success (late callback)
//   - success is terminal

type OperationStatus string

const (
	OperationStatusInitiated OperationStatus = "initiated"
	OperationStatusExpired   OperationStatus = "expired"
	OperationStatusSuccess   OperationStatus = "success"
)

const (
	ResponseStatusSuccess = "SUCCESS"
	ResponseStatusTimeout = "TIMEOUT"
)

// Settleable reports whether a callback may still settle a row in this state.
func (s OperationStatus) Settleable() bool {
	return s == OperationStatusInitiated || s == OperationStatusExpired
}

// VSTTransaction is a locally tracked payment attempt sent to the VST processor.
//
// Storage model (Postgres, vst.transactions):
//   - PK: id (bigserial)
//   - account_number is the payment identifier presented to the processor and is
//     not unique: a debtor or service account may have many attempts.
//   - operation_id is the processor transaction id (idempotency key), nullable.
//
// A zero ID means "no row".
type VSTTransaction struct {
	ID              int64           `json:"id"`
	UUID            uuid.UUID       `json:"uuid"`
	AccountNumber   string          `json:"account_number"`
	OperationID     string          `json:"operation_id,omitempty"`
	OperationStatus OperationStatus `json:"operation_status"`
	ResponseStatus  string          `json:"response_status,omitempty"`
	ResponseInfo    json.RawMessage `json:"response_info,omitempty"`
	OperationDate   *time.Time      `json:"operation_date,omitempty"`
	EditorDate      *time.Time      `json:"editor_date,omitempty"`
	CDate           time.Time       `json:"cdate"`
}
