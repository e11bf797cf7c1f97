package response

import (
	"encoding/json"
	"time"

	"municipal_backoffice/internal/domain/entities"

	"github.com/google/uuid"
)

const ReasonConcurrentProcessing = "concurrent_processing"

type VSTCallbackIgnoredResponse struct {
	Success   bool   `json:"success"`
	Processed bool   `json:"processed"`
	Status    string `json:"status"`
}

type VSTCallbackSkippedResponse struct {
	Success   bool   `json:"success"`
	Processed bool   `json:"processed"`
	Reason    string `json:"reason"`
}

type VSTCallbackReplayResponse struct {
	Success             bool            `json:"success"`
	Processed           bool            `json:"processed"`
	AlreadyProcessed    bool            `json:"already_processed"`
	OriginalProcessedAt *time.Time      `json:"original_processed_at"`
	ResponseInfo        json.RawMessage `json:"response_info"`
}

// VSTCallbackProcessedResponse flattens the settlement audit next to the
// settled row's identifiers.
type VSTCallbackProcessedResponse struct {
	Success          bool   `json:"success"`
	Processed        bool   `json:"processed"`
	AlreadyProcessed bool   `json:"already_processed"`
	TransactionID    int64  `json:"transaction_id"`
	TransactionUUID  string `json:"transaction_uuid,omitempty"`
	entities.Settlement
}

func NewVSTCallbackIgnored(status string) VSTCallbackIgnoredResponse {
	return VSTCallbackIgnoredResponse{Success: true, Processed: false, Status: status}
}

func NewVSTCallbackSkipped() VSTCallbackSkippedResponse {
	return VSTCallbackSkippedResponse{Success: true, Processed: false, Reason: ReasonConcurrentProcessing}
}

func NewVSTCallbackReplay(original entities.VSTTransaction) VSTCallbackReplayResponse {
	info := original.ResponseInfo
	if len(info) == 0 {
		info = json.RawMessage("null")
	}
	return VSTCallbackReplayResponse{
		Success:             true,
		Processed:           true,
		AlreadyProcessed:    true,
		OriginalProcessedAt: original.EditorDate,
		ResponseInfo:        info,
	}
}

func NewVSTCallbackProcessed(settled entities.VSTTransaction, s entities.Settlement) VSTCallbackProcessedResponse {
	res := VSTCallbackProcessedResponse{
		Success:          true,
		Processed:        true,
		AlreadyProcessed: false,
		TransactionID:    settled.ID,
		Settlement:       s,
	}
	if settled.UUID != uuid.Nil {
		res.TransactionUUID = settled.UUID.String()
	}
	return res
}
