package interfaces

import (
	"context"

	"municipal_backoffice/internal/domain/entities"
)

// ICallbackJournal keeps a raw trail of received VST callbacks for operators.
//
// Implementations: DynamoDB (cloud) and bolt (single node).
type ICallbackJournal interface {
	Append(ctx context.Context, n entities.CallbackNotification) error
	ListByPaymentID(ctx context.Context, paymentID string) ([]entities.CallbackNotification, error)
}
