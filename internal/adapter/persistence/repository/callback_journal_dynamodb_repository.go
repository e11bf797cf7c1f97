package repository

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"municipal_backoffice/internal/domain/entities"
	"municipal_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultCallbackJournalTableName = "vst_callbacks"
	callbackJournalPaymentIDIndex   = "payment_id-index"
)

type callbackJournalItem struct {
	ID          string                 `dynamodbav:"id"`
	PaymentID   string                 `dynamodbav:"payment_id"`
	OperationID string                 `dynamodbav:"operation_id,omitempty"`
	Status      string                 `dynamodbav:"status"`
	Amount      string                 `dynamodbav:"amount"`
	ReceivedAt  string                 `dynamodbav:"received_at"`
	Extra       map[string]interface{} `dynamodbav:"extra,omitempty"`
	PayloadRaw  string                 `dynamodbav:"payload_raw,omitempty"`
}

// CallbackJournalDynamoRepository appends VST callbacks to DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: payment_id-index (PK: payment_id)

type CallbackJournalDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICallbackJournal = (*CallbackJournalDynamoRepository)(nil)

func NewCallbackJournalDynamoRepository(ddb *dynamodb.Client) *CallbackJournalDynamoRepository {
	return &CallbackJournalDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CALLBACK_JOURNAL_TABLE", defaultCallbackJournalTableName),
	}
}

func (r *CallbackJournalDynamoRepository) Append(ctx context.Context, n entities.CallbackNotification) error {
	av, err := attributevalue.MarshalMap(toCallbackJournalItem(n))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func (r *CallbackJournalDynamoRepository) ListByPaymentID(ctx context.Context, paymentID string) ([]entities.CallbackNotification, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(callbackJournalPaymentIDIndex),
		KeyConditionExpression: aws.String("payment_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: paymentID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.CallbackNotification, 0, len(out.Items))
	for _, raw := range out.Items {
		var it callbackJournalItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromCallbackJournalItem(it))
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].ReceivedAt.Before(items[j].ReceivedAt) })
	return items, nil
}

func toCallbackJournalItem(n entities.CallbackNotification) callbackJournalItem {
	var extra map[string]interface{}
	for k, v := range n.Extra {
		var decoded interface{}
		if err := json.Unmarshal(v, &decoded); err != nil {
			decoded = string(v)
		}
		if extra == nil {
			extra = make(map[string]interface{}, len(n.Extra))
		}
		extra[k] = decoded
	}
	return callbackJournalItem{
		ID:          n.ID,
		PaymentID:   n.PaymentID,
		OperationID: n.OperationID,
		Status:      n.Status,
		Amount:      n.AmountMinor.String(),
		ReceivedAt:  n.ReceivedAt.UTC().Format(time.RFC3339Nano),
		Extra:       extra,
		PayloadRaw:  string(n.RawPayload),
	}
}

func fromCallbackJournalItem(it callbackJournalItem) entities.CallbackNotification {
	receivedAt, _ := time.Parse(time.RFC3339Nano, it.ReceivedAt)
	amount, _ := decimal.NewFromString(it.Amount)

	var extra map[string]json.RawMessage
	for k, v := range it.Extra {
		b, err := json.Marshal(v)
		if err != nil {
			continue
		}
		if extra == nil {
			extra = make(map[string]json.RawMessage, len(it.Extra))
		}
		extra[k] = b
	}
	return entities.CallbackNotification{
		ID:          it.ID,
		OperationID: it.OperationID,
		PaymentID:   it.PaymentID,
		Status:      it.Status,
		AmountMinor: amount,
		Extra:       extra,
		RawPayload:  json.RawMessage(it.PayloadRaw),
		ReceivedAt:  receivedAt,
	}
}
