package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"municipal_backoffice/internal/domain/entities"
	"municipal_backoffice/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrMissingIdentifier   = errors.New("payment_id or transaction_id is required")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidHours        = errors.New("hours must be a positive integer")
	ErrJournalDisabled     = errors.New("callback journal is disabled")
)

type ExpiryReport struct {
	Hours               int
	ExpiredCount        int
	ExpiredTransactions []entities.VSTTransaction
}

// IVSTTransactionUseCase covers the operator side of VST transactions:
// status lookups, the expiry sweep and the callback journal.
type IVSTTransactionUseCase interface {
	GetStatus(ctx context.Context, paymentID, operationID string) (entities.VSTTransaction, error)
	ExpireStale(ctx context.Context, hours int) (ExpiryReport, error)
	ListCallbacks(ctx context.Context, paymentID string) ([]entities.CallbackNotification, error)
}

type VSTTransactionUseCase struct {
	transactions interfaces.IVSTTransactionRepository
	journal      interfaces.ICallbackJournal
	logger       *zap.Logger
}

var _ IVSTTransactionUseCase = (*VSTTransactionUseCase)(nil)

func NewVSTTransactionUseCase(transactions interfaces.IVSTTransactionRepository, journal interfaces.ICallbackJournal, logger *zap.Logger) *VSTTransactionUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VSTTransactionUseCase{transactions: transactions, journal: journal, logger: logger}
}

// GetStatus returns the newest row for the transaction id when given,
// otherwise for the payment id.
func (u *VSTTransactionUseCase) GetStatus(ctx context.Context, paymentID, operationID string) (entities.VSTTransaction, error) {
	paymentID = strings.TrimSpace(paymentID)
	operationID = strings.TrimSpace(operationID)
	if paymentID == "" && operationID == "" {
		return entities.VSTTransaction{}, ErrMissingIdentifier
	}

	var (
		t   entities.VSTTransaction
		err error
	)
	if operationID != "" {
		t, err = u.transactions.GetLatestByOperationID(ctx, operationID)
	} else {
		t, err = u.transactions.GetLatestByAccountNumber(ctx, paymentID)
	}
	if err != nil {
		u.logger.Error("vst status lookup failed",
			zap.String("payment_id", paymentID),
			zap.String("transaction_id", operationID),
			zap.Error(err),
		)
		return entities.VSTTransaction{}, err
	}
	if t.ID == 0 {
		return entities.VSTTransaction{}, ErrTransactionNotFound
	}
	return t, nil
}

// ExpireStale moves initiated rows older than hours to expired. Repeated and
// concurrent runs are safe: rows locked elsewhere are skipped.
func (u *VSTTransactionUseCase) ExpireStale(ctx context.Context, hours int) (ExpiryReport, error) {
	if hours < 1 {
		return ExpiryReport{}, ErrInvalidHours
	}

	expired, err := u.transactions.ExpireStale(ctx, time.Duration(hours)*time.Hour)
	if err != nil {
		u.logger.Error("vst expiry sweep failed", zap.Int("hours", hours), zap.Error(err))
		return ExpiryReport{}, fmt.Errorf("expire stale transactions: %w", err)
	}
	if expired == nil {
		expired = []entities.VSTTransaction{}
	}

	u.logger.Info("vst expiry sweep done", zap.Int("hours", hours), zap.Int("expired", len(expired)))
	return ExpiryReport{Hours: hours, ExpiredCount: len(expired), ExpiredTransactions: expired}, nil
}

func (u *VSTTransactionUseCase) ListCallbacks(ctx context.Context, paymentID string) ([]entities.CallbackNotification, error) {
	if u.journal == nil {
		return nil, ErrJournalDisabled
	}
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return nil, ErrMissingIdentifier
	}
	return u.journal.ListByPaymentID(ctx, paymentID)
}
