package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"municipal_backoffice/internal/domain/entities"
	"municipal_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrDebtorNotFound         = errors.New("debtor not found")
	ErrServiceAccountNotFound = errors.New("service account not found or disabled")
	ErrUnknownTaxType         = errors.New("unknown tax type")
)

// amountMismatchTolerance is the largest |expected - paid| (major units) that
// still counts as an exact service payment.
var amountMismatchTolerance = decimal.RequireFromString("0.01")

type CallbackOutcome string

const (
	CallbackOutcomeProcessed            CallbackOutcome = "processed"
	CallbackOutcomeAlreadyProcessed     CallbackOutcome = "already_processed"
	CallbackOutcomeConcurrentProcessing CallbackOutcome = "concurrent_processing"
	CallbackOutcomeIgnored              CallbackOutcome = "ignored"
)

// CallbackResult describes what a callback did to the ledger.
//
//   - processed: Transaction is the freshly settled row, Settlement its audit.
//   - already_processed: Transaction is the row settled earlier with the same
//     operation id (EditorDate is the original settlement time).
//   - concurrent_processing: no settleable row could be locked.
//   - ignored: the processor status was not success; Status carries it.
type CallbackResult struct {
	Outcome     CallbackOutcome
	Status      string
	Transaction entities.VSTTransaction
	Settlement  entities.Settlement
}

// IVSTCallbackUseCase settles VST payment callbacks exactly once.
type IVSTCallbackUseCase interface {
	HandleCallback(ctx context.Context, n entities.CallbackNotification) (CallbackResult, error)
}

type VSTCallbackUseCase struct {
	txManager    interfaces.ITxManager
	transactions interfaces.IVSTTransactionRepository
	debtors      interfaces.IDebtorRepository
	accounts     interfaces.IServiceAccountRepository
	journal      interfaces.ICallbackJournal
	logger       *zap.Logger
	now          func() time.Time
}

var _ IVSTCallbackUseCase = (*VSTCallbackUseCase)(nil)

// NewVSTCallbackUseCase wires the callback flow. journal may be nil.
func NewVSTCallbackUseCase(
	txManager interfaces.ITxManager,
	transactions interfaces.IVSTTransactionRepository,
	debtors interfaces.IDebtorRepository,
	accounts interfaces.IServiceAccountRepository,
	journal interfaces.ICallbackJournal,
	logger *zap.Logger,
) *VSTCallbackUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VSTCallbackUseCase{
		txManager:    txManager,
		transactions: transactions,
		debtors:      debtors,
		accounts:     accounts,
		journal:      journal,
		logger:       logger,
		now:          time.Now,
	}
}

func (u *VSTCallbackUseCase) HandleCallback(ctx context.Context, n entities.CallbackNotification) (CallbackResult, error) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.ReceivedAt.IsZero() {
		n.ReceivedAt = u.now().UTC()
	}

	log := u.logger.With(
		zap.String("payment_id", n.PaymentID),
		zap.String("transaction_id", n.OperationID),
		zap.String("status", n.Status),
	)
	log.Info("vst callback received", zap.String("amount", n.AmountMinor.String()))

	if n.AmountMinor.IsZero() {
		log.Warn("vst callback with zero amount")
	}

	u.appendJournal(ctx, log, n)

	if !n.IsSuccess() {
		log.Info("vst callback ignored, status is not success")
		return CallbackResult{Outcome: CallbackOutcomeIgnored, Status: n.Status}, nil
	}

	var result CallbackResult
	err := u.txManager.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if n.OperationID != "" {
			// A duplicate delivery racing this one waits here, then sees the
			// committed settlement below.
			if err := u.transactions.LockOperationID(ctx, tx, n.OperationID); err != nil {
				return err
			}
			settled, err := u.transactions.FindSettledByOperationID(ctx, tx, n.OperationID)
			if err != nil {
				return fmt.Errorf("check operation id: %w", err)
			}
			if settled.ID != 0 {
				log.Info("vst callback already processed", zap.Int64("vst_transaction_id", settled.ID))
				result = CallbackResult{Outcome: CallbackOutcomeAlreadyProcessed, Status: n.Status, Transaction: settled}
				return nil
			}
		}

		row, err := u.transactions.LockPendingByAccountNumber(ctx, tx, n.PaymentID)
		if err != nil {
			return fmt.Errorf("lock transaction: %w", err)
		}
		if row.ID == 0 {
			log.Warn("no settleable vst transaction, assuming concurrent processing")
			result = CallbackResult{Outcome: CallbackOutcomeConcurrentProcessing, Status: n.Status}
			return nil
		}

		paid := n.AmountMajor()
		var settlement entities.Settlement
		switch target := entities.ClassifyPaymentID(n.PaymentID); target.Kind {
		case entities.PaymentKindTax:
			settlement, err = u.settleTax(ctx, tx, log, target, paid)
		default:
			settlement, err = u.settleService(ctx, tx, log, target, paid)
		}
		if err != nil {
			return err
		}
		settlement.OperationID = n.OperationID
		settlement.PaidAmount = paid
		settlement.SettledAt = u.now().UTC()

		info, err := json.Marshal(settlement)
		if err != nil {
			return fmt.Errorf("encode settlement: %w", err)
		}

		updated, err := u.transactions.MarkSuccess(ctx, tx, row.ID, n.OperationID, info)
		if err != nil {
			return fmt.Errorf("mark transaction %d success: %w", row.ID, err)
		}

		log.Info("vst transaction settled",
			zap.Int64("vst_transaction_id", updated.ID),
			zap.String("kind", string(settlement.Type)),
		)
		result = CallbackResult{Outcome: CallbackOutcomeProcessed, Status: n.Status, Transaction: updated, Settlement: settlement}
		return nil
	})
	if err != nil {
		log.Error("vst callback failed, rolled back", zap.Error(err))
		return CallbackResult{}, err
	}
	return result, nil
}

func (u *VSTCallbackUseCase) settleTax(ctx context.Context, tx pgx.Tx, log *zap.Logger, target entities.PaymentTarget, paid decimal.Decimal) (entities.Settlement, error) {
	if !target.TaxType.Valid() {
		return entities.Settlement{}, fmt.Errorf("%w: %d", ErrUnknownTaxType, target.TaxType)
	}

	debtorID, err := strconv.ParseInt(target.DebtorID, 10, 64)
	if err != nil {
		return entities.Settlement{}, fmt.Errorf("%w: %s", ErrDebtorNotFound, target.DebtorID)
	}

	debtor, err := u.debtors.GetByIDForUpdate(ctx, tx, debtorID)
	if err != nil {
		return entities.Settlement{}, fmt.Errorf("load debtor %d: %w", debtorID, err)
	}
	if debtor.ID == 0 {
		return entities.Settlement{}, fmt.Errorf("%w: %s", ErrDebtorNotFound, target.DebtorID)
	}

	oldDebt := debtor.Debt(target.TaxType)
	newDebt := oldDebt.Sub(paid)
	if newDebt.IsNegative() {
		newDebt = decimal.Zero
	}

	if err := u.debtors.UpdateDebt(ctx, tx, debtor.ID, target.TaxType, newDebt); err != nil {
		return entities.Settlement{}, fmt.Errorf("update debtor %d: %w", debtor.ID, err)
	}

	log.Info("tax debt settled",
		zap.Int64("debtor_id", debtor.ID),
		zap.String("debtor_name", debtor.Name),
		zap.Int("tax_type", int(target.TaxType)),
		zap.String("old_debt", oldDebt.String()),
		zap.String("paid", paid.String()),
		zap.String("new_debt", newDebt.String()),
	)

	return entities.Settlement{
		Type: entities.PaymentKindTax,
		TaxSettlement: &entities.TaxSettlement{
			DebtorID:     target.DebtorID,
			DebtorName:   debtor.Name,
			TaxType:      target.TaxType,
			FieldUpdated: target.TaxType.Column(),
			OldDebt:      oldDebt,
			NewDebt:      newDebt,
		},
	}, nil
}

func (u *VSTCallbackUseCase) settleService(ctx context.Context, tx pgx.Tx, log *zap.Logger, target entities.PaymentTarget, paid decimal.Decimal) (entities.Settlement, error) {
	account, err := u.accounts.GetEnabledByAccountNumber(ctx, tx, target.AccountNumber)
	if err != nil {
		return entities.Settlement{}, fmt.Errorf("load service account %s: %w", target.AccountNumber, err)
	}
	if account.ID == 0 {
		return entities.Settlement{}, fmt.Errorf("%w: %s", ErrServiceAccountNotFound, target.AccountNumber)
	}

	mismatch := account.Amount.Sub(paid).Abs().GreaterThan(amountMismatchTolerance)
	if mismatch {
		log.Warn("service payment amount mismatch",
			zap.String("account_number", account.AccountNumber),
			zap.String("expected", account.Amount.String()),
			zap.String("paid", paid.String()),
		)
	}

	log.Info("service payment settled",
		zap.String("account_number", account.AccountNumber),
		zap.String("service_name", account.ServiceName),
		zap.String("payer", account.Payer),
		zap.String("paid", paid.String()),
	)

	return entities.Settlement{
		Type: entities.PaymentKindService,
		ServiceSettlement: &entities.ServiceSettlement{
			AccountNumber:  account.AccountNumber,
			ServiceName:    account.ServiceName,
			Payer:          account.Payer,
			ExpectedAmount: account.Amount,
			AmountMismatch: mismatch,
		},
	}, nil
}

func (u *VSTCallbackUseCase) appendJournal(ctx context.Context, log *zap.Logger, n entities.CallbackNotification) {
	if u.journal == nil {
		return
	}
	if err := u.journal.Append(ctx, n); err != nil {
		log.Warn("callback journal append failed", zap.Error(err))
	}
}
