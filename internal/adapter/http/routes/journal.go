package routes

import (
	"context"

	"municipal_backoffice/internal/adapter/persistence/repository"
	"municipal_backoffice/internal/config"
	"municipal_backoffice/internal/infrastructure/database"
	"municipal_backoffice/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// NewCallbackJournal builds the journal selected by CALLBACK_JOURNAL.
// It returns a nil journal for "none"; close is always safe to call.
func NewCallbackJournal(ctx context.Context, cfg *config.Config, logger *zap.Logger) (interfaces.ICallbackJournal, func(), error) {
	switch cfg.CallbackJournal {
	case config.JournalDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("callback journal enabled", zap.String("backend", config.JournalDynamoDB))
		return repository.NewCallbackJournalDynamoRepository(ddb), func() {}, nil
	case config.JournalBolt:
		j, err := repository.NewCallbackJournalBoltRepository(cfg.JournalBoltPath)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("callback journal enabled", zap.String("backend", config.JournalBolt), zap.String("path", cfg.JournalBoltPath))
		return j, func() { _ = j.Close() }, nil
	default:
		return nil, func() {}, nil
	}
}
