package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "municipal_backoffice/docs"
	"municipal_backoffice/internal/adapter/http/handlers"
	"municipal_backoffice/internal/adapter/persistence/repository"
	"municipal_backoffice/internal/config"
	"municipal_backoffice/internal/infrastructure/database"
	"municipal_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.New()

// Run wires the VST reconciliation service and serves it on cfg.AppPort.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	setMiddlewares(router, logger.Named("http"))

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	cleanup, err := getRoutes(ctx, router, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	logger.Info("http server started", zap.String("port", cfg.AppPort))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to startup the application: %w", err)
	case <-ctx.Done():
		logger.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func getRoutes(ctx context.Context, r *gin.Engine, cfg *config.Config, logger *zap.Logger) (func(), error) {
	pool, err := database.NewPostgresPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	journal, closeJournal, err := NewCallbackJournal(ctx, cfg, logger)
	if err != nil {
		pool.Close()
		return nil, err
	}

	txManager := database.NewTxManager(pool, logger)
	transactionRepo := repository.NewVSTTransactionPgRepository(pool)
	debtorRepo := repository.NewDebtorPgRepository()
	accountRepo := repository.NewServiceAccountPgRepository()

	usecaseLogger := logger.Named("vst.usecase")
	callbackUseCase := usecase.NewVSTCallbackUseCase(txManager, transactionRepo, debtorRepo, accountRepo, journal, usecaseLogger)
	transactionUseCase := usecase.NewVSTTransactionUseCase(transactionRepo, journal, usecaseLogger)

	handlerLogger := logger.Named("vst.handler")
	addPingRoutes(r, handlers.NewHealthHandler(pool))
	addVSTRoutes(r,
		handlers.NewVSTCallbackHandler(callbackUseCase, handlerLogger),
		handlers.NewVSTTransactionHandler(transactionUseCase, cfg.VSTExpiryHours, handlerLogger),
	)

	return func() {
		closeJournal()
		pool.Close()
	}, nil
}

func setMiddlewares(r *gin.Engine, logger *zap.Logger) {
	r.Use(requestLogger(logger))
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(500)
	}))
}
