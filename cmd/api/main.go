package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"municipal_backoffice/internal/adapter/http/routes"
	"municipal_backoffice/internal/config"
	"municipal_backoffice/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           VST Payment Reconciliation API
// @version         1.0
// @description     VST payment callback reconciliation for the municipal back office (debtor taxes and service accounts) backed by Postgres.

// @host localhost:8080

// @BasePath  /

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	l, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = l.Sync() }()

	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg, l); err != nil {
		l.Fatal("server stopped", zap.Error(err))
	}
}
