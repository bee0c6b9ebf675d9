package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"mandate/config"
	"mandate/internal/core"
	"mandate/internal/crypto"
	"mandate/internal/export"
	"mandate/internal/http"
	"mandate/internal/sqlite"
)

func main() {
	ctx := context.Background()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.Level(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	logger.InfoContext(ctx, "Starting application")

	dbClient, err := sqlite.NewClient(cfg.Database)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create db client", "error", err)
		os.Exit(1)
	}

	if err = dbClient.Migrate(); err != nil {
		slog.ErrorContext(ctx, "failed to migrate database", "error", err)
		os.Exit(1)
	}

	keys, err := crypto.NewStaticKeyProvider(cfg.Crypto)
	if err != nil {
		slog.ErrorContext(ctx, "failed to init key provider", "error", err)
		os.Exit(1)
	}

	db := dbClient.DB()
	mandateStore := sqlite.NewMandateStore(db)
	runStore := sqlite.NewRunStore(db)
	auditStore := sqlite.NewAuditStore(db)
	bankStore := sqlite.NewBankStore(db)
	identityStore := sqlite.NewIdentityStore(db)

	cipher := crypto.NewFieldCipher(keys)
	validator := core.NewValidator(bankStore)
	service := core.NewService(mandateStore, auditStore, identityStore, cipher, validator)
	assembler := export.NewAssembler(cipher, validator, identityStore, cfg.Export)
	runner := export.NewRunner(service, assembler, runStore, nil, logger)

	mandateHandler := http.NewMandateHandler(service, logger)
	runHandler := http.NewDebitRunHandler(runner, runStore, cfg.Export, logger)
	httpServer := http.NewServer(mandateHandler, runHandler, logger, cfg.HTTP)

	if err = httpServer.Start(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to start http server", "error", err)
		os.Exit(1)
	}

	<-stop

	logger.InfoContext(ctx, "Shutting down...")

	if err = httpServer.Stop(ctx); err != nil {
		logger.ErrorContext(ctx, "Error stopping HTTP server", "error", err)
	}

	if err = dbClient.Close(); err != nil {
		logger.ErrorContext(ctx, "Error closing database", "error", err)
	}

	logger.InfoContext(ctx, "Application shutdown complete")
}
