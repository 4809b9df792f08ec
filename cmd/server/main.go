package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/monstermint/backend/internal/api"
	"github.com/monstermint/backend/internal/factory"
	"github.com/monstermint/backend/internal/ledger"
	"github.com/monstermint/backend/internal/model"
	"github.com/monstermint/backend/internal/services/credential"
	redisstorage "github.com/monstermint/backend/internal/storage/redis"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Build factory config from environment
	ledgerCfg := ledger.DefaultConfig()
	ledgerCfg.BaseURL = os.Getenv("LEDGER_URL")
	ledgerCfg.APIKey = os.Getenv("LEDGER_API_KEY")
	if ledgerCfg.BaseURL == "" {
		logger.Error("LEDGER_URL is required")
		os.Exit(1)
	}

	credCfg := credential.DefaultConfig()
	if operator := os.Getenv("OPERATOR_ACCOUNT"); operator != "" {
		credCfg.OperatorAccount = model.AccountID(operator)
	}

	cfg := factory.Config{
		Logger:           logger,
		StorageType:      os.Getenv("STORAGE_TYPE"),
		LedgerConfig:     ledgerCfg,
		CredentialConfig: credCfg,
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:           logger,
		AccountService:   app.AccountService,
		TokenService:     app.TokenService,
		AssetsService:    app.AssetsService,
		GameStateService: app.GameStateService,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
