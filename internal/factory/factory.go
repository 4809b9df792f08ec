package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/monstermint/backend/internal/dependencies/clock"
	"github.com/monstermint/backend/internal/dependencies/random"
	"github.com/monstermint/backend/internal/ledger"
	"github.com/monstermint/backend/internal/services/account"
	"github.com/monstermint/backend/internal/services/assets"
	"github.com/monstermint/backend/internal/services/credential"
	"github.com/monstermint/backend/internal/services/gamestate"
	"github.com/monstermint/backend/internal/services/token"
	"github.com/monstermint/backend/internal/storage"
	"github.com/monstermint/backend/internal/storage/memory"
	redisstorage "github.com/monstermint/backend/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Ledger ledger.Client
	Clock  clock.Clock
	Random random.Random

	// Services
	CredentialService *credential.Service
	TokenService      *token.Service
	AccountService    *account.Service
	AssetsService     *assets.Service
	GameStateService  *gamestate.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// LedgerConfig holds ledger API connection settings (BaseURL required)
	LedgerConfig ledger.Config
	// CredentialConfig holds the credential and balance policy
	// If zero value, defaults to credential.DefaultConfig()
	CredentialConfig credential.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	if cfg.LedgerConfig.BaseURL == "" {
		return nil, errors.New("LedgerConfig.BaseURL is required")
	}
	ledgerClient := ledger.NewHTTPClient(cfg.LedgerConfig)

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	return newWithDependencies(store, ledgerClient, clk, rnd, cfg.CredentialConfig, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, ledgerClient ledger.Client, clk clock.Clock, rnd random.Random, credCfg credential.Config, logger *slog.Logger) *App {
	// Create services
	credentialService := credential.New(rnd, credCfg)
	tokenService := token.New(store, ledgerClient, logger)
	accountService := account.New(store, ledgerClient, credentialService, clk, logger)
	assetsService := assets.New(store, ledgerClient, tokenService, clk, logger)
	gameStateService := gamestate.New(store, clk, logger)

	return &App{
		Storage:           store,
		Ledger:            ledgerClient,
		Clock:             clk,
		Random:            rnd,
		CredentialService: credentialService,
		TokenService:      tokenService,
		AccountService:    accountService,
		AssetsService:     assetsService,
		GameStateService:  gameStateService,
	}
}
