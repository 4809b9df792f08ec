package account

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/monstermint/backend/internal/dependencies/clock"
	"github.com/monstermint/backend/internal/ledger"
	"github.com/monstermint/backend/internal/model"
	"github.com/monstermint/backend/internal/services/credential"
	"github.com/monstermint/backend/internal/storage"
)

// Service provisions accounts against the remote ledger and answers
// credential checks for existing ones
type Service struct {
	storage     storage.Storage
	ledger      ledger.Client
	credentials *credential.Service
	clock       clock.Clock
	logger      *slog.Logger
}

// New creates a new account service
func New(store storage.Storage, ledgerClient ledger.Client, credentials *credential.Service, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage:     store,
		ledger:      ledgerClient,
		credentials: credentials,
		clock:       clk,
		logger:      logger,
	}
}

// Create provisions a new account: remote ledger account first, local
// record second. No local record is written if the ledger call fails,
// so a failed creation never leaves an orphaned local account.
//
// The inverse window exists: a local persist failure after remote
// success orphans the remote account. There is no compensating remote
// action; the error is surfaced so operators can reconcile.
func (s *Service) Create(ctx context.Context, id model.AccountID, password string) (*model.Account, error) {
	// Early conflict check; the storage insert below enforces
	// uniqueness for races
	if _, err := s.storage.GetAccount(ctx, id); err == nil {
		return nil, model.ErrAccountExists
	} else if !errors.Is(err, model.ErrAccountNotFound) {
		return nil, err
	}

	passwordHash, err := s.credentials.HashPassword(password)
	if err != nil {
		return nil, err
	}

	passcode, err := s.credentials.GeneratePasscode()
	if err != nil {
		return nil, err
	}

	initialBalance := s.credentials.InitialBalance(id)

	created, err := s.ledger.CreateAccount(ctx, id, passcode, initialBalance)
	if err != nil {
		return nil, err
	}

	account := &model.Account{
		ID:            id,
		PasswordHash:  passwordHash,
		Passcode:      passcode,
		SessionToken:  created.SessionToken,
		LedgerAddress: created.Address,
		LedgerRef:     created.Ref,
		OwnedAssets:   []model.AssetID{},
		GameState:     model.GameState{},
		CreatedAt:     s.clock.Now(),
	}

	if err := s.storage.CreateAccount(ctx, account); err != nil {
		s.logger.Warn("local persist failed after remote account creation, remote account orphaned",
			slog.String("account_id", string(id)),
			slog.String("ledger_address", created.Address),
			slog.String("error", err.Error()))
		return nil, err
	}

	s.logger.Info("account provisioned",
		slog.String("account_id", string(id)),
		slog.String("ledger_address", created.Address),
		slog.Int("initial_balance", initialBalance))
	return account, nil
}

// Get returns the stored account record
func (s *Service) Get(ctx context.Context, id model.AccountID) (*model.Account, error) {
	return s.storage.GetAccount(ctx, id)
}

// List returns all account ids except the operator account, sorted
func (s *Service) List(ctx context.Context) ([]model.AccountID, error) {
	ids, err := s.storage.ListAccountIDs(ctx)
	if err != nil {
		return nil, err
	}

	operator := s.credentials.OperatorAccount()
	listed := make([]model.AccountID, 0, len(ids))
	for _, id := range ids {
		if id != operator {
			listed = append(listed, id)
		}
	}
	sort.Slice(listed, func(i, j int) bool { return listed[i] < listed[j] })
	return listed, nil
}

// VerifyCredentials reports whether the password matches the account's
// stored hash
func (s *Service) VerifyCredentials(ctx context.Context, id model.AccountID, password string) (bool, error) {
	account, err := s.storage.GetAccount(ctx, id)
	if err != nil {
		return false, err
	}
	return s.credentials.VerifyPassword(password, account.PasswordHash)
}
