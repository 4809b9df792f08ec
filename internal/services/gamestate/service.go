package gamestate

import (
	"context"
	"log/slog"
	"time"

	"github.com/monstermint/backend/internal/dependencies/clock"
	"github.com/monstermint/backend/internal/model"
	"github.com/monstermint/backend/internal/storage"
)

// Service reads and writes the gameplay flags on an account
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new game state service
func New(store storage.Storage, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		clock:   clk,
		logger:  logger,
	}
}

// SetWinner marks the account as the winner
func (s *Service) SetWinner(ctx context.Context, id model.AccountID) error {
	account, err := s.storage.GetAccount(ctx, id)
	if err != nil {
		return err
	}

	account.GameState.IsWinner = true
	if err := s.storage.SaveAccount(ctx, account); err != nil {
		return err
	}

	s.logger.Info("winner status set", slog.String("account_id", string(id)))
	return nil
}

// KingAsset returns the winner's crowning asset: the first asset the
// account owns. Returns nil if the account has not won, or has won but
// owns nothing.
func (s *Service) KingAsset(ctx context.Context, id model.AccountID) (*model.Asset, error) {
	account, err := s.storage.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}
	if !account.GameState.IsWinner {
		return nil, nil
	}

	assets, err := s.storage.GetAssetsForAccount(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(assets) == 0 {
		return nil, nil
	}
	return assets[0], nil
}

// LastAward returns when the account last received an asset, or nil if
// it never has
func (s *Service) LastAward(ctx context.Context, id model.AccountID) (*time.Time, error) {
	account, err := s.storage.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}
	return account.GameState.LastAward, nil
}

// SetLastAward records the given time as the account's last award
func (s *Service) SetLastAward(ctx context.Context, id model.AccountID, t time.Time) error {
	account, err := s.storage.GetAccount(ctx, id)
	if err != nil {
		return err
	}

	account.GameState.LastAward = &t
	return s.storage.SaveAccount(ctx, account)
}

// TouchLastAward records the current time as the account's last award
func (s *Service) TouchLastAward(ctx context.Context, id model.AccountID) error {
	return s.SetLastAward(ctx, id, s.clock.Now())
}
