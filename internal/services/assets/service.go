package assets

import (
	"context"
	"log/slog"

	"github.com/monstermint/backend/internal/dependencies/clock"
	"github.com/monstermint/backend/internal/ledger"
	"github.com/monstermint/backend/internal/model"
	"github.com/monstermint/backend/internal/services/token"
	"github.com/monstermint/backend/internal/storage"
)

// Service keeps the local owned-asset list in step with the ledger
type Service struct {
	storage storage.Storage
	ledger  ledger.Client
	tokens  *token.Service
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new assets service
func New(store storage.Storage, ledgerClient ledger.Client, tokens *token.Service, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		ledger:  ledgerClient,
		tokens:  tokens,
		clock:   clk,
		logger:  logger,
	}
}

// Owned returns the account's assets from the local model
func (s *Service) Owned(ctx context.Context, id model.AccountID) ([]*model.Asset, error) {
	return s.storage.GetAssetsForAccount(ctx, id)
}

// OwnedRemote queries the ledger directly for the account's assets,
// bypassing the local model
func (s *Service) OwnedRemote(ctx context.Context, id model.AccountID) ([]*model.Asset, error) {
	remote, err := s.ledger.OwnedAssets(ctx, id)
	if err != nil {
		return nil, err
	}

	assets := make([]*model.Asset, 0, len(remote))
	for _, a := range remote {
		assets = append(assets, &model.Asset{ID: a.ID, Name: a.Name})
	}
	return assets, nil
}

// Award attributes a newly minted asset to the account and stamps the
// account's last-award time
func (s *Service) Award(ctx context.Context, id model.AccountID, asset *model.Asset) error {
	account, err := s.storage.GetAccount(ctx, id)
	if err != nil {
		return err
	}

	if asset.MintedAt.IsZero() {
		asset.MintedAt = s.clock.Now()
	}
	if err := s.storage.SaveAsset(ctx, asset); err != nil {
		return err
	}

	now := s.clock.Now()
	account.OwnedAssets = append(account.OwnedAssets, asset.ID)
	account.GameState.LastAward = &now
	if err := s.storage.SaveAccount(ctx, account); err != nil {
		return err
	}

	s.logger.Info("asset awarded",
		slog.String("account_id", string(id)),
		slog.String("asset_id", string(asset.ID)))
	return nil
}

// BurnAll destroys every asset the account owns, locally and on the
// ledger.
//
// The local list is cleared before the remote burn completes, matching
// the ledger's eventual outcome optimistically. A remote failure after
// the clear leaves the local model ahead of the ledger; the failure is
// returned with the remote diagnostic so operators can reconcile.
func (s *Service) BurnAll(ctx context.Context, id model.AccountID) error {
	account, err := s.storage.GetAccount(ctx, id)
	if err != nil {
		return err
	}

	assetIDs := account.OwnedAssets
	if len(assetIDs) == 0 {
		return nil
	}

	account.OwnedAssets = []model.AssetID{}
	if err := s.storage.SaveAccount(ctx, account); err != nil {
		return err
	}

	err = s.tokens.WithAuthRetry(ctx, id, func(sessionToken string) error {
		return s.ledger.BurnAssets(ctx, id, assetIDs, sessionToken)
	})
	if err != nil {
		s.logger.Warn("local assets cleared but remote burn failed",
			slog.String("account_id", string(id)),
			slog.Int("assets", len(assetIDs)),
			slog.String("error", err.Error()))
		return err
	}

	s.logger.Info("assets burned",
		slog.String("account_id", string(id)),
		slog.Int("assets", len(assetIDs)))
	return nil
}
