package memory

import (
	"context"
	"sync"

	"github.com/monstermint/backend/internal/model"
	"github.com/monstermint/backend/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	accounts map[model.AccountID]*model.Account
	assets   map[model.AssetID]*model.Asset
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		accounts: make(map[model.AccountID]*model.Account),
		assets:   make(map[model.AssetID]*model.Asset),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Account operations

func (s *Storage) CreateAccount(ctx context.Context, account *model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[account.ID]; ok {
		return model.ErrAccountExists
	}
	s.accounts[account.ID] = account
	return nil
}

func (s *Storage) SaveAccount(ctx context.Context, account *model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[account.ID] = account
	return nil
}

func (s *Storage) GetAccount(ctx context.Context, id model.AccountID) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[id]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	return account, nil
}

func (s *Storage) ListAccountIDs(ctx context.Context) ([]model.AccountID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]model.AccountID, 0, len(s.accounts))
	for id := range s.accounts {
		ids = append(ids, id)
	}
	return ids, nil
}

// Asset operations

func (s *Storage) SaveAsset(ctx context.Context, asset *model.Asset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assets[asset.ID] = asset
	return nil
}

func (s *Storage) GetAsset(ctx context.Context, id model.AssetID) (*model.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	asset, ok := s.assets[id]
	if !ok {
		return nil, model.ErrAssetNotFound
	}
	return asset, nil
}

func (s *Storage) GetAssetsForAccount(ctx context.Context, id model.AccountID) ([]*model.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[id]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	assets := make([]*model.Asset, 0, len(account.OwnedAssets))
	for _, assetID := range account.OwnedAssets {
		if asset, ok := s.assets[assetID]; ok {
			assets = append(assets, asset)
		}
	}
	return assets, nil
}
