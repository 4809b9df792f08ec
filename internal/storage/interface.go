package storage

import (
	"context"

	"github.com/monstermint/backend/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Account operations

	// CreateAccount inserts a new account record. Returns
	// model.ErrAccountExists if the account id is already taken; this
	// is the uniqueness guarantee provisioning relies on.
	CreateAccount(ctx context.Context, account *model.Account) error

	// SaveAccount overwrites an existing account record as a whole.
	SaveAccount(ctx context.Context, account *model.Account) error

	// GetAccount returns the account or model.ErrAccountNotFound.
	GetAccount(ctx context.Context, id model.AccountID) (*model.Account, error)

	// ListAccountIDs returns the ids of all stored accounts.
	ListAccountIDs(ctx context.Context) ([]model.AccountID, error)

	// Asset operations

	SaveAsset(ctx context.Context, asset *model.Asset) error
	GetAsset(ctx context.Context, id model.AssetID) (*model.Asset, error)

	// GetAssetsForAccount resolves the account's owned-asset references
	// to asset records, preserving award order. References whose asset
	// record is missing are skipped.
	GetAssetsForAccount(ctx context.Context, id model.AccountID) ([]*model.Asset, error)
}
