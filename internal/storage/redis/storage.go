package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/monstermint/backend/internal/model"
	"github.com/monstermint/backend/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Account operations

func (s *Storage) CreateAccount(ctx context.Context, account *model.Account) error {
	data, err := json.Marshal(account)
	if err != nil {
		return err
	}

	// SETNX gives the insert its uniqueness guarantee
	set, err := s.client.SetNX(ctx, accountKey(account.ID), data, 0).Result()
	if err != nil {
		return err
	}
	if !set {
		return model.ErrAccountExists
	}

	return s.client.SAdd(ctx, accountIndexKey(), string(account.ID)).Err()
}

func (s *Storage) SaveAccount(ctx context.Context, account *model.Account) error {
	data, err := json.Marshal(account)
	if err != nil {
		return err
	}

	// Pipeline keeps the record and the id index in step
	pipe := s.client.Pipeline()
	pipe.Set(ctx, accountKey(account.ID), data, 0)
	pipe.SAdd(ctx, accountIndexKey(), string(account.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetAccount(ctx context.Context, id model.AccountID) (*model.Account, error) {
	data, err := s.client.Get(ctx, accountKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrAccountNotFound
		}
		return nil, err
	}

	var account model.Account
	if err := json.Unmarshal(data, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *Storage) ListAccountIDs(ctx context.Context) ([]model.AccountID, error) {
	members, err := s.client.SMembers(ctx, accountIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]model.AccountID, 0, len(members))
	for _, m := range members {
		ids = append(ids, model.AccountID(m))
	}
	return ids, nil
}

// Asset operations

func (s *Storage) SaveAsset(ctx context.Context, asset *model.Asset) error {
	data, err := json.Marshal(asset)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, assetKey(asset.ID), data, 0).Err()
}

func (s *Storage) GetAsset(ctx context.Context, id model.AssetID) (*model.Asset, error) {
	data, err := s.client.Get(ctx, assetKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrAssetNotFound
		}
		return nil, err
	}

	var asset model.Asset
	if err := json.Unmarshal(data, &asset); err != nil {
		return nil, err
	}
	return &asset, nil
}

func (s *Storage) GetAssetsForAccount(ctx context.Context, id model.AccountID) ([]*model.Asset, error) {
	account, err := s.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	assets := make([]*model.Asset, 0, len(account.OwnedAssets))
	for _, assetID := range account.OwnedAssets {
		asset, err := s.GetAsset(ctx, assetID)
		if err != nil {
			if errors.Is(err, model.ErrAssetNotFound) {
				continue
			}
			return nil, err
		}
		assets = append(assets, asset)
	}
	return assets, nil
}
