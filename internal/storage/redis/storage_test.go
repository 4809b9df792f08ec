package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/monstermint/backend/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) account(id model.AccountID) *model.Account {
	return &model.Account{
		ID:            id,
		PasswordHash:  "$2a$10$hash",
		Passcode:      "deadbeef",
		SessionToken:  "token-0",
		LedgerAddress: "0xabc",
		LedgerRef:     "chain-main",
		CreatedAt:     time.Now().UTC(),
	}
}

// Account tests

func (s *StorageSuite) TestCreateAndGetAccount() {
	err := s.storage.CreateAccount(s.ctx, s.account("alice"))
	s.Require().NoError(err)

	account, err := s.storage.GetAccount(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.AccountID("alice"), account.ID)
	s.Equal("0xabc", account.LedgerAddress)
}

func (s *StorageSuite) TestCreateAccountDuplicateFails() {
	_ = s.storage.CreateAccount(s.ctx, s.account("alice"))

	other := s.account("alice")
	other.SessionToken = "token-9"
	err := s.storage.CreateAccount(s.ctx, other)
	s.ErrorIs(err, model.ErrAccountExists)

	// Original record untouched
	account, err := s.storage.GetAccount(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("token-0", account.SessionToken)
}

func (s *StorageSuite) TestGetAccountNotFound() {
	_, err := s.storage.GetAccount(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrAccountNotFound)
}

func (s *StorageSuite) TestSaveAccountOverwrites() {
	account := s.account("alice")
	_ = s.storage.CreateAccount(s.ctx, account)

	account.SessionToken = "token-1"
	account.OwnedAssets = []model.AssetID{"nft-1"}
	err := s.storage.SaveAccount(s.ctx, account)
	s.Require().NoError(err)

	got, err := s.storage.GetAccount(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("token-1", got.SessionToken)
	s.Equal([]model.AssetID{"nft-1"}, got.OwnedAssets)
}

func (s *StorageSuite) TestListAccountIDs() {
	_ = s.storage.CreateAccount(s.ctx, s.account("alice"))
	_ = s.storage.CreateAccount(s.ctx, s.account("bob"))

	ids, err := s.storage.ListAccountIDs(s.ctx)
	s.Require().NoError(err)
	s.ElementsMatch([]model.AccountID{"alice", "bob"}, ids)
}

// Asset tests

func (s *StorageSuite) TestSaveAndGetAsset() {
	minted := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	err := s.storage.SaveAsset(s.ctx, &model.Asset{ID: "nft-1", Name: "Grumblefang", MintedAt: minted})
	s.Require().NoError(err)

	got, err := s.storage.GetAsset(s.ctx, "nft-1")
	s.Require().NoError(err)
	s.Equal("Grumblefang", got.Name)
	s.True(got.MintedAt.Equal(minted))
}

func (s *StorageSuite) TestGetAssetNotFound() {
	_, err := s.storage.GetAsset(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrAssetNotFound)
}

func (s *StorageSuite) TestGetAssetsForAccount() {
	account := s.account("alice")
	account.OwnedAssets = []model.AssetID{"nft-1", "nft-2"}
	_ = s.storage.CreateAccount(s.ctx, account)
	_ = s.storage.SaveAsset(s.ctx, &model.Asset{ID: "nft-1", Name: "First"})
	_ = s.storage.SaveAsset(s.ctx, &model.Asset{ID: "nft-2", Name: "Second"})

	assets, err := s.storage.GetAssetsForAccount(s.ctx, "alice")
	s.Require().NoError(err)
	s.Require().Len(assets, 2)
	s.Equal(model.AssetID("nft-1"), assets[0].ID)
	s.Equal(model.AssetID("nft-2"), assets[1].ID)
}

func (s *StorageSuite) TestGetAssetsForAccountSkipsMissing() {
	account := s.account("alice")
	account.OwnedAssets = []model.AssetID{"nft-gone", "nft-1"}
	_ = s.storage.CreateAccount(s.ctx, account)
	_ = s.storage.SaveAsset(s.ctx, &model.Asset{ID: "nft-1", Name: "First"})

	assets, err := s.storage.GetAssetsForAccount(s.ctx, "alice")
	s.Require().NoError(err)
	s.Require().Len(assets, 1)
	s.Equal(model.AssetID("nft-1"), assets[0].ID)
}
