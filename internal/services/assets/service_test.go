package assets

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/monstermint/backend/internal/dependencies/mocks"
	"github.com/monstermint/backend/internal/ledger"
	"github.com/monstermint/backend/internal/model"
	"github.com/monstermint/backend/internal/services/token"
	"github.com/monstermint/backend/internal/storage/memory"
	"github.com/monstermint/backend/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	ledger  *mocks.MockLedger
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.ledger = mocks.NewMockLedger()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	tokens := token.New(s.storage, s.ledger, testutil.NopLogger())
	s.service = New(s.storage, s.ledger, tokens, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) seedAccount(assetIDs ...model.AssetID) {
	if assetIDs == nil {
		assetIDs = []model.AssetID{}
	}
	_ = s.storage.CreateAccount(s.ctx, &model.Account{
		ID:           "alice",
		Passcode:     "deadbeef",
		SessionToken: "current-token",
		OwnedAssets:  assetIDs,
	})
	for _, id := range assetIDs {
		_ = s.storage.SaveAsset(s.ctx, &model.Asset{ID: id, Name: string(id)})
	}
}

// BurnAll tests

func (s *ServiceSuite) TestBurnAllClearsLocalAndBurnsRemote() {
	s.seedAccount("nft-1", "nft-2")

	err := s.service.BurnAll(s.ctx, "alice")
	s.Require().NoError(err)

	account, _ := s.storage.GetAccount(s.ctx, "alice")
	s.Empty(account.OwnedAssets)

	s.Require().Len(s.ledger.BurnCalls, 1)
	call := s.ledger.BurnCalls[0]
	s.Equal(model.AccountID("alice"), call.ID)
	s.Equal([]model.AssetID{"nft-1", "nft-2"}, call.AssetIDs)
	s.Equal("current-token", call.SessionToken)
}

func (s *ServiceSuite) TestBurnAllNoAssetsSkipsLedger() {
	s.seedAccount()

	err := s.service.BurnAll(s.ctx, "alice")
	s.Require().NoError(err)
	s.Empty(s.ledger.BurnCalls)
}

func (s *ServiceSuite) TestBurnAllRecoversFromOneAuthFailure() {
	s.seedAccount("nft-1")
	s.ledger.BurnErrs = []error{ledger.ErrAuthExpired}

	err := s.service.BurnAll(s.ctx, "alice")
	s.Require().NoError(err)

	// One refresh, two burn attempts, local list empty
	s.Len(s.ledger.IssueCalls, 1)
	s.Require().Len(s.ledger.BurnCalls, 2)
	s.Equal("current-token", s.ledger.BurnCalls[0].SessionToken)
	s.Equal("token-1", s.ledger.BurnCalls[1].SessionToken)

	account, _ := s.storage.GetAccount(s.ctx, "alice")
	s.Empty(account.OwnedAssets)

	stored, _ := s.storage.GetAccount(s.ctx, "alice")
	s.Equal("token-1", stored.SessionToken)
}

func (s *ServiceSuite) TestBurnAllSecondAuthFailureIsUpstream() {
	s.seedAccount("nft-1")
	s.ledger.BurnErrs = []error{ledger.ErrAuthExpired, ledger.ErrAuthExpired}

	err := s.service.BurnAll(s.ctx, "alice")
	s.Require().Error(err)

	var remoteErr *ledger.RemoteError
	s.ErrorAs(err, &remoteErr)

	// No unbounded retry: one refresh, two attempts total
	s.Len(s.ledger.IssueCalls, 1)
	s.Len(s.ledger.BurnCalls, 2)
}

func (s *ServiceSuite) TestBurnAllRefreshFailureIsUpstream() {
	s.seedAccount("nft-1")
	s.ledger.BurnErrs = []error{ledger.ErrAuthExpired}
	s.ledger.IssueErr = &ledger.RemoteError{Op: "issue", Status: 503, Body: "ledger down"}

	err := s.service.BurnAll(s.ctx, "alice")
	s.Require().Error(err)

	var remoteErr *ledger.RemoteError
	s.Require().ErrorAs(err, &remoteErr)
	s.Equal(503, remoteErr.Status)
	s.Len(s.ledger.BurnCalls, 1)
}

func (s *ServiceSuite) TestBurnAllRemoteFailureLeavesLocalCleared() {
	// The local clear is optimistic; a remote failure afterwards leaves
	// the local model ahead of the ledger and the error surfaced
	s.seedAccount("nft-1")
	s.ledger.BurnErrs = []error{&ledger.RemoteError{Op: "burn", Status: 500, Body: "chain fork"}}

	err := s.service.BurnAll(s.ctx, "alice")
	s.Require().Error(err)

	account, _ := s.storage.GetAccount(s.ctx, "alice")
	s.Empty(account.OwnedAssets)
}

func (s *ServiceSuite) TestBurnAllNotFound() {
	err := s.service.BurnAll(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrAccountNotFound)
}

// Award tests

func (s *ServiceSuite) TestAwardAppendsAndStampsLastAward() {
	s.seedAccount("nft-1")

	err := s.service.Award(s.ctx, "alice", &model.Asset{ID: "nft-2", Name: "Grumblefang"})
	s.Require().NoError(err)

	account, _ := s.storage.GetAccount(s.ctx, "alice")
	s.Equal([]model.AssetID{"nft-1", "nft-2"}, account.OwnedAssets)
	s.Require().NotNil(account.GameState.LastAward)
	s.Equal(s.clock.CurrentTime, *account.GameState.LastAward)

	asset, err := s.storage.GetAsset(s.ctx, "nft-2")
	s.Require().NoError(err)
	s.Equal("Grumblefang", asset.Name)
	s.Equal(s.clock.CurrentTime, asset.MintedAt)
}

func (s *ServiceSuite) TestAwardNotFound() {
	err := s.service.Award(s.ctx, "nonexistent", &model.Asset{ID: "nft-1"})
	s.ErrorIs(err, model.ErrAccountNotFound)
}

// Owned tests

func (s *ServiceSuite) TestOwnedReturnsLocalAssets() {
	s.seedAccount("nft-1", "nft-2")

	assets, err := s.service.Owned(s.ctx, "alice")
	s.Require().NoError(err)
	s.Len(assets, 2)
}

func (s *ServiceSuite) TestOwnedRemoteQueriesLedger() {
	s.seedAccount()
	s.ledger.Assets = []ledger.RemoteAsset{{ID: "nft-9", Name: "Chainbeast"}}

	assets, err := s.service.OwnedRemote(s.ctx, "alice")
	s.Require().NoError(err)
	s.Require().Len(assets, 1)
	s.Equal(model.AssetID("nft-9"), assets[0].ID)
	s.Equal([]model.AccountID{"alice"}, s.ledger.OwnedCalls)
}

func (s *ServiceSuite) TestOwnedRemoteFailure() {
	s.ledger.OwnedErr = &ledger.RemoteError{Op: "assets", Status: 500, Body: "boom"}

	_, err := s.service.OwnedRemote(s.ctx, "alice")
	var remoteErr *ledger.RemoteError
	s.ErrorAs(err, &remoteErr)
}
