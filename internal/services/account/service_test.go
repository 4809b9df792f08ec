package account

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/monstermint/backend/internal/dependencies/mocks"
	"github.com/monstermint/backend/internal/dependencies/random"
	"github.com/monstermint/backend/internal/ledger"
	"github.com/monstermint/backend/internal/model"
	"github.com/monstermint/backend/internal/services/credential"
	"github.com/monstermint/backend/internal/storage/memory"
	"github.com/monstermint/backend/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage     *memory.Storage
	ledger      *mocks.MockLedger
	clock       *mocks.MockClock
	credentials *credential.Service
	service     *Service
	ctx         context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.ledger = mocks.NewMockLedger()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	cfg := credential.DefaultConfig()
	cfg.OperatorAccount = "operator"
	cfg.BcryptCost = bcrypt.MinCost
	s.credentials = credential.New(random.New(), cfg)

	s.service = New(s.storage, s.ledger, s.credentials, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

// Create tests

func (s *ServiceSuite) TestCreateProvisionsAccount() {
	account, err := s.service.Create(s.ctx, "alice", "pw1")
	s.Require().NoError(err)

	s.Equal(model.AccountID("alice"), account.ID)
	s.Equal("token-0", account.SessionToken)
	s.Equal("0xabc", account.LedgerAddress)
	s.Equal("chain-main", account.LedgerRef)
	s.Empty(account.OwnedAssets)
	s.False(account.GameState.IsWinner)
	s.Nil(account.GameState.LastAward)
	s.Equal(s.clock.CurrentTime, account.CreatedAt)
}

func (s *ServiceSuite) TestCreatePersistsAccount() {
	_, err := s.service.Create(s.ctx, "alice", "pw1")
	s.Require().NoError(err)

	stored, err := s.storage.GetAccount(s.ctx, "alice")
	s.Require().NoError(err)

	ok, err := s.credentials.VerifyPassword("pw1", stored.PasswordHash)
	s.Require().NoError(err)
	s.True(ok)
}

func (s *ServiceSuite) TestCreateSendsPasscodeAndBalanceToLedger() {
	account, err := s.service.Create(s.ctx, "alice", "pw1")
	s.Require().NoError(err)

	s.Require().Len(s.ledger.CreateCalls, 1)
	call := s.ledger.CreateCalls[0]
	s.Equal(model.AccountID("alice"), call.ID)
	s.Equal(account.Passcode, call.Passcode)
	s.Len(call.Passcode, 40) // 20 random bytes, hex-encoded
	s.Equal(1, call.InitialBalance)
}

func (s *ServiceSuite) TestCreateOperatorGetsElevatedBalance() {
	_, err := s.service.Create(s.ctx, "operator", "pw1")
	s.Require().NoError(err)

	s.Require().Len(s.ledger.CreateCalls, 1)
	s.Equal(10000, s.ledger.CreateCalls[0].InitialBalance)
}

func (s *ServiceSuite) TestCreatePasscodesDiffer() {
	a1, err := s.service.Create(s.ctx, "alice", "pw1")
	s.Require().NoError(err)
	a2, err := s.service.Create(s.ctx, "bob", "pw2")
	s.Require().NoError(err)

	s.NotEqual(a1.Passcode, a2.Passcode)
}

func (s *ServiceSuite) TestCreateRemoteFailureWritesNothingLocally() {
	s.ledger.CreateErr = &ledger.RemoteError{Op: "create", Status: 500, Body: "chain unavailable"}

	_, err := s.service.Create(s.ctx, "alice", "pw1")
	s.Require().Error(err)

	var remoteErr *ledger.RemoteError
	s.ErrorAs(err, &remoteErr)

	_, err = s.storage.GetAccount(s.ctx, "alice")
	s.ErrorIs(err, model.ErrAccountNotFound)

	ids, _ := s.storage.ListAccountIDs(s.ctx)
	s.Empty(ids)
}

func (s *ServiceSuite) TestCreateDuplicateFailsBeforeLedgerCall() {
	_, err := s.service.Create(s.ctx, "alice", "pw1")
	s.Require().NoError(err)

	_, err = s.service.Create(s.ctx, "alice", "pw2")
	s.ErrorIs(err, model.ErrAccountExists)
	s.Len(s.ledger.CreateCalls, 1)
}

// VerifyCredentials tests

func (s *ServiceSuite) TestVerifyCredentials() {
	_, err := s.service.Create(s.ctx, "alice", "pw1")
	s.Require().NoError(err)

	ok, err := s.service.VerifyCredentials(s.ctx, "alice", "pw1")
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.service.VerifyCredentials(s.ctx, "alice", "wrong")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *ServiceSuite) TestVerifyCredentialsNotFound() {
	_, err := s.service.VerifyCredentials(s.ctx, "nonexistent", "pw1")
	s.ErrorIs(err, model.ErrAccountNotFound)
}

func (s *ServiceSuite) TestVerifyCredentialsCorruptHash() {
	_ = s.storage.CreateAccount(s.ctx, &model.Account{ID: "mangled", PasswordHash: "garbage"})

	_, err := s.service.VerifyCredentials(s.ctx, "mangled", "pw1")
	s.ErrorIs(err, model.ErrCorruptCredential)
}

// List tests

func (s *ServiceSuite) TestListHidesOperatorAccount() {
	_, _ = s.service.Create(s.ctx, "operator", "pw")
	_, _ = s.service.Create(s.ctx, "bob", "pw")
	_, _ = s.service.Create(s.ctx, "alice", "pw")

	ids, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Equal([]model.AccountID{"alice", "bob"}, ids)
}

func (s *ServiceSuite) TestListEmpty() {
	ids, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(ids)
}
