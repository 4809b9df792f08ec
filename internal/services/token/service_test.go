package token

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/monstermint/backend/internal/dependencies/mocks"
	"github.com/monstermint/backend/internal/ledger"
	"github.com/monstermint/backend/internal/model"
	"github.com/monstermint/backend/internal/storage/memory"
	"github.com/monstermint/backend/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	ledger  *mocks.MockLedger
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.ledger = mocks.NewMockLedger()
	s.service = New(s.storage, s.ledger, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) seedAccount() {
	_ = s.storage.CreateAccount(s.ctx, &model.Account{
		ID:           "alice",
		Passcode:     "deadbeef",
		SessionToken: "stale-token",
	})
}

// SessionToken tests

func (s *ServiceSuite) TestSessionToken() {
	s.seedAccount()

	tok, err := s.service.SessionToken(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("stale-token", tok)
}

func (s *ServiceSuite) TestSessionTokenNotFound() {
	_, err := s.service.SessionToken(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrAccountNotFound)
}

// Refresh tests

func (s *ServiceSuite) TestRefreshStoresNewToken() {
	s.seedAccount()

	tok, err := s.service.Refresh(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("token-1", tok)

	account, err := s.storage.GetAccount(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("token-1", account.SessionToken)
}

func (s *ServiceSuite) TestRefreshAuthenticatesWithPasscode() {
	s.seedAccount()

	_, err := s.service.Refresh(s.ctx, "alice")
	s.Require().NoError(err)

	s.Require().Len(s.ledger.IssueCalls, 1)
	s.Equal(model.AccountID("alice"), s.ledger.IssueCalls[0].ID)
	s.Equal("deadbeef", s.ledger.IssueCalls[0].Passcode)
}

func (s *ServiceSuite) TestRefreshFailureLeavesTokenUntouched() {
	s.seedAccount()
	s.ledger.IssueErr = &ledger.RemoteError{Op: "issue", Status: 503, Body: "ledger down"}

	_, err := s.service.Refresh(s.ctx, "alice")
	s.Require().Error(err)

	var remoteErr *ledger.RemoteError
	s.ErrorAs(err, &remoteErr)

	account, _ := s.storage.GetAccount(s.ctx, "alice")
	s.Equal("stale-token", account.SessionToken)
}

func (s *ServiceSuite) TestRefreshNotFound() {
	_, err := s.service.Refresh(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrAccountNotFound)
}

// WithAuthRetry tests

func (s *ServiceSuite) TestWithAuthRetrySucceedsFirstTry() {
	s.seedAccount()

	var seen []string
	err := s.service.WithAuthRetry(s.ctx, "alice", func(tok string) error {
		seen = append(seen, tok)
		return nil
	})
	s.Require().NoError(err)
	s.Equal([]string{"stale-token"}, seen)
	s.Empty(s.ledger.IssueCalls)
}

func (s *ServiceSuite) TestWithAuthRetryRefreshesOnceOnAuthFailure() {
	s.seedAccount()

	var seen []string
	err := s.service.WithAuthRetry(s.ctx, "alice", func(tok string) error {
		seen = append(seen, tok)
		if len(seen) == 1 {
			return ledger.ErrAuthExpired
		}
		return nil
	})
	s.Require().NoError(err)
	s.Equal([]string{"stale-token", "token-1"}, seen)
	s.Len(s.ledger.IssueCalls, 1)
}

func (s *ServiceSuite) TestWithAuthRetrySecondAuthFailureIsTerminal() {
	s.seedAccount()

	calls := 0
	err := s.service.WithAuthRetry(s.ctx, "alice", func(string) error {
		calls++
		return ledger.ErrAuthExpired
	})
	s.Require().Error(err)

	// Exactly one refresh and one retry, then surfaced as upstream
	s.Equal(2, calls)
	s.Len(s.ledger.IssueCalls, 1)

	var remoteErr *ledger.RemoteError
	s.Require().ErrorAs(err, &remoteErr)
	s.Equal(401, remoteErr.Status)
	s.False(errors.Is(err, ledger.ErrAuthExpired))
}

func (s *ServiceSuite) TestWithAuthRetryRefreshFailure() {
	s.seedAccount()
	s.ledger.IssueErr = &ledger.RemoteError{Op: "issue", Status: 503, Body: "ledger down"}

	calls := 0
	err := s.service.WithAuthRetry(s.ctx, "alice", func(string) error {
		calls++
		return ledger.ErrAuthExpired
	})
	s.Require().Error(err)
	s.Equal(1, calls)

	var remoteErr *ledger.RemoteError
	s.Require().ErrorAs(err, &remoteErr)
	s.Equal(503, remoteErr.Status)
}

func (s *ServiceSuite) TestWithAuthRetryPassesThroughOtherErrors() {
	s.seedAccount()

	boom := &ledger.RemoteError{Op: "burn", Status: 500, Body: "boom"}
	err := s.service.WithAuthRetry(s.ctx, "alice", func(string) error {
		return boom
	})
	s.ErrorIs(err, error(boom))
	s.Empty(s.ledger.IssueCalls)
}
