package token

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/monstermint/backend/internal/ledger"
	"github.com/monstermint/backend/internal/model"
	"github.com/monstermint/backend/internal/storage"
)

// Service owns the session-token field of an account. It is stateless
// over persisted state: tokens live on the account record and are
// refreshed through the ledger with the account's passcode.
type Service struct {
	storage storage.Storage
	ledger  ledger.Client
	logger  *slog.Logger
}

// New creates a new token service
func New(store storage.Storage, ledgerClient ledger.Client, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		ledger:  ledgerClient,
		logger:  logger,
	}
}

// SessionToken returns the account's current session token. The token
// may already be stale; staleness is only discovered when the ledger
// rejects it.
func (s *Service) SessionToken(ctx context.Context, id model.AccountID) (string, error) {
	account, err := s.storage.GetAccount(ctx, id)
	if err != nil {
		return "", err
	}
	return account.SessionToken, nil
}

// Refresh obtains a fresh session token from the ledger using the
// account's passcode and overwrites the stored token. On any ledger
// failure the stored token is left untouched and the failure returned
// unchanged.
//
// Concurrent refreshes may each store a distinct valid token; last
// write wins, which is fine because only the newest token is used.
func (s *Service) Refresh(ctx context.Context, id model.AccountID) (string, error) {
	account, err := s.storage.GetAccount(ctx, id)
	if err != nil {
		return "", err
	}

	newToken, err := s.ledger.IssueSession(ctx, id, account.Passcode)
	if err != nil {
		return "", err
	}

	account.SessionToken = newToken
	if err := s.storage.SaveAccount(ctx, account); err != nil {
		return "", err
	}

	s.logger.Info("session token refreshed", slog.String("account_id", string(id)))
	return newToken, nil
}

// WithAuthRetry runs op with the account's current session token. If
// the ledger rejects the token, it refreshes once and retries op once
// with the new token; a second rejection is terminal. The auth failure
// itself is never returned to the caller.
func (s *Service) WithAuthRetry(ctx context.Context, id model.AccountID, op func(sessionToken string) error) error {
	sessionToken, err := s.SessionToken(ctx, id)
	if err != nil {
		return err
	}

	err = op(sessionToken)
	if !errors.Is(err, ledger.ErrAuthExpired) {
		return err
	}

	s.logger.Info("session token rejected, refreshing", slog.String("account_id", string(id)))

	newToken, err := s.Refresh(ctx, id)
	if err != nil {
		return fmt.Errorf("refresh after rejected session token: %w", err)
	}

	err = op(newToken)
	if errors.Is(err, ledger.ErrAuthExpired) {
		// A freshly issued token was rejected; something is wrong on
		// the ledger side. Surface as an upstream failure, not another
		// retry.
		return &ledger.RemoteError{
			Op:     "auth retry",
			Status: http.StatusUnauthorized,
			Body:   "session token rejected again after refresh",
		}
	}
	return err
}
