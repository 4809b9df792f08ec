package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/monstermint/backend/internal/model"
)

// ErrAuthExpired is returned when the ledger rejects the session token
// presented on a sensitive call. It is the single trigger for the
// refresh-and-retry protocol in the token service and is never surfaced
// to API callers directly.
var ErrAuthExpired = errors.New("ledger rejected session token")

// RemoteError is any non-success, non-auth-failure outcome reported by
// the ledger. The remote status and diagnostic body are preserved so
// operators can see exactly what the ledger said.
type RemoteError struct {
	Op     string
	Status int
	Body   string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("ledger %s: remote status %d: %s", e.Op, e.Status, e.Body)
}

// CreatedAccount is the ledger's response to a successful account creation.
type CreatedAccount struct {
	SessionToken string
	Address      string
	Ref          string
}

// RemoteAsset describes one asset as the ledger sees it.
type RemoteAsset struct {
	ID   model.AssetID
	Name string
}

// Client is the consumed capability set of the remote ledger service.
//
// Implementations report the fixed authentication-failure status as
// ErrAuthExpired and every other non-success status as a *RemoteError;
// a nil error always means the remote reported success.
type Client interface {
	// CreateAccount mints a remote account for id with the given initial
	// balance. The passcode becomes the account's session-issuing secret.
	CreateAccount(ctx context.Context, id model.AccountID, passcode string, initialBalance int) (*CreatedAccount, error)

	// IssueSession issues a fresh session token for id, authenticated by
	// the account's passcode.
	IssueSession(ctx context.Context, id model.AccountID, passcode string) (string, error)

	// OwnedAssets returns the assets the ledger currently attributes to id.
	OwnedAssets(ctx context.Context, id model.AccountID) ([]RemoteAsset, error)

	// BurnAssets destroys the given assets owned by id. Requires a valid
	// session token.
	BurnAssets(ctx context.Context, id model.AccountID, assetIDs []model.AssetID, sessionToken string) error
}
