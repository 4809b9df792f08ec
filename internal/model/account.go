package model

import "time"

// AccountID uniquely identifies a player account across the system.
// It doubles as the account's identity on the ledger.
type AccountID string

// GameState holds the gameplay flags attached to an account.
// It is read and written as a whole alongside the account record.
type GameState struct {
	IsWinner  bool
	LastAward *time.Time // nil until the first asset award
}

// Account is the durable local record for a player.
//
// The ledger is the source of truth for balances and asset ownership;
// the local record can lag behind it after a partial failure.
type Account struct {
	ID AccountID

	// PasswordHash is a bcrypt hash. It is never compared by equality,
	// only through the credential service's verify operation.
	PasswordHash string

	// Passcode is the long-lived secret used to obtain ledger session
	// tokens. Set once at creation, never rotated, never returned to
	// API callers.
	Passcode string

	// SessionToken is the current bearer credential for sensitive
	// ledger calls. Replaced as a whole value on refresh; staleness is
	// only discovered when the ledger rejects it.
	SessionToken string

	// LedgerAddress and LedgerRef are opaque identifiers assigned by
	// the ledger at account creation.
	LedgerAddress string
	LedgerRef     string

	// OwnedAssets lists the assets attributed to this account locally,
	// in award order.
	OwnedAssets []AssetID

	GameState GameState

	CreatedAt time.Time
}
