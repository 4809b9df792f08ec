package response

import (
	"time"

	"github.com/monstermint/backend/internal/model"
)

// AccountResponse is the public view of an account. The password hash
// and ledger passcode are never returned.
type AccountResponse struct {
	AccountID     string    `json:"account_id"`
	LedgerAddress string    `json:"ledger_address"`
	LedgerRef     string    `json:"ledger_ref"`
	IsWinner      bool      `json:"is_winner"`
	CreatedAt     time.Time `json:"created_at"`
}

// AccountFromModel converts a model account to its API representation
func AccountFromModel(account *model.Account) AccountResponse {
	return AccountResponse{
		AccountID:     string(account.ID),
		LedgerAddress: account.LedgerAddress,
		LedgerRef:     account.LedgerRef,
		IsWinner:      account.GameState.IsWinner,
		CreatedAt:     account.CreatedAt,
	}
}

// AccountListResponse lists account ids
type AccountListResponse struct {
	Accounts []string `json:"accounts"`
}

// AuthenticateResponse reports a credential check outcome
type AuthenticateResponse struct {
	Authenticated bool `json:"authenticated"`
}

// SessionResponse carries a ledger session token
type SessionResponse struct {
	SessionToken string `json:"session_token"`
}

// AssetResponse is the public view of an asset
type AssetResponse struct {
	AssetID  string    `json:"asset_id"`
	Name     string    `json:"name"`
	MintedAt time.Time `json:"minted_at"`
}

// AssetFromModel converts a model asset to its API representation
func AssetFromModel(asset *model.Asset) AssetResponse {
	return AssetResponse{
		AssetID:  string(asset.ID),
		Name:     asset.Name,
		MintedAt: asset.MintedAt,
	}
}

// AssetsFromModels converts a slice of model assets
func AssetsFromModels(assets []*model.Asset) []AssetResponse {
	out := make([]AssetResponse, 0, len(assets))
	for _, a := range assets {
		out = append(out, AssetFromModel(a))
	}
	return out
}

// WinnerResponse carries the winner's crowning asset, or null
type WinnerResponse struct {
	KingAsset *AssetResponse `json:"king_asset"`
}

// LastAwardResponse carries the last award time, or null
type LastAwardResponse struct {
	LastAward *time.Time `json:"last_award"`
}

// HealthResponse reports server health
type HealthResponse struct {
	Status string `json:"status"`
}
