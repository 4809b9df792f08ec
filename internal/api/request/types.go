package request

import "time"

// CreateAccountRequest is the body for POST /accounts
type CreateAccountRequest struct {
	AccountID string `json:"account_id"`
	Password  string `json:"password"`
}

// AuthenticateRequest is the body for POST /accounts/{id}/authenticate
type AuthenticateRequest struct {
	Password string `json:"password"`
}

// AwardAssetRequest is the body for POST /accounts/{id}/assets
type AwardAssetRequest struct {
	AssetID string `json:"asset_id"`
	Name    string `json:"name"`
}

// SetLastAwardRequest is the body for PUT /accounts/{id}/last-award
type SetLastAwardRequest struct {
	LastAward time.Time `json:"last_award"`
}
