package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/monstermint/backend/internal/model"
)

// Config holds connection settings for the ledger HTTP API
type Config struct {
	// BaseURL is the root of the ledger API (e.g. https://ledger.example.com)
	BaseURL string

	// APIKey authenticates this backend to the ledger. Sent on every
	// request; distinct from per-account session tokens.
	APIKey string

	// Timeout bounds each ledger call. The ledger enforces its own
	// deadlines server-side; this only protects the local caller.
	Timeout time.Duration
}

// DefaultConfig returns sensible defaults for ledger configuration
func DefaultConfig() Config {
	return Config{
		Timeout: 30 * time.Second,
	}
}

// HTTPClient is the production Client implementation over the ledger's
// JSON HTTP API.
type HTTPClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// Ensure HTTPClient implements the interface
var _ Client = (*HTTPClient)(nil)

// NewHTTPClient creates a ledger client for the given configuration
func NewHTTPClient(cfg Config) *HTTPClient {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultConfig().Timeout
	}
	return &HTTPClient{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
	}
}

type createAccountRequest struct {
	AccountID      string `json:"account_id"`
	Passcode       string `json:"passcode"`
	InitialBalance int    `json:"initial_balance"`
}

type createAccountResponse struct {
	SessionToken string `json:"session_token"`
	Address      string `json:"address"`
	Ref          string `json:"ref"`
}

func (c *HTTPClient) CreateAccount(ctx context.Context, id model.AccountID, passcode string, initialBalance int) (*CreatedAccount, error) {
	req := createAccountRequest{
		AccountID:      string(id),
		Passcode:       passcode,
		InitialBalance: initialBalance,
	}

	var resp createAccountResponse
	if err := c.do(ctx, http.MethodPost, "/v1/accounts", "", req, http.StatusCreated, &resp); err != nil {
		return nil, err
	}

	return &CreatedAccount{
		SessionToken: resp.SessionToken,
		Address:      resp.Address,
		Ref:          resp.Ref,
	}, nil
}

type issueSessionRequest struct {
	Passcode string `json:"passcode"`
}

type issueSessionResponse struct {
	SessionToken string `json:"session_token"`
}

func (c *HTTPClient) IssueSession(ctx context.Context, id model.AccountID, passcode string) (string, error) {
	path := fmt.Sprintf("/v1/accounts/%s/sessions", id)

	var resp issueSessionResponse
	if err := c.do(ctx, http.MethodPost, path, "", issueSessionRequest{Passcode: passcode}, http.StatusCreated, &resp); err != nil {
		return "", err
	}
	return resp.SessionToken, nil
}

type ownedAssetsResponse struct {
	Assets []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"assets"`
}

func (c *HTTPClient) OwnedAssets(ctx context.Context, id model.AccountID) ([]RemoteAsset, error) {
	path := fmt.Sprintf("/v1/accounts/%s/assets", id)

	var resp ownedAssetsResponse
	if err := c.do(ctx, http.MethodGet, path, "", nil, http.StatusOK, &resp); err != nil {
		return nil, err
	}

	assets := make([]RemoteAsset, 0, len(resp.Assets))
	for _, a := range resp.Assets {
		assets = append(assets, RemoteAsset{ID: model.AssetID(a.ID), Name: a.Name})
	}
	return assets, nil
}

type burnAssetsRequest struct {
	AssetIDs []string `json:"asset_ids"`
}

func (c *HTTPClient) BurnAssets(ctx context.Context, id model.AccountID, assetIDs []model.AssetID, sessionToken string) error {
	path := fmt.Sprintf("/v1/accounts/%s/assets/burn", id)

	req := burnAssetsRequest{AssetIDs: make([]string, 0, len(assetIDs))}
	for _, aid := range assetIDs {
		req.AssetIDs = append(req.AssetIDs, string(aid))
	}

	return c.do(ctx, http.MethodPost, path, sessionToken, req, http.StatusOK, nil)
}

// do performs one ledger request. A wantStatus response decodes into
// result; the ledger's fixed auth-failure status becomes ErrAuthExpired;
// any other status becomes a *RemoteError carrying the response body.
func (c *HTTPClient) do(ctx context.Context, method, path, sessionToken string, body any, wantStatus int, result any) error {
	op := method + " " + path

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}
	if sessionToken != "" {
		req.Header.Set("Authorization", "Bearer "+sessionToken)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("ledger %s: %w", op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == wantStatus:
		if result == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("ledger %s: failed to decode response: %w", op, err)
		}
		return nil
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrAuthExpired
	default:
		diag, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &RemoteError{Op: op, Status: resp.StatusCode, Body: strings.TrimSpace(string(diag))}
	}
}
