package mocks

import (
	"context"
	"fmt"

	"github.com/monstermint/backend/internal/ledger"
	"github.com/monstermint/backend/internal/model"
)

// CreateAccountCall records the arguments of one CreateAccount call
type CreateAccountCall struct {
	ID             model.AccountID
	Passcode       string
	InitialBalance int
}

// IssueSessionCall records the arguments of one IssueSession call
type IssueSessionCall struct {
	ID       model.AccountID
	Passcode string
}

// BurnAssetsCall records the arguments of one BurnAssets call
type BurnAssetsCall struct {
	ID           model.AccountID
	AssetIDs     []model.AssetID
	SessionToken string
}

// MockLedger is a scriptable ledger.Client for testing. Every call is
// recorded; error queues let tests script per-call outcomes such as
// "auth failure once, then success".
type MockLedger struct {
	// Created is returned by CreateAccount when CreateErr is nil
	Created ledger.CreatedAccount

	// CreateErr fails CreateAccount when set
	CreateErr error

	// IssueErr fails IssueSession when set; otherwise tokens are
	// issued as "token-1", "token-2", ...
	IssueErr error

	// Assets is returned by OwnedAssets when OwnedErr is nil
	Assets   []ledger.RemoteAsset
	OwnedErr error

	// BurnErrs is consumed one entry per BurnAssets call; calls beyond
	// the queue succeed
	BurnErrs []error

	CreateCalls []CreateAccountCall
	IssueCalls  []IssueSessionCall
	OwnedCalls  []model.AccountID
	BurnCalls   []BurnAssetsCall
}

// Ensure MockLedger implements Client
var _ ledger.Client = (*MockLedger)(nil)

// NewMockLedger creates a MockLedger with a default successful creation
// response
func NewMockLedger() *MockLedger {
	return &MockLedger{
		Created: ledger.CreatedAccount{
			SessionToken: "token-0",
			Address:      "0xabc",
			Ref:          "chain-main",
		},
	}
}

func (m *MockLedger) CreateAccount(_ context.Context, id model.AccountID, passcode string, initialBalance int) (*ledger.CreatedAccount, error) {
	m.CreateCalls = append(m.CreateCalls, CreateAccountCall{ID: id, Passcode: passcode, InitialBalance: initialBalance})
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	created := m.Created
	return &created, nil
}

func (m *MockLedger) IssueSession(_ context.Context, id model.AccountID, passcode string) (string, error) {
	m.IssueCalls = append(m.IssueCalls, IssueSessionCall{ID: id, Passcode: passcode})
	if m.IssueErr != nil {
		return "", m.IssueErr
	}
	return fmt.Sprintf("token-%d", len(m.IssueCalls)), nil
}

func (m *MockLedger) OwnedAssets(_ context.Context, id model.AccountID) ([]ledger.RemoteAsset, error) {
	m.OwnedCalls = append(m.OwnedCalls, id)
	if m.OwnedErr != nil {
		return nil, m.OwnedErr
	}
	return m.Assets, nil
}

func (m *MockLedger) BurnAssets(_ context.Context, id model.AccountID, assetIDs []model.AssetID, sessionToken string) error {
	m.BurnCalls = append(m.BurnCalls, BurnAssetsCall{ID: id, AssetIDs: assetIDs, SessionToken: sessionToken})
	if len(m.BurnErrs) > 0 {
		err := m.BurnErrs[0]
		m.BurnErrs = m.BurnErrs[1:]
		return err
	}
	return nil
}
