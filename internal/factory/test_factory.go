package factory

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/monstermint/backend/internal/dependencies/mocks"
	"github.com/monstermint/backend/internal/dependencies/random"
	"github.com/monstermint/backend/internal/services/credential"
	"github.com/monstermint/backend/internal/storage/memory"
	"github.com/monstermint/backend/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockLedger *mocks.MockLedger
}

// NewTestApp creates an App configured for testing with a mocked clock
// and ledger. Randomness stays real so passcodes differ across accounts.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockLedger := mocks.NewMockLedger()

	credCfg := credential.DefaultConfig()
	credCfg.OperatorAccount = "operator"
	credCfg.BcryptCost = bcrypt.MinCost

	app := newWithDependencies(store, mockLedger, mockClock, random.New(), credCfg, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockLedger: mockLedger,
	}
}
