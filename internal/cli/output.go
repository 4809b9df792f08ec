package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Account:
		o.printAccount(v)
	case AccountList:
		o.printAccountList(v)
	case AuthResult:
		o.printAuthResult(v)
	case Session:
		o.printSession(v)
	case []Asset:
		o.printAssets(v)
	case Asset:
		o.printAsset(v)
	case Winner:
		o.printWinner(v)
	case LastAward:
		o.printLastAward(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Account response type (matches API)
type Account struct {
	AccountID     string    `json:"account_id"`
	LedgerAddress string    `json:"ledger_address"`
	LedgerRef     string    `json:"ledger_ref"`
	IsWinner      bool      `json:"is_winner"`
	CreatedAt     time.Time `json:"created_at"`
}

// AccountList response type
type AccountList struct {
	Accounts []string `json:"accounts"`
}

// AuthResult response type
type AuthResult struct {
	Authenticated bool `json:"authenticated"`
}

// Session response type
type Session struct {
	SessionToken string `json:"session_token"`
}

// Asset response type
type Asset struct {
	AssetID  string    `json:"asset_id"`
	Name     string    `json:"name"`
	MintedAt time.Time `json:"minted_at"`
}

// Winner response type
type Winner struct {
	KingAsset *Asset `json:"king_asset"`
}

// LastAward response type
type LastAward struct {
	LastAward *time.Time `json:"last_award"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printAccount(a Account) {
	winnerStr := "no"
	if a.IsWinner {
		winnerStr = "yes"
	}
	fmt.Printf("Account: %s\n", a.AccountID)
	fmt.Printf("Ledger Address: %s\n", a.LedgerAddress)
	fmt.Printf("Ledger Ref: %s\n", a.LedgerRef)
	fmt.Printf("Winner: %s\n", winnerStr)
	fmt.Printf("Created: %s\n", a.CreatedAt.Format(time.RFC3339))
}

func (o *Output) printAccountList(l AccountList) {
	fmt.Printf("Accounts (%d):\n", len(l.Accounts))
	for _, id := range l.Accounts {
		fmt.Printf("  - %s\n", id)
	}
}

func (o *Output) printAuthResult(a AuthResult) {
	if a.Authenticated {
		fmt.Println("Authenticated")
	} else {
		fmt.Println("Invalid credentials")
	}
}

func (o *Output) printSession(s Session) {
	fmt.Printf("Token: %s\n", s.SessionToken)
}

func (o *Output) printAssets(assets []Asset) {
	fmt.Printf("Assets (%d):\n", len(assets))
	for _, a := range assets {
		fmt.Printf("  - %s (%s)\n", a.Name, a.AssetID)
	}
}

func (o *Output) printAsset(a Asset) {
	fmt.Printf("Asset: %s\n", a.AssetID)
	fmt.Printf("Name: %s\n", a.Name)
	fmt.Printf("Minted: %s\n", a.MintedAt.Format(time.RFC3339))
}

func (o *Output) printWinner(w Winner) {
	if w.KingAsset == nil {
		fmt.Println("No winner")
		return
	}
	fmt.Printf("King Asset: %s (%s)\n", w.KingAsset.Name, w.KingAsset.AssetID)
}

func (o *Output) printLastAward(l LastAward) {
	if l.LastAward == nil {
		fmt.Println("No award yet")
		return
	}
	fmt.Printf("Last Award: %s\n", l.LastAward.Format(time.RFC3339))
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
