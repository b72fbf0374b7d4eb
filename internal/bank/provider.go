// Package bank holds the pluggable transfer-provider strategies: a manual
// checklist flow and a simulated sandbox that auto-completes transfers.
package bank

import (
	"context"

	"github.com/Butterfli-Software/sanki-yedim/internal/models"

	"github.com/shopspring/decimal"
)

// Capabilities flags what a provider can do.
type Capabilities struct {
	SimulateTransfers bool `json:"simulateTransfers"`
	ManualChecklist   bool `json:"manualChecklist"`
}

// Account is an external account as reported by a provider.
type Account struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Balance *decimal.Decimal `json:"balance,omitempty"`
}

// CreateTransferArgs is the input to Provider.CreateTransfer. TotalAmount
// has already been computed from the caller's stored entries.
type CreateTransferArgs struct {
	UserID      string
	EntryIDs    []string
	TotalAmount decimal.Decimal
}

// Provider turns a set of entry ids plus a total into a transfer row with
// an initial status. Completer is the optional completion hook.
type Provider interface {
	DisplayName() string
	Capabilities() Capabilities
	ListAccounts(ctx context.Context, userID string) ([]Account, error)
	CreateTransfer(ctx context.Context, args CreateTransferArgs) (*models.Transfer, error)
}

// Completer is implemented by providers that have provider-side work to do
// when a transfer is explicitly completed.
type Completer interface {
	MarkCompleted(ctx context.Context, transferID, userID string) error
}
