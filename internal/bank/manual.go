package bank

import (
	"context"

	"github.com/Butterfli-Software/sanki-yedim/internal/models"
	"github.com/Butterfli-Software/sanki-yedim/internal/store"
)

// ManualProvider creates transfers the user settles by hand: the row stays
// pending_manual until an explicit completion action.
type ManualProvider struct {
	Store store.Store
}

func NewManualProvider(st store.Store) *ManualProvider {
	return &ManualProvider{Store: st}
}

func (p *ManualProvider) DisplayName() string {
	return "Manual Transfer"
}

func (p *ManualProvider) Capabilities() Capabilities {
	return Capabilities{
		SimulateTransfers: false,
		ManualChecklist:   true,
	}
}

// ListAccounts returns nothing: the user supplies account labels instead.
func (p *ManualProvider) ListAccounts(ctx context.Context, userID string) ([]Account, error) {
	return []Account{}, nil
}

func (p *ManualProvider) CreateTransfer(ctx context.Context, args CreateTransferArgs) (*models.Transfer, error) {
	return p.Store.CreateTransferLinked(
		args.UserID,
		args.TotalAmount,
		models.MethodManual,
		models.StatusPendingManual,
		args.EntryIDs,
	)
}

// MarkCompleted flips the transfer to completed when the user checks it off.
func (p *ManualProvider) MarkCompleted(ctx context.Context, transferID, userID string) error {
	_, err := p.Store.CompleteTransfer(transferID, userID)
	return err
}
