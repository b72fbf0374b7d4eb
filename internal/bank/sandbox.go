package bank

import (
	"context"
	"time"

	"github.com/Butterfli-Software/sanki-yedim/internal/models"
	"github.com/Butterfli-Software/sanki-yedim/internal/store"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// SandboxProvider simulates an external bank. Transfers start scheduled and
// are flipped to completed after Delay by a detached timer. The timer is
// in-process only: it does not survive a restart, and its failures are
// logged and swallowed, never surfaced to a client.
type SandboxProvider struct {
	Store     store.Store
	Scheduler Scheduler
	Delay     time.Duration
	Log       *zap.Logger
}

func NewSandboxProvider(st store.Store, sched Scheduler, delay time.Duration, log *zap.Logger) *SandboxProvider {
	if delay <= 0 {
		delay = 5 * time.Second
	}
	return &SandboxProvider{Store: st, Scheduler: sched, Delay: delay, Log: log}
}

func (p *SandboxProvider) DisplayName() string {
	return "Simulated Sandbox"
}

func (p *SandboxProvider) Capabilities() Capabilities {
	return Capabilities{
		SimulateTransfers: true,
		ManualChecklist:   false,
	}
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// ListAccounts returns a fixed set of demo accounts with static balances.
func (p *SandboxProvider) ListAccounts(ctx context.Context, userID string) ([]Account, error) {
	return []Account{
		{ID: "acc_checking_1234", Name: "Checking Account (****1234)", Balance: dec("5420.50")},
		{ID: "acc_savings_5678", Name: "Savings Account (****5678)", Balance: dec("12350.75")},
		{ID: "acc_checking_9012", Name: "Joint Checking (****9012)", Balance: dec("8900.00")},
	}, nil
}

func (p *SandboxProvider) CreateTransfer(ctx context.Context, args CreateTransferArgs) (*models.Transfer, error) {
	transfer, err := p.Store.CreateTransferLinked(
		args.UserID,
		args.TotalAmount,
		models.MethodSandbox,
		models.StatusScheduled,
		args.EntryIDs,
	)
	if err != nil {
		return nil, err
	}

	// Fire-and-forget auto completion. No caller-visible signal.
	transferID := transfer.ID
	userID := args.UserID
	p.Scheduler.AfterFunc(p.Delay, func() {
		if _, err := p.Store.CompleteTransfer(transferID, userID); err != nil {
			p.Log.Warn("sandbox auto-complete failed",
				zap.String("transfer_id", transferID),
				zap.Error(err))
		}
	})

	return transfer, nil
}
