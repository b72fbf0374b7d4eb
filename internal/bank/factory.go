package bank

import (
	"errors"
	"time"

	"github.com/Butterfli-Software/sanki-yedim/internal/models"
	"github.com/Butterfli-Software/sanki-yedim/internal/store"

	"go.uber.org/zap"
)

// Factory resolves the active provider for a user from their stored
// preference, defaulting to manual when unset or absent.
type Factory struct {
	store   store.Store
	manual  *ManualProvider
	sandbox *SandboxProvider
}

func NewFactory(st store.Store, sched Scheduler, sandboxDelay time.Duration, log *zap.Logger) *Factory {
	return &Factory{
		store:   st,
		manual:  NewManualProvider(st),
		sandbox: NewSandboxProvider(st, sched, sandboxDelay, log),
	}
}

// ForUser looks up the user's preferred provider.
func (f *Factory) ForUser(userID string) (Provider, error) {
	prefs, err := f.store.GetPreferences(userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return f.manual, nil
		}
		return nil, err
	}
	return f.ByName(prefs.BankProvider), nil
}

// ByName maps a stored provider value to its strategy. Unknown values fall
// back to manual.
func (f *Factory) ByName(name string) Provider {
	if name == models.ProviderSandbox {
		return f.sandbox
	}
	return f.manual
}
