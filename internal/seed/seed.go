package seed

import (
	"errors"
	"time"

	"github.com/Butterfli-Software/sanki-yedim/internal/config"
	"github.com/Butterfli-Software/sanki-yedim/internal/models"
	"github.com/Butterfli-Software/sanki-yedim/internal/store"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var sampleEntries = []struct {
	Item     string
	Amount   string
	Category string
	Days     int
}{
	{"Morning coffee", "5.50", "Coffee & Tea", 1},
	{"Lunch out", "15.00", "Food & Dining", 1},
	{"Movie ticket", "14.00", "Entertainment", 2},
	{"Coffee", "5.50", "Coffee & Tea", 3},
	{"Impulse book purchase", "22.00", "Shopping", 4},
	{"Coffee", "5.50", "Coffee & Tea", 5},
	{"Takeout dinner", "28.00", "Food & Dining", 5},
	{"Ride share", "12.00", "Transportation", 6},
	{"Snacks", "8.50", "Shopping", 7},
	{"Coffee", "5.50", "Coffee & Tea", 8},
	{"Chocolate bar", "3.50", "Food & Dining", 9},
	{"Magazine subscription", "9.99", "Subscriptions", 10},
	{"Coffee", "5.50", "Coffee & Tea", 11},
	{"Fast food", "11.00", "Food & Dining", 12},
	{"Coffee", "5.50", "Coffee & Tea", 14},
	{"Concert ticket", "45.00", "Entertainment", 15},
	{"Coffee", "5.50", "Coffee & Tea", 16},
	{"Clothing item", "35.00", "Shopping", 18},
	{"Coffee", "5.50", "Coffee & Tea", 19},
	{"Pizza delivery", "22.00", "Food & Dining", 20},
}

// Run creates the demo user, default preferences and sample entries.
// Idempotent: an already-seeded database is left alone.
func Run(st store.Store, cfg *config.Config, log *zap.Logger) error {
	user, err := st.GetUserByEmail(cfg.Demo.Email)
	if errors.Is(err, store.ErrNotFound) {
		user = &models.User{Email: cfg.Demo.Email, Name: cfg.Demo.Name}
		if err := st.CreateUser(user); err != nil {
			return err
		}
		log.Info("seeded demo user", zap.String("email", user.Email))
	} else if err != nil {
		return err
	}

	if _, err := st.GetPreferences(user.ID); errors.Is(err, store.ErrNotFound) {
		provider := models.ProviderManual
		from := "Checking (****1234)"
		to := "Savings (****5678)"
		monthly := decimal.RequireFromString("500.00")
		yearly := decimal.RequireFromString("6000.00")
		if _, err := st.UpdatePreferences(user.ID, store.PreferencePatch{
			BankProvider:     &provider,
			FromAccountLabel: &from,
			ToAccountLabel:   &to,
			MonthlyGoal:      &monthly,
			YearlyGoal:       &yearly,
		}); err != nil {
			return err
		}
		log.Info("seeded demo preferences")
	} else if err != nil {
		return err
	}

	existing, err := st.ListEntries(user.ID, store.EntryFilter{})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Info("seed already applied, skipping entries")
		return nil
	}

	today := time.Now()
	for _, s := range sampleEntries {
		entry := models.Entry{
			UserID:   user.ID,
			Item:     s.Item,
			Amount:   decimal.RequireFromString(s.Amount),
			Category: s.Category,
			Date:     today.AddDate(0, 0, -s.Days),
		}
		if err := st.CreateEntry(&entry); err != nil {
			return err
		}
	}
	log.Info("seeded sample entries", zap.Int("count", len(sampleEntries)))
	return nil
}
