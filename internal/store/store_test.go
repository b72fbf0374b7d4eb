package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/Butterfli-Software/sanki-yedim/internal/database"
	"github.com/Butterfli-Software/sanki-yedim/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return New(db)
}

func newTestUser(t *testing.T, st Store, email string) *models.User {
	t.Helper()

	user := &models.User{Email: email, Name: "Test"}
	if err := st.CreateUser(user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func newTestEntry(t *testing.T, st Store, userID, item, amount string) *models.Entry {
	t.Helper()

	entry := &models.Entry{
		UserID: userID,
		Item:   item,
		Amount: decimal.RequireFromString(amount),
		Date:   time.Now(),
	}
	if err := st.CreateEntry(entry); err != nil {
		t.Fatalf("create entry: %v", err)
	}
	return entry
}

func TestCreateEntry_StoresAmount(t *testing.T) {
	st := newTestStore(t)
	user := newTestUser(t, st, "a@test.local")

	entry := newTestEntry(t, st, user.ID, "Coffee", "5.50")

	got, err := st.GetEntry(entry.ID, user.ID)
	if err != nil {
		t.Fatalf("get entry: %v", err)
	}
	if !got.Amount.Equal(decimal.RequireFromString("5.50")) {
		t.Errorf("amount = %s, want 5.50", got.Amount)
	}
	if got.TransferID != nil {
		t.Errorf("new entry should not be linked to a transfer")
	}
}

func TestGetEntry_ScopedByUser(t *testing.T) {
	st := newTestStore(t)
	owner := newTestUser(t, st, "owner@test.local")
	other := newTestUser(t, st, "other@test.local")

	entry := newTestEntry(t, st, owner.ID, "Coffee", "5.50")

	if _, err := st.GetEntry(entry.ID, other.ID); err != ErrNotFound {
		t.Errorf("cross-user get error = %v, want ErrNotFound", err)
	}
}

func TestUpdateEntry(t *testing.T) {
	st := newTestStore(t)
	user := newTestUser(t, st, "a@test.local")
	entry := newTestEntry(t, st, user.ID, "Coffee", "5.50")

	item := "Large coffee"
	amount := decimal.RequireFromString("6.75")
	updated, err := st.UpdateEntry(entry.ID, user.ID, EntryPatch{Item: &item, Amount: &amount})
	if err != nil {
		t.Fatalf("update entry: %v", err)
	}
	if updated.Item != "Large coffee" || !updated.Amount.Equal(decimal.RequireFromString("6.75")) {
		t.Errorf("updated = %s/%s, want Large coffee/6.75", updated.Item, updated.Amount)
	}

	// untouched field survives
	if updated.UserID != user.ID {
		t.Errorf("user id changed on update")
	}
}

func TestUpdateEntry_NotOwned(t *testing.T) {
	st := newTestStore(t)
	owner := newTestUser(t, st, "owner@test.local")
	other := newTestUser(t, st, "other@test.local")
	entry := newTestEntry(t, st, owner.ID, "Coffee", "5.50")

	item := "hijack"
	if _, err := st.UpdateEntry(entry.ID, other.ID, EntryPatch{Item: &item}); err != ErrNotFound {
		t.Errorf("cross-user update error = %v, want ErrNotFound", err)
	}
}

func TestDeleteEntry_LeavesUserAndOthers(t *testing.T) {
	st := newTestStore(t)
	user := newTestUser(t, st, "a@test.local")
	keep := newTestEntry(t, st, user.ID, "Keep", "1.00")
	gone := newTestEntry(t, st, user.ID, "Gone", "2.00")

	if err := st.DeleteEntry(gone.ID, user.ID); err != nil {
		t.Fatalf("delete entry: %v", err)
	}

	if _, err := st.GetEntry(gone.ID, user.ID); err != ErrNotFound {
		t.Errorf("deleted entry still present, err = %v", err)
	}
	if _, err := st.GetEntry(keep.ID, user.ID); err != nil {
		t.Errorf("unrelated entry vanished: %v", err)
	}
	if _, err := st.GetUser(user.ID); err != nil {
		t.Errorf("owning user vanished: %v", err)
	}
}

func TestListEntries_Filters(t *testing.T) {
	st := newTestStore(t)
	user := newTestUser(t, st, "a@test.local")
	newTestEntry(t, st, user.ID, "Morning coffee", "5.50")
	latte := &models.Entry{
		UserID:   user.ID,
		Item:     "Latte",
		Amount:   decimal.RequireFromString("6.00"),
		Category: "Coffee & Tea",
		Date:     time.Now().AddDate(0, 0, -3),
	}
	if err := st.CreateEntry(latte); err != nil {
		t.Fatalf("create entry: %v", err)
	}

	all, err := st.ListEntries(user.ID, EntryFilter{})
	if err != nil || len(all) != 2 {
		t.Fatalf("ListEntries = %d entries, err %v, want 2", len(all), err)
	}

	byCategory, err := st.ListEntries(user.ID, EntryFilter{Category: "Coffee & Tea"})
	if err != nil || len(byCategory) != 1 || byCategory[0].Item != "Latte" {
		t.Errorf("category filter returned %d entries, want the latte", len(byCategory))
	}

	bySearch, err := st.ListEntries(user.ID, EntryFilter{Search: "coffee"})
	if err != nil || len(bySearch) != 1 {
		t.Errorf("search filter returned %d entries, want 1", len(bySearch))
	}

	from := time.Now().AddDate(0, 0, -1)
	recent, err := st.ListEntries(user.ID, EntryFilter{From: &from})
	if err != nil || len(recent) != 1 || recent[0].Item != "Morning coffee" {
		t.Errorf("from filter returned %d entries, want the recent one", len(recent))
	}
}

func TestCreateTransferLinked(t *testing.T) {
	st := newTestStore(t)
	user := newTestUser(t, st, "a@test.local")
	e1 := newTestEntry(t, st, user.ID, "Coffee", "5.50")
	e2 := newTestEntry(t, st, user.ID, "Lunch", "15.00")

	total := decimal.RequireFromString("20.50")
	transfer, err := st.CreateTransferLinked(user.ID, total,
		models.MethodManual, models.StatusPendingManual, []string{e1.ID, e2.ID})
	if err != nil {
		t.Fatalf("create transfer: %v", err)
	}

	if !transfer.TotalAmount.Equal(total) {
		t.Errorf("totalAmount = %s, want 20.50", transfer.TotalAmount)
	}
	if transfer.Status != models.StatusPendingManual {
		t.Errorf("status = %s, want %s", transfer.Status, models.StatusPendingManual)
	}
	if transfer.CompletedAt != nil {
		t.Errorf("new transfer must not be completed")
	}

	for _, id := range []string{e1.ID, e2.ID} {
		entry, err := st.GetEntry(id, user.ID)
		if err != nil {
			t.Fatalf("get entry: %v", err)
		}
		if entry.TransferID == nil || *entry.TransferID != transfer.ID {
			t.Errorf("entry %s not linked to transfer", id)
		}
	}
}

func TestCreateTransferLinked_IgnoresForeignEntries(t *testing.T) {
	st := newTestStore(t)
	owner := newTestUser(t, st, "owner@test.local")
	other := newTestUser(t, st, "other@test.local")
	foreign := newTestEntry(t, st, other.ID, "Theirs", "9.99")

	transfer, err := st.CreateTransferLinked(owner.ID, decimal.RequireFromString("9.99"),
		models.MethodManual, models.StatusPendingManual, []string{foreign.ID})
	if err != nil {
		t.Fatalf("create transfer: %v", err)
	}

	entry, err := st.GetEntry(foreign.ID, other.ID)
	if err != nil {
		t.Fatalf("get entry: %v", err)
	}
	if entry.TransferID != nil {
		t.Errorf("foreign entry was linked to transfer %s", transfer.ID)
	}
}

func TestCompleteTransfer_Idempotent(t *testing.T) {
	st := newTestStore(t)
	user := newTestUser(t, st, "a@test.local")
	entry := newTestEntry(t, st, user.ID, "Coffee", "5.50")

	transfer, err := st.CreateTransferLinked(user.ID, entry.Amount,
		models.MethodManual, models.StatusPendingManual, []string{entry.ID})
	if err != nil {
		t.Fatalf("create transfer: %v", err)
	}

	first, err := st.CompleteTransfer(transfer.ID, user.ID)
	if err != nil {
		t.Fatalf("complete transfer: %v", err)
	}
	if first.Status != models.StatusCompleted || first.CompletedAt == nil {
		t.Fatalf("status = %s, completedAt = %v, want completed with timestamp", first.Status, first.CompletedAt)
	}

	second, err := st.CompleteTransfer(transfer.ID, user.ID)
	if err != nil {
		t.Fatalf("re-complete transfer: %v", err)
	}
	if second.Status != models.StatusCompleted || second.CompletedAt == nil {
		t.Errorf("re-completion changed state: %s", second.Status)
	}
}

func TestCompleteTransfer_NotFound(t *testing.T) {
	st := newTestStore(t)
	user := newTestUser(t, st, "a@test.local")

	if _, err := st.CompleteTransfer("missing-id", user.ID); err != ErrNotFound {
		t.Errorf("complete missing transfer error = %v, want ErrNotFound", err)
	}
}

func TestEnsurePreferences_Defaults(t *testing.T) {
	st := newTestStore(t)
	user := newTestUser(t, st, "fresh@test.local")

	prefs, err := st.EnsurePreferences(user.ID)
	if err != nil {
		t.Fatalf("ensure preferences: %v", err)
	}
	if prefs.BankProvider != models.ProviderManual {
		t.Errorf("bankProvider = %s, want manual", prefs.BankProvider)
	}
	if !prefs.MonthlyGoal.IsZero() {
		t.Errorf("monthlyGoal = %s, want 0.00", prefs.MonthlyGoal)
	}

	// second call returns the same row
	again, err := st.EnsurePreferences(user.ID)
	if err != nil {
		t.Fatalf("ensure preferences again: %v", err)
	}
	if again.ID != prefs.ID {
		t.Errorf("EnsurePreferences created a duplicate row")
	}
}

func TestUpdatePreferences_PartialPatch(t *testing.T) {
	st := newTestStore(t)
	user := newTestUser(t, st, "a@test.local")

	provider := models.ProviderSandbox
	monthly := decimal.RequireFromString("500.00")
	prefs, err := st.UpdatePreferences(user.ID, PreferencePatch{
		BankProvider: &provider,
		MonthlyGoal:  &monthly,
	})
	if err != nil {
		t.Fatalf("update preferences: %v", err)
	}
	if prefs.BankProvider != models.ProviderSandbox {
		t.Errorf("bankProvider = %s, want sandbox", prefs.BankProvider)
	}
	if !prefs.MonthlyGoal.Equal(monthly) {
		t.Errorf("monthlyGoal = %s, want 500.00", prefs.MonthlyGoal)
	}

	// untouched fields keep their values
	label := "Checking (****1234)"
	prefs, err = st.UpdatePreferences(user.ID, PreferencePatch{FromAccountLabel: &label})
	if err != nil {
		t.Fatalf("update preferences: %v", err)
	}
	if prefs.BankProvider != models.ProviderSandbox {
		t.Errorf("partial patch reset bankProvider to %s", prefs.BankProvider)
	}
	if prefs.FromAccountLabel != label {
		t.Errorf("fromAccountLabel = %s, want %s", prefs.FromAccountLabel, label)
	}
}
