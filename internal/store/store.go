package store

import (
	"errors"
	"time"

	"github.com/Butterfli-Software/sanki-yedim/internal/models"

	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a row is absent or not owned by the caller.
var ErrNotFound = errors.New("record not found")

// EntryFilter narrows ListEntries. Zero value means no filtering.
type EntryFilter struct {
	From     *time.Time
	To       *time.Time
	Category string
	Search   string
}

// EntryPatch carries a partial entry update; nil fields are left untouched.
type EntryPatch struct {
	Item     *string
	Amount   *decimal.Decimal
	Category *string
	Note     *string
	Date     *time.Time
}

// PreferencePatch carries a partial preference update.
type PreferencePatch struct {
	BankProvider     *string
	FromAccountLabel *string
	ToAccountLabel   *string
	SandboxItemID    *string
	SandboxFromID    *string
	SandboxToID      *string
	MonthlyGoal      *decimal.Decimal
	YearlyGoal       *decimal.Decimal
}

// Store is the persistence surface. Every operation is scoped by the
// owning user id so cross-user access is impossible by construction.
type Store interface {
	// Users
	GetUser(id string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	CreateUser(user *models.User) error

	// Entries
	ListEntries(userID string, filter EntryFilter) ([]models.Entry, error)
	GetEntry(id, userID string) (*models.Entry, error)
	CreateEntry(entry *models.Entry) error
	UpdateEntry(id, userID string, patch EntryPatch) (*models.Entry, error)
	DeleteEntry(id, userID string) error

	// Transfers
	ListTransfers(userID string) ([]models.Transfer, error)
	GetTransfer(id, userID string) (*models.Transfer, error)
	// CreateTransferLinked creates the transfer row and stamps its id onto
	// the given entries inside a single transaction.
	CreateTransferLinked(userID string, total decimal.Decimal, method, status string, entryIDs []string) (*models.Transfer, error)
	CompleteTransfer(id, userID string) (*models.Transfer, error)
	LinkEntries(entryIDs []string, transferID, userID string) error

	// Preferences
	GetPreferences(userID string) (*models.Preference, error)
	EnsurePreferences(userID string) (*models.Preference, error)
	UpdatePreferences(userID string, patch PreferencePatch) (*models.Preference, error)

	// Audit
	CreateAuditLog(log *models.AuditLog) error
	ListAuditLogs(userID string, limit int) ([]models.AuditLog, error)
}
