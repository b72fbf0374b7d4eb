package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Bank provider values stored in Preference.BankProvider.
const (
	ProviderManual  = "manual"
	ProviderSandbox = "sandbox"
)

// Preference is the one-to-one settings row for a user: chosen bank
// provider, account labels/ids and savings goals. Created lazily on
// first access if absent.
type Preference struct {
	ID               string          `gorm:"primaryKey;size:36" json:"id"`
	UserID           string          `gorm:"size:36;uniqueIndex;not null" json:"userId"`
	BankProvider     string          `gorm:"size:16;not null;default:manual" json:"bankProvider"`
	FromAccountLabel string          `gorm:"size:120" json:"fromAccountLabel,omitempty"`
	ToAccountLabel   string          `gorm:"size:120" json:"toAccountLabel,omitempty"`
	SandboxItemID    string          `gorm:"size:64" json:"sandboxItemId,omitempty"`
	SandboxFromID    string          `gorm:"size:64" json:"sandboxFromId,omitempty"`
	SandboxToID      string          `gorm:"size:64" json:"sandboxToId,omitempty"`
	MonthlyGoal      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"monthlyGoal"`
	YearlyGoal       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"yearlyGoal"`

	User User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (p *Preference) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.BankProvider == "" {
		p.BankProvider = ProviderManual
	}
	return nil
}
