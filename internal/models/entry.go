package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Entry is a logged "as-if" purchase: money set aside instead of spent.
// Amounts are stored as decimal(10,2) to avoid float error.
type Entry struct {
	ID         string          `gorm:"primaryKey;size:36" json:"id"`
	UserID     string          `gorm:"size:36;index;not null" json:"userId"`
	Item       string          `gorm:"size:120;not null" json:"item"`
	Amount     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Category   string          `gorm:"size:50" json:"category,omitempty"`
	Note       string          `gorm:"size:500" json:"note,omitempty"`
	Date       time.Time       `gorm:"index;not null" json:"date"`
	CreatedAt  time.Time       `json:"createdAt"`
	TransferID *string         `gorm:"size:36;index" json:"transferId"`

	User     User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Transfer *Transfer `gorm:"constraint:OnDelete:SET NULL" json:"-"`
}

func (e *Entry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Date.IsZero() {
		e.Date = time.Now()
	}
	return nil
}
