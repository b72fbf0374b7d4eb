package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transfer method values.
const (
	MethodManual  = "manual"
	MethodSandbox = "sandbox"
)

// Transfer status values. Transitions only move forward
// (pending_manual/scheduled -> completed), never back.
const (
	StatusPendingManual = "pending_manual"
	StatusScheduled     = "scheduled"
	StatusCompleted     = "completed"
	StatusFailed        = "failed"
)

// Transfer is a batch moving one or more entries' value toward a real
// savings destination. TotalAmount is the sum of the linked entries'
// amounts at creation time and is not reconciled afterward.
type Transfer struct {
	ID          string          `gorm:"primaryKey;size:36" json:"id"`
	UserID      string          `gorm:"size:36;index;not null" json:"userId"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"totalAmount"`
	Method      string          `gorm:"size:16;not null" json:"method"`
	Status      string          `gorm:"size:16;not null" json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	CompletedAt *time.Time      `json:"completedAt"`

	User User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (t *Transfer) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
