package util

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Field length limits for entry payloads.
const (
	MaxItemLen     = 120
	MaxCategoryLen = 50
	MaxNoteLen     = 500
)

// ParseAmount parses a positive decimal amount from its string form.
// Rejects zero, negative and non-numeric input.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount must be positive, got %s", d)
	}
	return d, nil
}

// ValidateItem checks the entry item label (1-120 chars).
func ValidateItem(item string) error {
	if item == "" {
		return fmt.Errorf("item is empty")
	}
	if len(item) > MaxItemLen {
		return fmt.Errorf("item too long, max %d characters", MaxItemLen)
	}
	return nil
}

// ValidateCategory checks the optional category label (<=50 chars).
func ValidateCategory(category string) error {
	if len(category) > MaxCategoryLen {
		return fmt.Errorf("category too long, max %d characters", MaxCategoryLen)
	}
	return nil
}

// ValidateNote checks the optional note (<=500 chars).
func ValidateNote(note string) error {
	if len(note) > MaxNoteLen {
		return fmt.Errorf("note too long, max %d characters", MaxNoteLen)
	}
	return nil
}

// ParseDate parses an entry date. Accepts RFC3339 and YYYY-MM-DD.
func ParseDate(s string) (time.Time, error) {
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date format: %q", s)
}
