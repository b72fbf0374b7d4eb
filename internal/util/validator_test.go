package util

import (
	"strings"
	"testing"
)

func TestParseAmount_Valid(t *testing.T) {
	testCases := []string{"0.01", "1", "5.50", "100.5", "9999999.99"}

	for _, amount := range testCases {
		if _, err := ParseAmount(amount); err != nil {
			t.Errorf("ParseAmount(%q) error = %v, want nil", amount, err)
		}
	}
}

func TestParseAmount_KeepsScale(t *testing.T) {
	d, err := ParseAmount("5.50")
	if err != nil {
		t.Fatalf("ParseAmount(5.50) error = %v", err)
	}
	if got := d.String(); got != "5.50" {
		t.Errorf("ParseAmount(5.50).String() = %q, want \"5.50\"", got)
	}
}

func TestParseAmount_NonPositive(t *testing.T) {
	testCases := []string{"0", "0.00", "-0.01", "-100"}

	for _, amount := range testCases {
		if _, err := ParseAmount(amount); err == nil {
			t.Errorf("ParseAmount(%q) error = nil, want error", amount)
		}
	}
}

func TestParseAmount_NotANumber(t *testing.T) {
	testCases := []string{"", "abc", "1.2.3", "NaN", "Inf"}

	for _, amount := range testCases {
		if _, err := ParseAmount(amount); err == nil {
			t.Errorf("ParseAmount(%q) error = nil, want error", amount)
		}
	}
}

func TestValidateItem(t *testing.T) {
	if err := ValidateItem("Coffee"); err != nil {
		t.Errorf("ValidateItem(Coffee) error = %v, want nil", err)
	}
	if err := ValidateItem(""); err == nil {
		t.Error("ValidateItem(\"\") error = nil, want error")
	}
	if err := ValidateItem(strings.Repeat("x", MaxItemLen+1)); err == nil {
		t.Error("ValidateItem() with long string error = nil, want error")
	}
}

func TestValidateCategory(t *testing.T) {
	// empty category is allowed, it is optional
	if err := ValidateCategory(""); err != nil {
		t.Errorf("ValidateCategory(\"\") error = %v, want nil", err)
	}
	if err := ValidateCategory("Coffee & Tea"); err != nil {
		t.Errorf("ValidateCategory(Coffee & Tea) error = %v, want nil", err)
	}
	if err := ValidateCategory(strings.Repeat("x", MaxCategoryLen+1)); err == nil {
		t.Error("ValidateCategory() with long string error = nil, want error")
	}
}

func TestValidateNote(t *testing.T) {
	if err := ValidateNote(""); err != nil {
		t.Errorf("ValidateNote(\"\") error = %v, want nil", err)
	}
	if err := ValidateNote(strings.Repeat("x", MaxNoteLen+1)); err == nil {
		t.Error("ValidateNote() with long string error = nil, want error")
	}
}

func TestParseDate_Valid(t *testing.T) {
	testCases := []string{
		"2024-01-01",
		"2025-06-15",
		"2025-12-03T00:00:00Z",
		"2025-12-03T10:30:00",
	}

	for _, date := range testCases {
		if _, err := ParseDate(date); err != nil {
			t.Errorf("ParseDate(%q) error = %v, want nil", date, err)
		}
	}
}

func TestParseDate_Invalid(t *testing.T) {
	testCases := []string{
		"",
		"2024/01/01",
		"01-01-2024",
		"not-a-date",
		"2024-13-01",
		"2024-01-32",
	}

	for _, date := range testCases {
		if _, err := ParseDate(date); err == nil {
			t.Errorf("ParseDate(%q) error = nil, want error", date)
		}
	}
}
