package stats

import (
	"testing"
	"time"

	"github.com/Butterfli-Software/sanki-yedim/internal/models"

	"github.com/shopspring/decimal"
)

var testNow = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

func entryOn(daysAgo int, amount string) models.Entry {
	return models.Entry{
		Amount: decimal.RequireFromString(amount),
		Date:   testNow.AddDate(0, 0, -daysAgo),
	}
}

func TestTotalSaved(t *testing.T) {
	entries := []models.Entry{
		entryOn(0, "5.50"),
		entryOn(1, "14.00"),
		entryOn(400, "3.25"),
	}

	if got := TotalSaved(entries); got.String() != "22.75" {
		t.Errorf("TotalSaved = %s, want 22.75", got)
	}
	if got := TotalSaved(nil); !got.IsZero() {
		t.Errorf("TotalSaved(nil) = %s, want 0", got)
	}
}

func TestSavedInMonth(t *testing.T) {
	entries := []models.Entry{
		entryOn(0, "5.50"),   // March 15
		entryOn(14, "10.00"), // March 1
		entryOn(20, "99.00"), // February, out
		{Amount: decimal.RequireFromString("7.00"), Date: testNow.AddDate(-1, 0, 0)}, // last year, out
	}

	if got := SavedInMonth(entries, testNow); got.String() != "15.50" {
		t.Errorf("SavedInMonth = %s, want 15.50", got)
	}
}

func TestSavedInYear(t *testing.T) {
	entries := []models.Entry{
		entryOn(0, "5.50"),
		entryOn(60, "10.00"), // January, same year
		{Amount: decimal.RequireFromString("7.00"), Date: testNow.AddDate(-1, 0, 0)},
	}

	if got := SavedInYear(entries, testNow); got.String() != "15.50" {
		t.Errorf("SavedInYear = %s, want 15.50", got)
	}
}

func TestStreak_ConsecutiveDays(t *testing.T) {
	entries := []models.Entry{
		entryOn(0, "1.00"),
		entryOn(1, "1.00"),
		entryOn(2, "1.00"),
	}

	if got := Streak(entries, testNow); got != 3 {
		t.Errorf("Streak = %d, want 3", got)
	}
}

func TestStreak_GapStops(t *testing.T) {
	entries := []models.Entry{
		entryOn(0, "1.00"),
		entryOn(2, "1.00"), // nothing yesterday
	}

	if got := Streak(entries, testNow); got != 1 {
		t.Errorf("Streak = %d, want 1", got)
	}
}

func TestStreak_NoEntryToday(t *testing.T) {
	entries := []models.Entry{
		entryOn(1, "1.00"),
		entryOn(2, "1.00"),
	}

	if got := Streak(entries, testNow); got != 0 {
		t.Errorf("Streak = %d, want 0", got)
	}
}

func TestStreak_Empty(t *testing.T) {
	if got := Streak(nil, testNow); got != 0 {
		t.Errorf("Streak(nil) = %d, want 0", got)
	}
}

func TestStreak_MultipleEntriesSameDay(t *testing.T) {
	entries := []models.Entry{
		entryOn(0, "1.00"),
		entryOn(0, "2.00"),
		entryOn(1, "1.00"),
	}

	if got := Streak(entries, testNow); got != 2 {
		t.Errorf("Streak = %d, want 2", got)
	}
}

func TestDailySeries(t *testing.T) {
	entries := []models.Entry{
		entryOn(0, "5.50"),
		entryOn(0, "2.00"),
		entryOn(29, "3.00"),
		entryOn(30, "99.00"), // outside the window
	}

	series := DailySeries(entries, testNow, SeriesDays)
	if len(series) != SeriesDays {
		t.Fatalf("len(series) = %d, want %d", len(series), SeriesDays)
	}
	if got := series[SeriesDays-1].String(); got != "7.50" {
		t.Errorf("today's bucket = %s, want 7.50", got)
	}
	if got := series[0].String(); got != "3.00" {
		t.Errorf("oldest bucket = %s, want 3.00", got)
	}
	for i := 1; i < SeriesDays-1; i++ {
		if !series[i].IsZero() {
			t.Errorf("bucket %d = %s, want 0", i, series[i])
		}
	}
}

func TestGoalProgress(t *testing.T) {
	cases := []struct {
		saved, goal string
		want        float64
	}{
		{"50.00", "100.00", 50},
		{"150.00", "100.00", 100}, // clamped
		{"0.00", "100.00", 0},
		{"50.00", "0.00", 0}, // unset goal
	}

	for _, tc := range cases {
		saved := decimal.RequireFromString(tc.saved)
		goal := decimal.RequireFromString(tc.goal)
		if got := GoalProgress(saved, goal); got != tc.want {
			t.Errorf("GoalProgress(%s, %s) = %v, want %v", tc.saved, tc.goal, got, tc.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	entries := []models.Entry{
		entryOn(0, "5.50"),
		entryOn(1, "4.50"),
	}
	prefs := &models.Preference{
		MonthlyGoal: decimal.RequireFromString("20.00"),
		YearlyGoal:  decimal.RequireFromString("0.00"),
	}

	s := Summarize(entries, prefs, testNow)
	if s.TotalSaved.String() != "10.00" {
		t.Errorf("TotalSaved = %s, want 10.00", s.TotalSaved)
	}
	if s.StreakDays != 2 {
		t.Errorf("StreakDays = %d, want 2", s.StreakDays)
	}
	if s.MonthlyProgress != 50 {
		t.Errorf("MonthlyProgress = %v, want 50", s.MonthlyProgress)
	}
	if s.YearlyProgress != 0 {
		t.Errorf("YearlyProgress = %v, want 0", s.YearlyProgress)
	}
	if len(s.Series) != SeriesDays {
		t.Errorf("len(Series) = %d, want %d", len(s.Series), SeriesDays)
	}
}
