// Package stats derives the dashboard KPIs from a user's entry list:
// totals, calendar-period sums, the day streak, the 30-day series and
// goal progress.
package stats

import (
	"time"

	"github.com/Butterfli-Software/sanki-yedim/internal/models"

	"github.com/shopspring/decimal"
)

// SeriesDays is the length of the trend series.
const SeriesDays = 30

const dayKeyLayout = "2006-01-02"

// Summary bundles every derived figure for one user.
type Summary struct {
	TotalSaved      decimal.Decimal   `json:"totalSaved"`
	SavedThisMonth  decimal.Decimal   `json:"savedThisMonth"`
	SavedThisYear   decimal.Decimal   `json:"savedThisYear"`
	StreakDays      int               `json:"streakDays"`
	MonthlyGoal     decimal.Decimal   `json:"monthlyGoal"`
	YearlyGoal      decimal.Decimal   `json:"yearlyGoal"`
	MonthlyProgress float64           `json:"monthlyProgress"`
	YearlyProgress  float64           `json:"yearlyProgress"`
	Series          []decimal.Decimal `json:"series"`
}

// Summarize computes the full KPI set as of now.
func Summarize(entries []models.Entry, prefs *models.Preference, now time.Time) Summary {
	s := Summary{
		TotalSaved:     TotalSaved(entries),
		SavedThisMonth: SavedInMonth(entries, now),
		SavedThisYear:  SavedInYear(entries, now),
		StreakDays:     Streak(entries, now),
		MonthlyGoal:    decimal.New(0, -2),
		YearlyGoal:     decimal.New(0, -2),
		Series:         DailySeries(entries, now, SeriesDays),
	}
	if prefs != nil {
		s.MonthlyGoal = prefs.MonthlyGoal
		s.YearlyGoal = prefs.YearlyGoal
	}
	s.MonthlyProgress = GoalProgress(s.SavedThisMonth, s.MonthlyGoal)
	s.YearlyProgress = GoalProgress(s.SavedThisYear, s.YearlyGoal)
	return s
}

// TotalSaved sums every entry amount.
func TotalSaved(entries []models.Entry) decimal.Decimal {
	sum := decimal.Zero
	for i := range entries {
		sum = sum.Add(entries[i].Amount)
	}
	return sum
}

// SavedInMonth sums entries whose date falls in now's calendar month.
func SavedInMonth(entries []models.Entry, now time.Time) decimal.Decimal {
	sum := decimal.Zero
	for i := range entries {
		d := entries[i].Date
		if d.Year() == now.Year() && d.Month() == now.Month() {
			sum = sum.Add(entries[i].Amount)
		}
	}
	return sum
}

// SavedInYear sums entries whose date falls in now's calendar year.
func SavedInYear(entries []models.Entry, now time.Time) decimal.Decimal {
	sum := decimal.Zero
	for i := range entries {
		if entries[i].Date.Year() == now.Year() {
			sum = sum.Add(entries[i].Amount)
		}
	}
	return sum
}

// Streak counts consecutive calendar days with at least one entry, most
// recent first, starting at today and stopping at the first gap. A day
// without an entry today yields zero.
func Streak(entries []models.Entry, now time.Time) int {
	if len(entries) == 0 {
		return 0
	}

	days := make(map[string]bool, len(entries))
	for i := range entries {
		days[entries[i].Date.Format(dayKeyLayout)] = true
	}

	streak := 0
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for days[day.Format(dayKeyLayout)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// DailySeries returns per-day totals for the last `days` calendar days
// ending today, oldest first.
func DailySeries(entries []models.Entry, now time.Time, days int) []decimal.Decimal {
	byDay := make(map[string]decimal.Decimal, len(entries))
	for i := range entries {
		key := entries[i].Date.Format(dayKeyLayout)
		byDay[key] = byDay[key].Add(entries[i].Amount)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	series := make([]decimal.Decimal, 0, days)
	for i := days - 1; i >= 0; i-- {
		key := today.AddDate(0, 0, -i).Format(dayKeyLayout)
		if total, ok := byDay[key]; ok {
			series = append(series, total)
		} else {
			series = append(series, decimal.Zero)
		}
	}
	return series
}

// GoalProgress is saved/goal as a percentage, clamped to 100 for display.
// A zero or negative goal reports zero progress.
func GoalProgress(saved, goal decimal.Decimal) float64 {
	if !goal.IsPositive() {
		return 0
	}
	pct, _ := saved.Div(goal).Mul(decimal.NewFromInt(100)).Float64()
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}
