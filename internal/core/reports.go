// Package core holds the domain model and the reporting math. Everything in
// this file is pure: callers pass in the reference day and pre-aggregated
// sums, so output is deterministic for a fixed dataset and a fixed "today".
package core

import (
	"math"
	"time"
)

// TrendDays is the window length of the daily trends report.
const TrendDays = 30

type (
	// MonthlySummary covers the current calendar month up to today.
	MonthlySummary struct {
		Month        string
		TotalIncome  float64
		TotalExpense float64
		NetSavings   float64
	}

	// DailyTotal is one day's income/expense aggregate from the ledger.
	DailyTotal struct {
		Date    string
		Income  float64
		Expense float64
	}

	// TrendSeries holds three index-aligned sequences of TrendDays entries,
	// oldest first.
	TrendSeries struct {
		Labels  []string
		Expense []float64
		Income  []float64
	}

	// StatCard is a single dashboard figure with its month-over-month
	// percentage change. Favorable indicates the direction a UI should
	// color as good; the number itself keeps its arithmetic sign.
	StatCard struct {
		Amount    float64
		Change    float64
		Favorable bool
	}

	DashboardStats struct {
		Balance  StatCard
		Income   StatCard
		Expenses StatCard
		Savings  StatCard
	}

	GoalProgress struct {
		GoalID          int64
		TargetAmount    float64
		Deadline        Date
		ProgressPercent float64
	}
)

// PercentChange computes the period-over-period change of current vs
// previous, rounded to one decimal place. A zero previous value yields 100
// when anything appeared and 0 otherwise.
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return round1((current - previous) / previous * 100)
}

// GoalProgressPercent measures goal completion against all-time income,
// capped at 100 and rounded to two decimals. A non-positive target reports 0.
func GoalProgressPercent(totalIncome, targetAmount float64) float64 {
	if targetAmount <= 0 {
		return 0
	}
	return round2(math.Min(100, totalIncome/targetAmount*100))
}

// BuildTrendSeries expands sparse per-day totals into the full trend window
// ending on the given day. Days without ledger activity stay at zero.
func BuildTrendSeries(end Date, totals []DailyTotal) TrendSeries {
	byDay := make(map[string]DailyTotal, len(totals))
	for _, dt := range totals {
		byDay[dt.Date] = dt
	}

	series := TrendSeries{
		Labels:  make([]string, TrendDays),
		Expense: make([]float64, TrendDays),
		Income:  make([]float64, TrendDays),
	}
	start := end.AddDays(-(TrendDays - 1))
	for i := 0; i < TrendDays; i++ {
		day := start.AddDays(i).String()
		series.Labels[i] = day
		if dt, ok := byDay[day]; ok {
			series.Expense[i] = dt.Expense
			series.Income[i] = dt.Income
		}
	}
	return series
}

// BuildDashboardStats assembles the dashboard cards from current-month,
// previous-month and all-time sums. A drop in expenses counts as favorable
// even though the percentage keeps its sign.
func BuildDashboardStats(curIncome, curExpense, prevIncome, prevExpense, allTimeBalance float64) DashboardStats {
	curSavings := curIncome - curExpense
	prevSavings := prevIncome - prevExpense

	incomeChange := PercentChange(curIncome, prevIncome)
	expenseChange := PercentChange(curExpense, prevExpense)
	savingsChange := PercentChange(curSavings, prevSavings)

	return DashboardStats{
		// The balance moves by net savings month over month, so its change
		// tracks the savings change.
		Balance:  StatCard{Amount: allTimeBalance, Change: savingsChange, Favorable: allTimeBalance >= 0},
		Income:   StatCard{Amount: curIncome, Change: incomeChange, Favorable: incomeChange >= 0},
		Expenses: StatCard{Amount: curExpense, Change: expenseChange, Favorable: expenseChange <= 0},
		Savings:  StatCard{Amount: curSavings, Change: savingsChange, Favorable: savingsChange >= 0},
	}
}

// MonthStart returns the first day of the month containing t.
func MonthStart(t time.Time) Date {
	return NewDate(t.Year(), int(t.Month()), 1)
}

// PrevMonthRange returns the first and last day of the calendar month
// before the one containing t. December to January wraps the year.
func PrevMonthRange(t time.Time) (Date, Date) {
	start := MonthStart(t)
	return Date{Time: start.AddDate(0, -1, 0)}, start.AddDays(-1)
}

// MonthLabel formats t the way the summary report names months,
// e.g. "January 2026".
func MonthLabel(t time.Time) string {
	return t.Format("January 2006")
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
