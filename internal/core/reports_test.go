package core

import (
	"testing"
	"time"
)

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		want     float64
	}{
		{"zero previous with activity", 50, 0, 100},
		{"zero previous no activity", 0, 0, 0},
		{"halved", 25, 50, -50},
		{"doubled", 100, 50, 100},
		{"rounds to one decimal", 100, 30, 233.3},
		{"decrease rounds", 10, 30, -66.7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PercentChange(tt.current, tt.previous); got != tt.want {
				t.Errorf("PercentChange(%v, %v) = %v, want %v", tt.current, tt.previous, got, tt.want)
			}
		})
	}
}

func TestGoalProgressPercent(t *testing.T) {
	tests := []struct {
		name   string
		income float64
		target float64
		want   float64
	}{
		{"quarter funded", 250, 1000, 25},
		{"capped at 100", 5000, 1000, 100},
		{"zero target", 250, 0, 0},
		{"negative target", 250, -10, 0},
		{"two decimal rounding", 100, 300, 33.33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GoalProgressPercent(tt.income, tt.target); got != tt.want {
				t.Errorf("GoalProgressPercent(%v, %v) = %v, want %v", tt.income, tt.target, got, tt.want)
			}
		})
	}
}

func TestBuildTrendSeries(t *testing.T) {
	end := NewDate(2026, 8, 31)
	totals := []DailyTotal{
		{Date: "2026-08-31", Income: 100, Expense: 40},
		{Date: "2026-08-02", Income: 0, Expense: 15},
		// Outside the window, must be ignored.
		{Date: "2026-07-01", Income: 999, Expense: 999},
	}

	series := BuildTrendSeries(end, totals)

	if len(series.Labels) != TrendDays || len(series.Expense) != TrendDays || len(series.Income) != TrendDays {
		t.Fatalf("series lengths = %d/%d/%d, want %d each",
			len(series.Labels), len(series.Expense), len(series.Income), TrendDays)
	}
	if series.Labels[0] != "2026-08-02" {
		t.Errorf("first label = %s, want 2026-08-02", series.Labels[0])
	}
	if series.Labels[TrendDays-1] != "2026-08-31" {
		t.Errorf("last label = %s, want 2026-08-31", series.Labels[TrendDays-1])
	}
	if series.Expense[0] != 15 {
		t.Errorf("oldest expense = %v, want 15", series.Expense[0])
	}
	if series.Income[TrendDays-1] != 100 || series.Expense[TrendDays-1] != 40 {
		t.Errorf("newest day = %v/%v, want 100/40", series.Income[TrendDays-1], series.Expense[TrendDays-1])
	}

	// Every other day stays zero-filled.
	for i := 1; i < TrendDays-1; i++ {
		if series.Income[i] != 0 || series.Expense[i] != 0 {
			t.Errorf("day %s should be zero, got income=%v expense=%v",
				series.Labels[i], series.Income[i], series.Expense[i])
		}
	}
}

func TestBuildTrendSeriesAcrossMonthBoundary(t *testing.T) {
	series := BuildTrendSeries(NewDate(2026, 1, 5), nil)
	if series.Labels[0] != "2025-12-07" {
		t.Errorf("first label = %s, want 2025-12-07", series.Labels[0])
	}
	if series.Labels[TrendDays-1] != "2026-01-05" {
		t.Errorf("last label = %s, want 2026-01-05", series.Labels[TrendDays-1])
	}
}

func TestBuildDashboardStats(t *testing.T) {
	stats := BuildDashboardStats(200, 100, 100, 200, 1500)

	if stats.Income.Amount != 200 || stats.Income.Change != 100 || !stats.Income.Favorable {
		t.Errorf("income card = %+v", stats.Income)
	}
	if stats.Expenses.Amount != 100 || stats.Expenses.Change != -50 {
		t.Errorf("expenses card = %+v", stats.Expenses)
	}
	// Spending dropped: the number stays negative but the direction is good.
	if !stats.Expenses.Favorable {
		t.Error("expense decrease should be favorable")
	}
	if stats.Savings.Amount != 100 {
		t.Errorf("savings amount = %v, want 100", stats.Savings.Amount)
	}
	if stats.Balance.Amount != 1500 || !stats.Balance.Favorable {
		t.Errorf("balance card = %+v", stats.Balance)
	}
}

func TestBuildDashboardStatsQuietPreviousMonth(t *testing.T) {
	stats := BuildDashboardStats(50, 0, 0, 0, 50)
	if stats.Income.Change != 100 {
		t.Errorf("income change = %v, want 100", stats.Income.Change)
	}
	if stats.Expenses.Change != 0 || !stats.Expenses.Favorable {
		t.Errorf("expenses card = %+v", stats.Expenses)
	}
}

func TestPrevMonthRange(t *testing.T) {
	start, end := PrevMonthRange(time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC))
	if start.String() != "2025-12-01" || end.String() != "2025-12-31" {
		t.Errorf("january wraps to %s..%s, want 2025-12-01..2025-12-31", start, end)
	}

	start, end = PrevMonthRange(time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC))
	if start.String() != "2026-02-01" || end.String() != "2026-02-28" {
		t.Errorf("march gives %s..%s, want 2026-02-01..2026-02-28", start, end)
	}
}

func TestMonthLabel(t *testing.T) {
	if got := MonthLabel(time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)); got != "August 2026" {
		t.Errorf("MonthLabel = %q, want %q", got, "August 2026")
	}
}
