package services

import (
	"context"
	"fmt"
	"time"

	"fintrack/internal/core"
	"fintrack/internal/storage"
)

// ReportService derives monthly summaries, category breakdowns, daily trends,
// dashboard statistics and goal progress from the ledger. Every report is
// computed on demand from the database; nothing is cached.
type ReportService struct {
	storage *storage.Repository
	now     func() time.Time
}

func NewReportService(storage *storage.Repository) *ReportService {
	return &ReportService{
		storage: storage,
		now:     time.Now,
	}
}

// MonthlySummary totals the current calendar month up to today.
func (s *ReportService) MonthlySummary(ctx context.Context, userID int64) (core.MonthlySummary, error) {
	now := s.now()
	from := core.MonthStart(now).String()
	to := core.DateOf(now).String()

	income, err := s.storage.SumByType(ctx, userID, core.Income, from, to)
	if err != nil {
		return core.MonthlySummary{}, fmt.Errorf("month income: %w", err)
	}
	expense, err := s.storage.SumByType(ctx, userID, core.Expense, from, to)
	if err != nil {
		return core.MonthlySummary{}, fmt.Errorf("month expense: %w", err)
	}

	return core.MonthlySummary{
		Month:        core.MonthLabel(now),
		TotalIncome:  income,
		TotalExpense: expense,
		NetSavings:   income - expense,
	}, nil
}

// CategoryBreakdown sums all-time expenses per category.
func (s *ReportService) CategoryBreakdown(ctx context.Context, userID int64) (map[string]float64, error) {
	return s.storage.ExpenseTotalsByCategory(ctx, userID)
}

// Trends returns per-day income and expense series over the trailing trend
// window ending today. Days with no activity report zero.
func (s *ReportService) Trends(ctx context.Context, userID int64) (core.TrendSeries, error) {
	end := core.DateOf(s.now())
	start := end.AddDays(-(core.TrendDays - 1))

	totals, err := s.storage.DailyTotals(ctx, userID, start.String(), end.String())
	if err != nil {
		return core.TrendSeries{}, fmt.Errorf("daily totals: %w", err)
	}
	return core.BuildTrendSeries(end, totals), nil
}

// DashboardStats assembles the four dashboard cards with month-over-month
// changes against the previous calendar month.
func (s *ReportService) DashboardStats(ctx context.Context, userID int64) (core.DashboardStats, error) {
	now := s.now()
	curFrom := core.MonthStart(now).String()
	curTo := core.DateOf(now).String()
	prevStart, prevEnd := core.PrevMonthRange(now)

	curIncome, err := s.storage.SumByType(ctx, userID, core.Income, curFrom, curTo)
	if err != nil {
		return core.DashboardStats{}, fmt.Errorf("current income: %w", err)
	}
	curExpense, err := s.storage.SumByType(ctx, userID, core.Expense, curFrom, curTo)
	if err != nil {
		return core.DashboardStats{}, fmt.Errorf("current expense: %w", err)
	}
	prevIncome, err := s.storage.SumByType(ctx, userID, core.Income, prevStart.String(), prevEnd.String())
	if err != nil {
		return core.DashboardStats{}, fmt.Errorf("previous income: %w", err)
	}
	prevExpense, err := s.storage.SumByType(ctx, userID, core.Expense, prevStart.String(), prevEnd.String())
	if err != nil {
		return core.DashboardStats{}, fmt.Errorf("previous expense: %w", err)
	}
	allIncome, err := s.storage.SumByType(ctx, userID, core.Income, "", "")
	if err != nil {
		return core.DashboardStats{}, fmt.Errorf("all-time income: %w", err)
	}
	allExpense, err := s.storage.SumByType(ctx, userID, core.Expense, "", "")
	if err != nil {
		return core.DashboardStats{}, fmt.Errorf("all-time expense: %w", err)
	}

	return core.BuildDashboardStats(curIncome, curExpense, prevIncome, prevExpense, allIncome-allExpense), nil
}

// GoalsProgress measures each goal against the user's all-time income.
func (s *ReportService) GoalsProgress(ctx context.Context, userID int64) ([]core.GoalProgress, error) {
	goals, err := s.storage.ListGoals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	totalIncome, err := s.storage.SumByType(ctx, userID, core.Income, "", "")
	if err != nil {
		return nil, fmt.Errorf("all-time income: %w", err)
	}

	progress := make([]core.GoalProgress, 0, len(goals))
	for _, g := range goals {
		progress = append(progress, core.GoalProgress{
			GoalID:          g.ID,
			TargetAmount:    g.TargetAmount,
			Deadline:        g.Deadline,
			ProgressPercent: core.GoalProgressPercent(totalIncome, g.TargetAmount),
		})
	}
	return progress, nil
}
