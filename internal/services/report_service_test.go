package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/internal/core"
	"fintrack/internal/storage"
)

// reportFixture seeds a ledger around a frozen "today" of 2026-08-20.
func reportFixture(t *testing.T) (*ReportService, *storage.Repository, core.User) {
	t.Helper()
	repo := newTestRepo(t)
	user := newTestUser(t, repo, "alice@example.com")

	svc := NewReportService(repo)
	svc.now = func() time.Time {
		return time.Date(2026, 8, 20, 15, 30, 0, 0, time.UTC)
	}

	seed := []core.Transaction{
		{UserID: user.ID, Type: core.Income, Category: "salary", Amount: 3000, Date: core.NewDate(2026, 8, 1)},
		{UserID: user.ID, Type: core.Expense, Category: "rent", Amount: 1000, Date: core.NewDate(2026, 8, 2)},
		{UserID: user.ID, Type: core.Expense, Category: "food", Amount: 200, Date: core.NewDate(2026, 8, 10)},
		// Previous month.
		{UserID: user.ID, Type: core.Income, Category: "salary", Amount: 2000, Date: core.NewDate(2026, 7, 1)},
		{UserID: user.ID, Type: core.Expense, Category: "rent", Amount: 1000, Date: core.NewDate(2026, 7, 2)},
		// Outside both months and the trend window.
		{UserID: user.ID, Type: core.Income, Category: "bonus", Amount: 500, Date: core.NewDate(2026, 1, 15)},
	}
	for _, tx := range seed {
		_, err := repo.CreateTransaction(context.Background(), tx)
		require.NoError(t, err)
	}

	return svc, repo, user
}

func TestReportServiceMonthlySummary(t *testing.T) {
	svc, _, user := reportFixture(t)

	summary, err := svc.MonthlySummary(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "August 2026", summary.Month)
	assert.Equal(t, 3000.0, summary.TotalIncome)
	assert.Equal(t, 1200.0, summary.TotalExpense)
	assert.Equal(t, 1800.0, summary.NetSavings)
}

func TestReportServiceCategoryBreakdown(t *testing.T) {
	svc, _, user := reportFixture(t)

	totals, err := svc.CategoryBreakdown(context.Background(), user.ID)
	require.NoError(t, err)
	// All-time expenses, income categories excluded.
	assert.Equal(t, map[string]float64{"rent": 2000, "food": 200}, totals)
}

func TestReportServiceTrends(t *testing.T) {
	svc, _, user := reportFixture(t)

	series, err := svc.Trends(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, series.Labels, core.TrendDays)
	require.Len(t, series.Expense, core.TrendDays)
	require.Len(t, series.Income, core.TrendDays)

	// Window runs 2026-07-22 through 2026-08-20.
	assert.Equal(t, "2026-07-22", series.Labels[0])
	assert.Equal(t, "2026-08-20", series.Labels[core.TrendDays-1])

	byLabel := make(map[string]int, core.TrendDays)
	for i, label := range series.Labels {
		byLabel[label] = i
	}
	assert.Equal(t, 3000.0, series.Income[byLabel["2026-08-01"]])
	assert.Equal(t, 1000.0, series.Expense[byLabel["2026-08-02"]])
	assert.Equal(t, 200.0, series.Expense[byLabel["2026-08-10"]])
	// July salary on the 1st predates the window.
	assert.Zero(t, series.Income[byLabel["2026-07-22"]])
}

func TestReportServiceDashboardStats(t *testing.T) {
	svc, _, user := reportFixture(t)

	stats, err := svc.DashboardStats(context.Background(), user.ID)
	require.NoError(t, err)

	// All-time: income 5500, expense 2200.
	assert.Equal(t, 3300.0, stats.Balance.Amount)
	assert.True(t, stats.Balance.Favorable)

	assert.Equal(t, 3000.0, stats.Income.Amount)
	assert.Equal(t, 50.0, stats.Income.Change) // 3000 vs 2000
	assert.True(t, stats.Income.Favorable)

	assert.Equal(t, 1200.0, stats.Expenses.Amount)
	assert.Equal(t, 20.0, stats.Expenses.Change) // 1200 vs 1000
	assert.False(t, stats.Expenses.Favorable)

	assert.Equal(t, 1800.0, stats.Savings.Amount)
	assert.Equal(t, 80.0, stats.Savings.Change) // 1800 vs 1000
	assert.True(t, stats.Savings.Favorable)
	assert.Equal(t, stats.Savings.Change, stats.Balance.Change)
}

func TestReportServiceGoalsProgress(t *testing.T) {
	svc, repo, user := reportFixture(t)
	ctx := context.Background()

	reachable, err := repo.CreateGoal(ctx, core.Goal{
		UserID: user.ID, TargetAmount: 10000, Deadline: core.NewDate(2027, 1, 1),
	})
	require.NoError(t, err)
	exceeded, err := repo.CreateGoal(ctx, core.Goal{
		UserID: user.ID, TargetAmount: 100, Deadline: core.NewDate(2026, 12, 1),
	})
	require.NoError(t, err)

	progress, err := svc.GoalsProgress(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, progress, 2)

	// All-time income is 5500.
	assert.Equal(t, reachable.ID, progress[0].GoalID)
	assert.Equal(t, 55.0, progress[0].ProgressPercent)
	assert.Equal(t, exceeded.ID, progress[1].GoalID)
	assert.Equal(t, 100.0, progress[1].ProgressPercent)
}

func TestReportServiceEmptyLedger(t *testing.T) {
	repo := newTestRepo(t)
	user := newTestUser(t, repo, "empty@example.com")
	svc := NewReportService(repo)

	summary, err := svc.MonthlySummary(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Zero(t, summary.TotalIncome)
	assert.Zero(t, summary.NetSavings)

	stats, err := svc.DashboardStats(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Zero(t, stats.Income.Change)
	assert.True(t, stats.Balance.Favorable)

	progress, err := svc.GoalsProgress(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Empty(t, progress)
}
