package http

import (
	"net/http"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/internal/core"
)

// seedLedger posts transactions dated today so they land in the current
// month and the trend window regardless of when the tests run.
func (s *ServerTestSuite) seedLedger(token string) {
	today := core.DateOf(time.Now()).String()
	for _, req := range []transactionRequest{
		{Type: "income", Category: "salary", Amount: 3000, Date: today},
		{Type: "expense", Category: "rent", Amount: 1000, Date: today},
		{Type: "expense", Category: "food", Amount: 200, Date: today},
	} {
		rec := s.do(http.MethodPost, "/transactions", token, req)
		require.Equal(s.T(), http.StatusCreated, rec.Code, rec.Body.String())
	}
}

func (s *ServerTestSuite) TestReportSummary() {
	token := s.signupAndLogin("alice@example.com")
	s.seedLedger(token)

	rec := s.do(http.MethodGet, "/reports/summary", token, nil)
	require.Equal(s.T(), http.StatusOK, rec.Code)

	var resp summaryResponse
	s.decode(rec, &resp)
	assert.Equal(s.T(), core.MonthLabel(time.Now()), resp.Month)
	assert.Equal(s.T(), 3000.0, resp.TotalIncome)
	assert.Equal(s.T(), 1200.0, resp.TotalExpense)
	assert.Equal(s.T(), 1800.0, resp.NetSavings)
}

func (s *ServerTestSuite) TestReportCategories() {
	token := s.signupAndLogin("alice@example.com")
	s.seedLedger(token)

	rec := s.do(http.MethodGet, "/reports/categories", token, nil)
	require.Equal(s.T(), http.StatusOK, rec.Code)

	var resp categoriesResponse
	s.decode(rec, &resp)
	assert.Equal(s.T(), map[string]float64{"rent": 1000, "food": 200}, resp.CategoryExpenses)
}

func (s *ServerTestSuite) TestReportCategoriesEmpty() {
	token := s.signupAndLogin("alice@example.com")

	rec := s.do(http.MethodGet, "/reports/categories", token, nil)
	require.Equal(s.T(), http.StatusOK, rec.Code)

	var resp categoriesResponse
	s.decode(rec, &resp)
	assert.NotNil(s.T(), resp.CategoryExpenses)
	assert.Empty(s.T(), resp.CategoryExpenses)
}

func (s *ServerTestSuite) TestReportTrends() {
	token := s.signupAndLogin("alice@example.com")
	s.seedLedger(token)

	rec := s.do(http.MethodGet, "/reports/trends", token, nil)
	require.Equal(s.T(), http.StatusOK, rec.Code)

	var resp trendsResponse
	s.decode(rec, &resp)
	require.Len(s.T(), resp.Labels, core.TrendDays)
	require.Len(s.T(), resp.ExpenseData, core.TrendDays)
	require.Len(s.T(), resp.IncomeData, core.TrendDays)

	// Today is the last entry.
	today := core.DateOf(time.Now()).String()
	assert.Equal(s.T(), today, resp.Labels[core.TrendDays-1])
	assert.Equal(s.T(), 3000.0, resp.IncomeData[core.TrendDays-1])
	assert.Equal(s.T(), 1200.0, resp.ExpenseData[core.TrendDays-1])
	assert.Zero(s.T(), resp.IncomeData[0])
}

func (s *ServerTestSuite) TestReportDashboardStats() {
	token := s.signupAndLogin("alice@example.com")
	s.seedLedger(token)

	rec := s.do(http.MethodGet, "/reports/dashboard-stats", token, nil)
	require.Equal(s.T(), http.StatusOK, rec.Code)

	var resp dashboardStatsResponse
	s.decode(rec, &resp)
	assert.Equal(s.T(), 1800.0, resp.Balance.Amount)
	assert.True(s.T(), resp.Balance.IsPositive)
	assert.Equal(s.T(), 3000.0, resp.Income.Amount)
	// Nothing last month, so growth reads as 100%.
	assert.Equal(s.T(), 100.0, resp.Income.Change)
	assert.Equal(s.T(), 1200.0, resp.Expenses.Amount)
	assert.False(s.T(), resp.Expenses.IsPositive)
	assert.Equal(s.T(), 1800.0, resp.Savings.Amount)
}

func (s *ServerTestSuite) TestReportGoalsProgress() {
	token := s.signupAndLogin("alice@example.com")
	s.seedLedger(token)

	rec := s.do(http.MethodPost, "/goals", token, goalRequest{
		TargetAmount: 6000, Deadline: "2027-01-01",
	})
	require.Equal(s.T(), http.StatusCreated, rec.Code)

	rec = s.do(http.MethodGet, "/reports/goals-progress", token, nil)
	require.Equal(s.T(), http.StatusOK, rec.Code)

	var resp goalsProgressResponse
	s.decode(rec, &resp)
	require.Len(s.T(), resp.GoalsProgress, 1)
	// All-time income 3000 against a 6000 target.
	assert.Equal(s.T(), 50.0, resp.GoalsProgress[0].ProgressPercent)
	assert.Equal(s.T(), "2027-01-01", resp.GoalsProgress[0].Deadline)
}

func (s *ServerTestSuite) TestReportsRequireAuth() {
	for _, path := range []string{
		"/reports/summary",
		"/reports/categories",
		"/reports/trends",
		"/reports/dashboard-stats",
		"/reports/goals-progress",
	} {
		rec := s.do(http.MethodGet, path, "", nil)
		assert.Equal(s.T(), http.StatusUnauthorized, rec.Code, path)
	}
}
