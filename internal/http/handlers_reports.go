package http

import (
	"net/http"

	"fintrack/internal/core"
)

type summaryResponse struct {
	Month        string  `json:"month"`
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	NetSavings   float64 `json:"net_savings"`
}

type categoriesResponse struct {
	CategoryExpenses map[string]float64 `json:"category_expenses"`
}

type trendsResponse struct {
	Labels      []string  `json:"labels"`
	ExpenseData []float64 `json:"expense_data"`
	IncomeData  []float64 `json:"income_data"`
}

type statCardResponse struct {
	Amount     float64 `json:"amount"`
	Change     float64 `json:"change"`
	IsPositive bool    `json:"isPositive"`
}

type dashboardStatsResponse struct {
	Balance  statCardResponse `json:"balance"`
	Income   statCardResponse `json:"income"`
	Expenses statCardResponse `json:"expenses"`
	Savings  statCardResponse `json:"savings"`
}

type goalProgressResponse struct {
	GoalID          int64   `json:"goal_id"`
	TargetAmount    float64 `json:"target_amount"`
	Deadline        string  `json:"deadline"`
	ProgressPercent float64 `json:"progress_percent"`
}

type goalsProgressResponse struct {
	GoalsProgress []goalProgressResponse `json:"goals_progress"`
}

func toStatCardResponse(c core.StatCard) statCardResponse {
	return statCardResponse{
		Amount:     c.Amount,
		Change:     c.Change,
		IsPositive: c.Favorable,
	}
}

func (s *Server) handleReportSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.reports.MonthlySummary(r.Context(), currentUser(r.Context()).ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summaryResponse{
		Month:        summary.Month,
		TotalIncome:  summary.TotalIncome,
		TotalExpense: summary.TotalExpense,
		NetSavings:   summary.NetSavings,
	})
}

func (s *Server) handleReportCategories(w http.ResponseWriter, r *http.Request) {
	totals, err := s.reports.CategoryBreakdown(r.Context(), currentUser(r.Context()).ID)
	if err != nil {
		writeError(w, err)
		return
	}
	if totals == nil {
		totals = map[string]float64{}
	}
	writeJSON(w, http.StatusOK, categoriesResponse{CategoryExpenses: totals})
}

func (s *Server) handleReportTrends(w http.ResponseWriter, r *http.Request) {
	series, err := s.reports.Trends(r.Context(), currentUser(r.Context()).ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trendsResponse{
		Labels:      series.Labels,
		ExpenseData: series.Expense,
		IncomeData:  series.Income,
	})
}

func (s *Server) handleReportDashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.reports.DashboardStats(r.Context(), currentUser(r.Context()).ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dashboardStatsResponse{
		Balance:  toStatCardResponse(stats.Balance),
		Income:   toStatCardResponse(stats.Income),
		Expenses: toStatCardResponse(stats.Expenses),
		Savings:  toStatCardResponse(stats.Savings),
	})
}

func (s *Server) handleReportGoalsProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := s.reports.GoalsProgress(r.Context(), currentUser(r.Context()).ID)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]goalProgressResponse, 0, len(progress))
	for _, p := range progress {
		out = append(out, goalProgressResponse{
			GoalID:          p.GoalID,
			TargetAmount:    p.TargetAmount,
			Deadline:        p.Deadline.String(),
			ProgressPercent: p.ProgressPercent,
		})
	}
	writeJSON(w, http.StatusOK, goalsProgressResponse{GoalsProgress: out})
}
