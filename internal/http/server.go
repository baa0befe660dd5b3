// Package http exposes the JSON API: authentication, transaction and goal
// CRUD, and the reporting endpoints.
package http

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"fintrack/internal/middleware/ratelimit"
	"fintrack/internal/middleware/security"
	"fintrack/internal/middleware/trace"
	"fintrack/internal/services"
)

type Server struct {
	http.Server

	auth    *services.AuthService
	ledger  *services.LedgerService
	goals   *services.GoalService
	reports *services.ReportService

	authLimiter  *ratelimit.Limiter
	shutdownOnce sync.Once
}

func NewServer(port int, auth *services.AuthService, ledger *services.LedgerService, goals *services.GoalService, reports *services.ReportService) *Server {
	s := &Server{
		auth:        auth,
		ledger:      ledger,
		goals:       goals,
		reports:     reports,
		authLimiter: ratelimit.NewLimiter(ratelimit.DefaultConfig()),
	}

	s.Server = http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	// Credential endpoints are rate limited per client IP, everything else
	// is behind bearer auth.
	limited := s.authLimiter.Middleware(extractClientIP, nil)

	mux.Handle("POST /auth/signup", limited(http.HandlerFunc(s.handleSignup)))
	mux.Handle("POST /auth/login", limited(http.HandlerFunc(s.handleLogin)))
	mux.HandleFunc("GET /auth/me", s.requireAuth(s.handleMe))

	mux.HandleFunc("POST /transactions", s.requireAuth(s.handleCreateTransaction))
	mux.HandleFunc("GET /transactions", s.requireAuth(s.handleListTransactions))
	mux.HandleFunc("GET /transactions/{id}", s.requireAuth(s.handleGetTransaction))
	mux.HandleFunc("PUT /transactions/{id}", s.requireAuth(s.handleUpdateTransaction))
	mux.HandleFunc("DELETE /transactions/{id}", s.requireAuth(s.handleDeleteTransaction))

	mux.HandleFunc("POST /goals", s.requireAuth(s.handleCreateGoal))
	mux.HandleFunc("GET /goals", s.requireAuth(s.handleListGoals))
	mux.HandleFunc("GET /goals/{id}", s.requireAuth(s.handleGetGoal))
	mux.HandleFunc("PUT /goals/{id}", s.requireAuth(s.handleUpdateGoal))
	mux.HandleFunc("DELETE /goals/{id}", s.requireAuth(s.handleDeleteGoal))

	mux.HandleFunc("GET /reports/summary", s.requireAuth(s.handleReportSummary))
	mux.HandleFunc("GET /reports/categories", s.requireAuth(s.handleReportCategories))
	mux.HandleFunc("GET /reports/trends", s.requireAuth(s.handleReportTrends))
	mux.HandleFunc("GET /reports/dashboard-stats", s.requireAuth(s.handleReportDashboardStats))
	mux.HandleFunc("GET /reports/goals-progress", s.requireAuth(s.handleReportGoalsProgress))

	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.HandleFunc("GET /readyz", s.handleReadyz)

	headers := security.NewHeadersMiddleware(security.DefaultHeadersConfig())
	tracer := trace.NewMiddleware(extractClientIP)

	return headers.Middleware(tracer.Middleware(mux))
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// Shutdown stops the HTTP server and the rate limiter's cleanup goroutine.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		if s.authLimiter != nil {
			s.authLimiter.Stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}
