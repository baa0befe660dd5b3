// Package storage persists users, transactions and goals in SQLite.
//
// Every query touching a user-owned entity filters by both the entity id and
// the owner id, so a record is never resolvable by id alone.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fintrack/internal/core"

	_ "modernc.org/sqlite"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(dbPath string) (*Repository, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// ---------------------------------------------------------------- users

func (r *Repository) CreateUser(ctx context.Context, email, passwordHash, name string) (core.User, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (email, password_hash, name) VALUES (?, ?, ?)`,
		email, passwordHash, name)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return core.User{}, core.ErrEmailTaken
		}
		return core.User{}, fmt.Errorf("insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return core.User{}, fmt.Errorf("user insert id: %w", err)
	}
	return core.User{ID: id, Email: email, PasswordHash: passwordHash, Name: name}, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (core.User, error) {
	var u core.User
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, name FROM users WHERE email = ?`,
		email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return core.User{}, core.ErrNotFound
	}
	if err != nil {
		return core.User{}, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

func (r *Repository) GetUserByID(ctx context.Context, id int64) (core.User, error) {
	var u core.User
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, name FROM users WHERE id = ?`,
		id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return core.User{}, core.ErrNotFound
	}
	if err != nil {
		return core.User{}, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

// --------------------------------------------------------- transactions

func (r *Repository) CreateTransaction(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO transactions (user_id, type, category, amount, date, description)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		t.UserID, string(t.Type), t.Category, t.Amount, t.Date.String(), t.Description)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return core.Transaction{}, fmt.Errorf("transaction insert id: %w", err)
	}
	t.ID = id
	return t, nil
}

// ListTransactions returns all of a user's transactions, most recent first.
func (r *Repository) ListTransactions(ctx context.Context, userID int64) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, type, category, amount, date, description
		 FROM transactions WHERE user_id = ?
		 ORDER BY date DESC, id DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var out []core.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *Repository) GetTransaction(ctx context.Context, userID, id int64) (core.Transaction, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, type, category, amount, date, description
		 FROM transactions WHERE id = ? AND user_id = ?`,
		id, userID)

	t, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Transaction{}, core.ErrNotFound
	}
	if err != nil {
		return core.Transaction{}, err
	}
	return t, nil
}

func (r *Repository) UpdateTransaction(ctx context.Context, t core.Transaction) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE transactions SET type = ?, category = ?, amount = ?, date = ?, description = ?
		 WHERE id = ? AND user_id = ?`,
		string(t.Type), t.Category, t.Amount, t.Date.String(), t.Description, t.ID, t.UserID)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	return requireRow(res)
}

func (r *Repository) DeleteTransaction(ctx context.Context, userID, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM transactions WHERE id = ? AND user_id = ?`,
		id, userID)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return requireRow(res)
}

// ---------------------------------------------------------------- goals

func (r *Repository) CreateGoal(ctx context.Context, g core.Goal) (core.Goal, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO goals (user_id, target_amount, current_amount, deadline)
		 VALUES (?, ?, ?, ?)`,
		g.UserID, g.TargetAmount, g.CurrentAmount, g.Deadline.String())
	if err != nil {
		return core.Goal{}, fmt.Errorf("insert goal: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return core.Goal{}, fmt.Errorf("goal insert id: %w", err)
	}
	g.ID = id
	return g, nil
}

func (r *Repository) ListGoals(ctx context.Context, userID int64) ([]core.Goal, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, target_amount, current_amount, deadline
		 FROM goals WHERE user_id = ? ORDER BY id`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	var out []core.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *Repository) GetGoal(ctx context.Context, userID, id int64) (core.Goal, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, target_amount, current_amount, deadline
		 FROM goals WHERE id = ? AND user_id = ?`,
		id, userID)

	g, err := scanGoal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Goal{}, core.ErrNotFound
	}
	if err != nil {
		return core.Goal{}, err
	}
	return g, nil
}

func (r *Repository) UpdateGoal(ctx context.Context, g core.Goal) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE goals SET target_amount = ?, current_amount = ?, deadline = ?
		 WHERE id = ? AND user_id = ?`,
		g.TargetAmount, g.CurrentAmount, g.Deadline.String(), g.ID, g.UserID)
	if err != nil {
		return fmt.Errorf("update goal: %w", err)
	}
	return requireRow(res)
}

func (r *Repository) DeleteGoal(ctx context.Context, userID, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM goals WHERE id = ? AND user_id = ?`,
		id, userID)
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	return requireRow(res)
}

// ----------------------------------------------------------- aggregates

// SumByType totals a user's transactions of one type. Empty from/to leave
// that side of the date range unbounded; bounds are inclusive.
func (r *Repository) SumByType(ctx context.Context, userID int64, tt core.TransactionType, from, to string) (float64, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE user_id = ? AND type = ?`
	args := []any{userID, string(tt)}
	if from != "" {
		query += ` AND date >= ?`
		args = append(args, from)
	}
	if to != "" {
		query += ` AND date <= ?`
		args = append(args, to)
	}

	var total float64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum by type: %w", err)
	}
	return total, nil
}

// ExpenseTotalsByCategory sums a user's expenses per category over their
// full history.
func (r *Repository) ExpenseTotalsByCategory(ctx context.Context, userID int64) (map[string]float64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT category, SUM(amount) FROM transactions
		 WHERE user_id = ? AND type = ?
		 GROUP BY category`,
		userID, string(core.Expense))
	if err != nil {
		return nil, fmt.Errorf("expense totals by category: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]float64)
	for rows.Next() {
		var category string
		var total float64
		if err := rows.Scan(&category, &total); err != nil {
			return nil, fmt.Errorf("scan category total: %w", err)
		}
		totals[category] = total
	}
	return totals, rows.Err()
}

// DailyTotals returns per-day income and expense sums within the inclusive
// date range. Days without transactions produce no row.
func (r *Repository) DailyTotals(ctx context.Context, userID int64, from, to string) ([]core.DailyTotal, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT date,
		        SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END),
		        SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END)
		 FROM transactions
		 WHERE user_id = ? AND date >= ? AND date <= ?
		 GROUP BY date
		 ORDER BY date`,
		userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("daily totals: %w", err)
	}
	defer rows.Close()

	var out []core.DailyTotal
	for rows.Next() {
		var dt core.DailyTotal
		if err := rows.Scan(&dt.Date, &dt.Income, &dt.Expense); err != nil {
			return nil, fmt.Errorf("scan daily total: %w", err)
		}
		out = append(out, dt)
	}
	return out, rows.Err()
}

// ------------------------------------------------------------- scanning

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (core.Transaction, error) {
	var (
		t       core.Transaction
		typ     string
		dateStr string
	)
	if err := row.Scan(&t.ID, &t.UserID, &typ, &t.Category, &t.Amount, &dateStr, &t.Description); err != nil {
		return core.Transaction{}, err
	}
	t.Type = core.TransactionType(typ)

	date, err := core.ParseDate(dateStr)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("stored date %q: %w", dateStr, err)
	}
	t.Date = date
	return t, nil
}

func scanGoal(row rowScanner) (core.Goal, error) {
	var (
		g           core.Goal
		deadlineStr string
	)
	if err := row.Scan(&g.ID, &g.UserID, &g.TargetAmount, &g.CurrentAmount, &deadlineStr); err != nil {
		return core.Goal{}, err
	}

	deadline, err := core.ParseDate(deadlineStr)
	if err != nil {
		return core.Goal{}, fmt.Errorf("stored deadline %q: %w", deadlineStr, err)
	}
	g.Deadline = deadline
	return g, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return core.ErrNotFound
	}
	return nil
}
