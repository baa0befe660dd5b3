package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

type (
	TransactionType string

	// Date is a calendar day with no time component. It always lives in UTC
	// and serializes as YYYY-MM-DD.
	Date struct {
		time.Time
	}

	User struct {
		ID           int64
		Email        string
		PasswordHash string
		Name         string
	}

	Transaction struct {
		ID          int64
		UserID      int64
		Type        TransactionType
		Category    string
		Amount      float64
		Date        Date
		Description string
	}

	Goal struct {
		ID            int64
		UserID        int64
		TargetAmount  float64
		CurrentAmount float64
		Deadline      Date
	}
)

var (
	ErrNotFound               = errors.New("not found")
	ErrEmailTaken             = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidToken           = errors.New("invalid or expired token")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrEmptyCategory          = errors.New("empty category")
	ErrInvalidDate            = errors.New("invalid date")
	ErrEmptyEmail             = errors.New("empty email")
	ErrEmptyPassword          = errors.New("empty password")
)

const dateLayout = "2006-01-02"

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates an instant to its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

// AddDays returns the date shifted by the given number of calendar days.
func (d Date) AddDays(days int) Date {
	return Date{Time: d.AddDate(0, 0, days)}
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// NormalizeTransactionType trims and lowercases raw input, accepting only
// income and expense.
func NormalizeTransactionType(s string) (TransactionType, error) {
	switch t := TransactionType(strings.ToLower(strings.TrimSpace(s))); t {
	case Income, Expense:
		return t, nil
	default:
		return "", ErrInvalidTransactionType
	}
}

// NormalizeCategory trims and lowercases a free-text category label.
func NormalizeCategory(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Normalize canonicalizes the type and category in place. Must run before
// Validate on caller-supplied data.
func (t *Transaction) Normalize() error {
	tt, err := NormalizeTransactionType(string(t.Type))
	if err != nil {
		return err
	}
	t.Type = tt
	t.Category = NormalizeCategory(t.Category)
	t.Description = strings.TrimSpace(t.Description)
	return nil
}

func (t Transaction) Validate() error {
	switch t.Type {
	case Income, Expense:
	default:
		return ErrInvalidTransactionType
	}
	if t.Category == "" {
		return ErrEmptyCategory
	}
	if t.Amount < 0 {
		return ErrInvalidAmount
	}
	return t.Date.Validate()
}

func (g Goal) Validate() error {
	if g.TargetAmount < 0 || g.CurrentAmount < 0 {
		return ErrInvalidAmount
	}
	return g.Deadline.Validate()
}
