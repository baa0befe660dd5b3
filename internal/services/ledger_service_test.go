package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/internal/core"
	"fintrack/internal/storage"
)

func newTestUser(t *testing.T, repo *storage.Repository, email string) core.User {
	t.Helper()
	user, err := repo.CreateUser(context.Background(), email, "hash", "Test User")
	require.NoError(t, err)
	return user
}

func TestLedgerServiceCreateNormalizes(t *testing.T) {
	repo := newTestRepo(t)
	user := newTestUser(t, repo, "alice@example.com")
	svc := NewLedgerService(repo, nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, core.Transaction{
		UserID:      user.ID,
		Type:        " EXPENSE ",
		Category:    "  Food ",
		Amount:      12.5,
		Date:        core.NewDate(2026, 8, 30),
		Description: "  lunch ",
	})
	require.NoError(t, err)
	assert.Equal(t, core.Expense, created.Type)
	assert.Equal(t, "food", created.Category)
	assert.Equal(t, "lunch", created.Description)
	assert.NotZero(t, created.ID)
}

func TestLedgerServiceCreateValidation(t *testing.T) {
	repo := newTestRepo(t)
	user := newTestUser(t, repo, "alice@example.com")
	svc := NewLedgerService(repo, nil)
	ctx := context.Background()

	base := core.Transaction{
		UserID:   user.ID,
		Type:     "expense",
		Category: "food",
		Amount:   10,
		Date:     core.NewDate(2026, 8, 30),
	}

	tests := []struct {
		name    string
		mutate  func(*core.Transaction)
		wantErr error
	}{
		{"unknown type", func(tx *core.Transaction) { tx.Type = "transfer" }, core.ErrInvalidTransactionType},
		{"blank category", func(tx *core.Transaction) { tx.Category = "   " }, core.ErrEmptyCategory},
		{"negative amount", func(tx *core.Transaction) { tx.Amount = -1 }, core.ErrInvalidAmount},
		{"zero date", func(tx *core.Transaction) { tx.Date = core.Date{} }, core.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := base
			tt.mutate(&tx)
			_, err := svc.Create(ctx, tx)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLedgerServiceUpdateAndDelete(t *testing.T) {
	repo := newTestRepo(t)
	user := newTestUser(t, repo, "alice@example.com")
	svc := NewLedgerService(repo, nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, core.Transaction{
		UserID:   user.ID,
		Type:     "expense",
		Category: "food",
		Amount:   10,
		Date:     core.NewDate(2026, 8, 30),
	})
	require.NoError(t, err)

	created.Amount = 25
	created.Category = "Transport"
	updated, err := svc.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "transport", updated.Category)

	got, err := svc.Get(ctx, user.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 25.0, got.Amount)

	require.NoError(t, svc.Delete(ctx, user.ID, created.ID))
	_, err = svc.Get(ctx, user.ID, created.ID)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestLedgerServiceUpdateMissing(t *testing.T) {
	repo := newTestRepo(t)
	user := newTestUser(t, repo, "alice@example.com")
	svc := NewLedgerService(repo, nil)

	_, err := svc.Update(context.Background(), core.Transaction{
		ID:       999,
		UserID:   user.ID,
		Type:     "income",
		Category: "salary",
		Amount:   100,
		Date:     core.NewDate(2026, 8, 30),
	})
	assert.ErrorIs(t, err, core.ErrNotFound)
}
