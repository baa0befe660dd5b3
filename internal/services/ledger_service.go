package services

import (
	"context"
	"fmt"
	"log/slog"

	"fintrack/internal/amqp"
	"fintrack/internal/core"
	"fintrack/internal/storage"
)

// LedgerService orchestrates transaction CRUD across SQLite and AMQP.
type LedgerService struct {
	storage    *storage.Repository
	amqpClient *amqp.Client
}

func NewLedgerService(storage *storage.Repository, amqpClient *amqp.Client) *LedgerService {
	return &LedgerService{
		storage:    storage,
		amqpClient: amqpClient,
	}
}

// Create normalizes, validates and persists a transaction, then publishes a
// change event. Event publish failures are logged, never surfaced: the
// transaction is already saved.
func (s *LedgerService) Create(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	if err := t.Normalize(); err != nil {
		return core.Transaction{}, err
	}
	if err := t.Validate(); err != nil {
		return core.Transaction{}, err
	}

	created, err := s.storage.CreateTransaction(ctx, t)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("save transaction: %w", err)
	}

	s.publishEvent(ctx, created.ID, created.UserID, amqp.ActionCreated)

	slog.InfoContext(ctx, "Transaction created",
		"transaction_id", created.ID,
		"user_id", created.UserID,
		"type", created.Type,
		"amount", created.Amount)
	return created, nil
}

// List returns the user's transactions, most recent first.
func (s *LedgerService) List(ctx context.Context, userID int64) ([]core.Transaction, error) {
	return s.storage.ListTransactions(ctx, userID)
}

// Get fetches one of the user's transactions by id.
func (s *LedgerService) Get(ctx context.Context, userID, id int64) (core.Transaction, error) {
	return s.storage.GetTransaction(ctx, userID, id)
}

// Update replaces an existing transaction after re-normalizing and validating
// the new values. The record must belong to the user.
func (s *LedgerService) Update(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	if err := t.Normalize(); err != nil {
		return core.Transaction{}, err
	}
	if err := t.Validate(); err != nil {
		return core.Transaction{}, err
	}

	if err := s.storage.UpdateTransaction(ctx, t); err != nil {
		return core.Transaction{}, err
	}

	s.publishEvent(ctx, t.ID, t.UserID, amqp.ActionUpdated)

	slog.InfoContext(ctx, "Transaction updated",
		"transaction_id", t.ID,
		"user_id", t.UserID)
	return t, nil
}

// Delete removes one of the user's transactions.
func (s *LedgerService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.storage.DeleteTransaction(ctx, userID, id); err != nil {
		return err
	}

	s.publishEvent(ctx, id, userID, amqp.ActionDeleted)

	slog.InfoContext(ctx, "Transaction deleted",
		"transaction_id", id,
		"user_id", userID)
	return nil
}

func (s *LedgerService) publishEvent(ctx context.Context, transactionID, userID int64, action amqp.LedgerAction) {
	if s.amqpClient == nil {
		return
	}

	msg := amqp.NewLedgerEventMessage(transactionID, userID, action)
	if err := s.amqpClient.PublishLedgerEvent(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "Failed to publish ledger event",
			"transaction_id", transactionID,
			"action", action,
			"error", err)
		// Don't fail the request, the write already succeeded locally.
	}
}
