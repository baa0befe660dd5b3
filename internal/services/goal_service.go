package services

import (
	"context"
	"fmt"
	"log/slog"

	"fintrack/internal/core"
	"fintrack/internal/storage"
)

// GoalService handles savings goal CRUD.
type GoalService struct {
	storage *storage.Repository
}

func NewGoalService(storage *storage.Repository) *GoalService {
	return &GoalService{storage: storage}
}

func (s *GoalService) Create(ctx context.Context, g core.Goal) (core.Goal, error) {
	if err := g.Validate(); err != nil {
		return core.Goal{}, err
	}

	created, err := s.storage.CreateGoal(ctx, g)
	if err != nil {
		return core.Goal{}, fmt.Errorf("save goal: %w", err)
	}

	slog.InfoContext(ctx, "Goal created",
		"goal_id", created.ID,
		"user_id", created.UserID,
		"target_amount", created.TargetAmount)
	return created, nil
}

func (s *GoalService) List(ctx context.Context, userID int64) ([]core.Goal, error) {
	return s.storage.ListGoals(ctx, userID)
}

func (s *GoalService) Get(ctx context.Context, userID, id int64) (core.Goal, error) {
	return s.storage.GetGoal(ctx, userID, id)
}

func (s *GoalService) Update(ctx context.Context, g core.Goal) (core.Goal, error) {
	if err := g.Validate(); err != nil {
		return core.Goal{}, err
	}

	if err := s.storage.UpdateGoal(ctx, g); err != nil {
		return core.Goal{}, err
	}

	slog.InfoContext(ctx, "Goal updated", "goal_id", g.ID, "user_id", g.UserID)
	return g, nil
}

func (s *GoalService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.storage.DeleteGoal(ctx, userID, id); err != nil {
		return err
	}

	slog.InfoContext(ctx, "Goal deleted", "goal_id", id, "user_id", userID)
	return nil
}
