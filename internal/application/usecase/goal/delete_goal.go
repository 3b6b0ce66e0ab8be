package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wealth-advisor/backend/internal/application/adapter"
	domainerror "github.com/wealth-advisor/backend/internal/domain/error"
)

// DeleteGoalInput represents the input for goal deletion.
type DeleteGoalInput struct {
	ID uuid.UUID
}

// DeleteGoalUseCase handles goal deletion.
type DeleteGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(goalRepo adapter.GoalRepository) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{goalRepo: goalRepo}
}

// Execute deletes the goal.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) error {
	existed, err := uc.goalRepo.Delete(ctx, input.ID)
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	if !existed {
		return domainerror.ErrGoalNotFound
	}
	return nil
}
