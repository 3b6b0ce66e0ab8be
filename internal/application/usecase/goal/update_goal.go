package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wealth-advisor/backend/internal/application/adapter"
	"github.com/wealth-advisor/backend/internal/domain/entity"
	domainerror "github.com/wealth-advisor/backend/internal/domain/error"
)

// UpdateGoalInput represents a partial goal update.
type UpdateGoalInput struct {
	ID            uuid.UUID
	Type          *entity.GoalType
	Name          *string
	TargetAmount  *decimal.Decimal
	CurrentAmount *decimal.Decimal
	TargetDate    *time.Time
	Progress      *int
	Priority      *entity.Priority
}

// UpdateGoalOutput represents the output of a goal update.
type UpdateGoalOutput struct {
	Goal *entity.Goal
}

// UpdateGoalUseCase handles partial goal updates.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{goalRepo: goalRepo}
}

// Execute merges the provided fields into the existing goal.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	g, err := uc.goalRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Type != nil && !entity.IsValidGoalType(*input.Type) {
		return nil, domainerror.New(
			domainerror.ErrCodeInvalidGoalFields,
			"type must be 'retirement', 'education', 'home', 'investment', or 'other'",
			domainerror.ErrInvalidGoalType,
		)
	}
	if input.Priority != nil && !entity.IsValidPriority(*input.Priority) {
		return nil, domainerror.New(
			domainerror.ErrCodeInvalidGoalFields,
			"priority must be 'low', 'medium', or 'high'",
			domainerror.ErrInvalidPriority,
		)
	}

	if input.Type != nil {
		g.Type = *input.Type
	}
	if input.Name != nil {
		g.Name = *input.Name
	}
	if input.TargetAmount != nil {
		g.TargetAmount = *input.TargetAmount
	}
	if input.CurrentAmount != nil {
		g.CurrentAmount = *input.CurrentAmount
	}
	if input.TargetDate != nil {
		g.TargetDate = *input.TargetDate
	}
	if input.Progress != nil {
		g.Progress = *input.Progress
	}
	if input.Priority != nil {
		g.Priority = *input.Priority
	}

	if err := uc.goalRepo.Update(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &UpdateGoalOutput{Goal: g}, nil
}
