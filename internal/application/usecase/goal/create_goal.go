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

// CreateGoalInput represents the input for goal creation. Progress is
// advisory, caller-supplied data; it is stored as-is.
type CreateGoalInput struct {
	ClientID      uuid.UUID
	Type          entity.GoalType
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    time.Time
	Progress      *int             // Optional, defaults to 0
	Priority      *entity.Priority // Optional, defaults to medium
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{goalRepo: goalRepo}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if !entity.IsValidGoalType(input.Type) {
		return nil, domainerror.New(
			domainerror.ErrCodeInvalidGoalFields,
			"type must be 'retirement', 'education', 'home', 'investment', or 'other'",
			domainerror.ErrInvalidGoalType,
		)
	}

	progress := 0
	if input.Progress != nil {
		progress = *input.Progress
	}

	priority := entity.PriorityMedium
	if input.Priority != nil {
		if !entity.IsValidPriority(*input.Priority) {
			return nil, domainerror.New(
				domainerror.ErrCodeInvalidGoalFields,
				"priority must be 'low', 'medium', or 'high'",
				domainerror.ErrInvalidPriority,
			)
		}
		priority = *input.Priority
	}

	g := entity.NewGoal(
		input.ClientID,
		input.Type,
		input.Name,
		input.TargetAmount,
		input.CurrentAmount,
		input.TargetDate,
		progress,
		priority,
	)

	if err := uc.goalRepo.Create(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{Goal: g}, nil
}
