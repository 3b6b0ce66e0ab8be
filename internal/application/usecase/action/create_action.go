package action

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wealth-advisor/backend/internal/application/adapter"
	"github.com/wealth-advisor/backend/internal/domain/entity"
	domainerror "github.com/wealth-advisor/backend/internal/domain/error"
)

// CreateActionInput represents the input for action creation. ClientID is
// nil for firm-wide tasks.
type CreateActionInput struct {
	ClientID    *uuid.UUID
	Title       string
	Description *string
	Priority    *entity.Priority // Optional, defaults to medium
	DueDate     *time.Time
}

// CreateActionOutput represents the output of action creation.
type CreateActionOutput struct {
	Action *entity.Action
}

// CreateActionUseCase handles action creation logic.
type CreateActionUseCase struct {
	actionRepo adapter.ActionRepository
}

// NewCreateActionUseCase creates a new CreateActionUseCase instance.
func NewCreateActionUseCase(actionRepo adapter.ActionRepository) *CreateActionUseCase {
	return &CreateActionUseCase{actionRepo: actionRepo}
}

// Execute performs the action creation.
func (uc *CreateActionUseCase) Execute(ctx context.Context, input CreateActionInput) (*CreateActionOutput, error) {
	priority := entity.PriorityMedium
	if input.Priority != nil {
		if !entity.IsValidPriority(*input.Priority) {
			return nil, domainerror.New(
				domainerror.ErrCodeInvalidActionFields,
				"priority must be 'low', 'medium', or 'high'",
				domainerror.ErrInvalidPriority,
			)
		}
		priority = *input.Priority
	}

	a := entity.NewAction(input.ClientID, input.Title, input.Description, priority, input.DueDate)

	if err := uc.actionRepo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to create action: %w", err)
	}

	return &CreateActionOutput{Action: a}, nil
}
