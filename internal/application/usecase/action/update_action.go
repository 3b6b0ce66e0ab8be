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

// UpdateActionInput represents a partial action update.
type UpdateActionInput struct {
	ID          uuid.UUID
	ClientID    *uuid.UUID
	Title       *string
	Description *string
	Priority    *entity.Priority
	DueDate     *time.Time
	IsCompleted *bool
}

// UpdateActionOutput represents the output of an action update.
type UpdateActionOutput struct {
	Action *entity.Action
}

// UpdateActionUseCase handles partial action updates.
type UpdateActionUseCase struct {
	actionRepo adapter.ActionRepository
}

// NewUpdateActionUseCase creates a new UpdateActionUseCase instance.
func NewUpdateActionUseCase(actionRepo adapter.ActionRepository) *UpdateActionUseCase {
	return &UpdateActionUseCase{actionRepo: actionRepo}
}

// Execute merges the provided fields into the existing action.
func (uc *UpdateActionUseCase) Execute(ctx context.Context, input UpdateActionInput) (*UpdateActionOutput, error) {
	a, err := uc.actionRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Priority != nil && !entity.IsValidPriority(*input.Priority) {
		return nil, domainerror.New(
			domainerror.ErrCodeInvalidActionFields,
			"priority must be 'low', 'medium', or 'high'",
			domainerror.ErrInvalidPriority,
		)
	}

	if input.ClientID != nil {
		a.ClientID = input.ClientID
	}
	if input.Title != nil {
		a.Title = *input.Title
	}
	if input.Description != nil {
		a.Description = input.Description
	}
	if input.Priority != nil {
		a.Priority = *input.Priority
	}
	if input.DueDate != nil {
		a.DueDate = input.DueDate
	}
	if input.IsCompleted != nil {
		a.IsCompleted = *input.IsCompleted
	}

	if err := uc.actionRepo.Update(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to update action: %w", err)
	}

	return &UpdateActionOutput{Action: a}, nil
}
