package action

import (
	"context"

	"github.com/google/uuid"

	"github.com/wealth-advisor/backend/internal/application/adapter"
	"github.com/wealth-advisor/backend/internal/domain/entity"
)

// ToggleActionInput represents the input for toggling completion.
type ToggleActionInput struct {
	ID uuid.UUID
}

// ToggleActionOutput represents the output of toggling completion.
type ToggleActionOutput struct {
	Action *entity.Action
}

// ToggleActionUseCase flips an action's completion flag. Toggling twice
// returns the action to its original state.
type ToggleActionUseCase struct {
	actionRepo adapter.ActionRepository
}

// NewToggleActionUseCase creates a new ToggleActionUseCase instance.
func NewToggleActionUseCase(actionRepo adapter.ActionRepository) *ToggleActionUseCase {
	return &ToggleActionUseCase{actionRepo: actionRepo}
}

// Execute toggles the action, passing through ErrActionNotFound.
func (uc *ToggleActionUseCase) Execute(ctx context.Context, input ToggleActionInput) (*ToggleActionOutput, error) {
	a, err := uc.actionRepo.Toggle(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &ToggleActionOutput{Action: a}, nil
}
