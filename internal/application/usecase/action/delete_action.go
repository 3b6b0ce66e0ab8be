package action

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wealth-advisor/backend/internal/application/adapter"
	domainerror "github.com/wealth-advisor/backend/internal/domain/error"
)

// DeleteActionInput represents the input for action deletion.
type DeleteActionInput struct {
	ID uuid.UUID
}

// DeleteActionUseCase handles action deletion.
type DeleteActionUseCase struct {
	actionRepo adapter.ActionRepository
}

// NewDeleteActionUseCase creates a new DeleteActionUseCase instance.
func NewDeleteActionUseCase(actionRepo adapter.ActionRepository) *DeleteActionUseCase {
	return &DeleteActionUseCase{actionRepo: actionRepo}
}

// Execute deletes the action.
func (uc *DeleteActionUseCase) Execute(ctx context.Context, input DeleteActionInput) error {
	existed, err := uc.actionRepo.Delete(ctx, input.ID)
	if err != nil {
		return fmt.Errorf("failed to delete action: %w", err)
	}
	if !existed {
		return domainerror.ErrActionNotFound
	}
	return nil
}
