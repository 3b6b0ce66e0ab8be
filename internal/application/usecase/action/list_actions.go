// Package action contains advisor-action use cases.
package action

import (
	"context"
	"fmt"

	"github.com/wealth-advisor/backend/internal/application/adapter"
	"github.com/wealth-advisor/backend/internal/domain/entity"
)

// ListActionsOutput represents the output of listing active actions.
type ListActionsOutput struct {
	Actions []*entity.Action
}

// ListActionsUseCase handles listing the advisor's open actions.
type ListActionsUseCase struct {
	actionRepo adapter.ActionRepository
}

// NewListActionsUseCase creates a new ListActionsUseCase instance.
func NewListActionsUseCase(actionRepo adapter.ActionRepository) *ListActionsUseCase {
	return &ListActionsUseCase{actionRepo: actionRepo}
}

// Execute retrieves all incomplete actions, newest first.
func (uc *ListActionsUseCase) Execute(ctx context.Context) (*ListActionsOutput, error) {
	actions, err := uc.actionRepo.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list actions: %w", err)
	}
	return &ListActionsOutput{Actions: actions}, nil
}
