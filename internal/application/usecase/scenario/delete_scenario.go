package scenario

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wealth-advisor/backend/internal/application/adapter"
	domainerror "github.com/wealth-advisor/backend/internal/domain/error"
)

// DeleteScenarioInput represents the input for scenario deletion.
type DeleteScenarioInput struct {
	ID uuid.UUID
}

// DeleteScenarioUseCase handles scenario deletion.
type DeleteScenarioUseCase struct {
	scenarioRepo adapter.ScenarioRepository
}

// NewDeleteScenarioUseCase creates a new DeleteScenarioUseCase instance.
func NewDeleteScenarioUseCase(scenarioRepo adapter.ScenarioRepository) *DeleteScenarioUseCase {
	return &DeleteScenarioUseCase{scenarioRepo: scenarioRepo}
}

// Execute deletes the scenario.
func (uc *DeleteScenarioUseCase) Execute(ctx context.Context, input DeleteScenarioInput) error {
	existed, err := uc.scenarioRepo.Delete(ctx, input.ID)
	if err != nil {
		return fmt.Errorf("failed to delete scenario: %w", err)
	}
	if !existed {
		return domainerror.ErrScenarioNotFound
	}
	return nil
}
