package scenario

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wealth-advisor/backend/internal/application/adapter"
	"github.com/wealth-advisor/backend/internal/domain/entity"
)

// UpdateScenarioInput represents a partial scenario update. Parameters and
// results are replaced wholesale when provided, not merged key-by-key.
type UpdateScenarioInput struct {
	ID         uuid.UUID
	Name       *string
	Type       *string
	Parameters map[string]any
	Results    map[string]any
}

// UpdateScenarioOutput represents the output of a scenario update.
type UpdateScenarioOutput struct {
	Scenario *entity.Scenario
}

// UpdateScenarioUseCase handles partial scenario updates.
type UpdateScenarioUseCase struct {
	scenarioRepo adapter.ScenarioRepository
}

// NewUpdateScenarioUseCase creates a new UpdateScenarioUseCase instance.
func NewUpdateScenarioUseCase(scenarioRepo adapter.ScenarioRepository) *UpdateScenarioUseCase {
	return &UpdateScenarioUseCase{scenarioRepo: scenarioRepo}
}

// Execute merges the provided fields into the existing scenario.
func (uc *UpdateScenarioUseCase) Execute(ctx context.Context, input UpdateScenarioInput) (*UpdateScenarioOutput, error) {
	s, err := uc.scenarioRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		s.Name = *input.Name
	}
	if input.Type != nil {
		s.Type = *input.Type
	}
	if input.Parameters != nil {
		s.Parameters = input.Parameters
	}
	if input.Results != nil {
		s.Results = input.Results
	}

	if err := uc.scenarioRepo.Update(ctx, s); err != nil {
		return nil, fmt.Errorf("failed to update scenario: %w", err)
	}

	return &UpdateScenarioOutput{Scenario: s}, nil
}
