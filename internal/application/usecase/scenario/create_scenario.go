package scenario

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wealth-advisor/backend/internal/application/adapter"
	"github.com/wealth-advisor/backend/internal/domain/entity"
)

// CreateScenarioInput represents the input for saving a scenario.
type CreateScenarioInput struct {
	ClientID   uuid.UUID
	Name       string
	Type       string
	Parameters map[string]any
	Results    map[string]any // Optional
}

// CreateScenarioOutput represents the output of scenario creation.
type CreateScenarioOutput struct {
	Scenario *entity.Scenario
}

// CreateScenarioUseCase handles saving a what-if scenario.
type CreateScenarioUseCase struct {
	scenarioRepo adapter.ScenarioRepository
}

// NewCreateScenarioUseCase creates a new CreateScenarioUseCase instance.
func NewCreateScenarioUseCase(scenarioRepo adapter.ScenarioRepository) *CreateScenarioUseCase {
	return &CreateScenarioUseCase{scenarioRepo: scenarioRepo}
}

// Execute performs the scenario creation.
func (uc *CreateScenarioUseCase) Execute(ctx context.Context, input CreateScenarioInput) (*CreateScenarioOutput, error) {
	s := entity.NewScenario(input.ClientID, input.Name, input.Type, input.Parameters, input.Results)

	if err := uc.scenarioRepo.Create(ctx, s); err != nil {
		return nil, fmt.Errorf("failed to create scenario: %w", err)
	}

	return &CreateScenarioOutput{Scenario: s}, nil
}
