// Package scenario contains what-if scenario use cases.
package scenario

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wealth-advisor/backend/internal/application/adapter"
	"github.com/wealth-advisor/backend/internal/domain/entity"
)

// ListScenariosInput represents the input for listing a client's scenarios.
type ListScenariosInput struct {
	ClientID uuid.UUID
}

// ListScenariosOutput represents the output of listing scenarios.
type ListScenariosOutput struct {
	Scenarios []*entity.Scenario
}

// ListScenariosUseCase handles listing the scenarios of one client.
type ListScenariosUseCase struct {
	scenarioRepo adapter.ScenarioRepository
}

// NewListScenariosUseCase creates a new ListScenariosUseCase instance.
func NewListScenariosUseCase(scenarioRepo adapter.ScenarioRepository) *ListScenariosUseCase {
	return &ListScenariosUseCase{scenarioRepo: scenarioRepo}
}

// Execute retrieves the client's scenarios in creation order.
func (uc *ListScenariosUseCase) Execute(ctx context.Context, input ListScenariosInput) (*ListScenariosOutput, error) {
	scenarios, err := uc.scenarioRepo.FindByClient(ctx, input.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}
	return &ListScenariosOutput{Scenarios: scenarios}, nil
}
