package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/wealth-advisor/backend/internal/domain/entity"
)

// ScenarioRepository defines persistence operations for saved scenarios.
type ScenarioRepository interface {
	// Create persists a new scenario.
	Create(ctx context.Context, scenario *entity.Scenario) error

	// FindByID retrieves a scenario by id. Returns
	// domainerror.ErrScenarioNotFound when the id does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Scenario, error)

	// FindByClient retrieves all scenarios for a client in creation order.
	FindByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Scenario, error)

	// Update replaces the stored scenario.
	Update(ctx context.Context, scenario *entity.Scenario) error

	// Delete removes a scenario, reporting whether it existed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
