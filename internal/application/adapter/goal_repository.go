package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/wealth-advisor/backend/internal/domain/entity"
)

// GoalRepository defines persistence operations for financial goals.
type GoalRepository interface {
	// Create persists a new goal.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal by id. Returns domainerror.ErrGoalNotFound
	// when the id does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// FindByClient retrieves all goals for a client in creation order.
	FindByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Goal, error)

	// Update replaces the stored goal.
	Update(ctx context.Context, goal *entity.Goal) error

	// Delete removes a goal, reporting whether it existed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
