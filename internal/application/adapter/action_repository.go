package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/wealth-advisor/backend/internal/domain/entity"
)

// ActionRepository defines persistence operations for advisor actions.
type ActionRepository interface {
	// Create persists a new action.
	Create(ctx context.Context, action *entity.Action) error

	// FindByID retrieves an action by id. Returns
	// domainerror.ErrActionNotFound when the id does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Action, error)

	// FindActive retrieves all incomplete actions, newest first.
	FindActive(ctx context.Context) ([]*entity.Action, error)

	// Update replaces the stored action.
	Update(ctx context.Context, action *entity.Action) error

	// Toggle flips the completion flag and returns the updated action.
	// Returns domainerror.ErrActionNotFound when the id does not exist.
	Toggle(ctx context.Context, id uuid.UUID) (*entity.Action, error)

	// Delete removes an action, reporting whether it existed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
