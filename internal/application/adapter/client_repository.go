// Package adapter defines interfaces that will be implemented in the
// integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/wealth-advisor/backend/internal/domain/entity"
)

// ClientRepository defines persistence operations for clients.
type ClientRepository interface {
	// Create persists a new client.
	Create(ctx context.Context, client *entity.Client) error

	// FindByID retrieves a client by id. Returns
	// domainerror.ErrClientNotFound when the id does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)

	// FindAll retrieves all clients in creation order.
	FindAll(ctx context.Context) ([]*entity.Client, error)

	// FindRecent retrieves up to limit clients ordered by last contact,
	// most recent first.
	FindRecent(ctx context.Context, limit int) ([]*entity.Client, error)

	// Update replaces the stored client. The id is never changed.
	Update(ctx context.Context, client *entity.Client) error

	// Delete removes a client, reporting whether it existed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
