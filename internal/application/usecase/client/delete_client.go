package client

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wealth-advisor/backend/internal/application/adapter"
	domainerror "github.com/wealth-advisor/backend/internal/domain/error"
)

// DeleteClientInput represents the input for client deletion.
type DeleteClientInput struct {
	ID uuid.UUID
}

// DeleteClientUseCase handles client deletion.
type DeleteClientUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewDeleteClientUseCase creates a new DeleteClientUseCase instance.
func NewDeleteClientUseCase(clientRepo adapter.ClientRepository) *DeleteClientUseCase {
	return &DeleteClientUseCase{clientRepo: clientRepo}
}

// Execute deletes the client. Goals and portfolios are deliberately not
// cascade-deleted; they keep their own lifecycle.
func (uc *DeleteClientUseCase) Execute(ctx context.Context, input DeleteClientInput) error {
	existed, err := uc.clientRepo.Delete(ctx, input.ID)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	if !existed {
		return domainerror.ErrClientNotFound
	}
	return nil
}
