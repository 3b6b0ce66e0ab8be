package client

import (
	"context"

	"github.com/google/uuid"

	"github.com/wealth-advisor/backend/internal/application/adapter"
	"github.com/wealth-advisor/backend/internal/domain/entity"
)

// GetClientInput represents the input for fetching a single client.
type GetClientInput struct {
	ID uuid.UUID
}

// GetClientOutput represents the output of fetching a single client.
type GetClientOutput struct {
	Client *entity.Client
}

// GetClientUseCase handles fetching one client by id.
type GetClientUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewGetClientUseCase creates a new GetClientUseCase instance.
func NewGetClientUseCase(clientRepo adapter.ClientRepository) *GetClientUseCase {
	return &GetClientUseCase{clientRepo: clientRepo}
}

// Execute retrieves the client, passing through ErrClientNotFound.
func (uc *GetClientUseCase) Execute(ctx context.Context, input GetClientInput) (*GetClientOutput, error) {
	c, err := uc.clientRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetClientOutput{Client: c}, nil
}
