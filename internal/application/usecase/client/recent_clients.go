package client

import (
	"context"
	"fmt"

	"github.com/wealth-advisor/backend/internal/application/adapter"
	"github.com/wealth-advisor/backend/internal/domain/entity"
)

// DefaultRecentLimit is how many clients the dashboard's recent list shows.
const DefaultRecentLimit = 5

// RecentClientsInput represents the input for the recent-clients query.
type RecentClientsInput struct {
	Limit int
}

// RecentClientsOutput represents the output of the recent-clients query.
type RecentClientsOutput struct {
	Clients []*entity.Client
}

// RecentClientsUseCase handles the recent-clients dashboard query.
type RecentClientsUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewRecentClientsUseCase creates a new RecentClientsUseCase instance.
func NewRecentClientsUseCase(clientRepo adapter.ClientRepository) *RecentClientsUseCase {
	return &RecentClientsUseCase{clientRepo: clientRepo}
}

// Execute retrieves the most recently contacted clients.
func (uc *RecentClientsUseCase) Execute(ctx context.Context, input RecentClientsInput) (*RecentClientsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	clients, err := uc.clientRepo.FindRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent clients: %w", err)
	}
	return &RecentClientsOutput{Clients: clients}, nil
}
