package client

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/wealth-advisor/backend/internal/application/adapter"
	"github.com/wealth-advisor/backend/internal/domain/entity"
	domainerror "github.com/wealth-advisor/backend/internal/domain/error"
)

// CreateClientInput represents the input for client creation.
type CreateClientInput struct {
	Name           string
	Email          string
	Avatar         *string
	Age            int
	Occupation     *string
	NetWorth       decimal.Decimal
	PortfolioValue decimal.Decimal
	HealthScore    *int                // Optional, defaults to 85
	RiskProfile    *entity.RiskProfile // Optional, defaults to moderate
}

// CreateClientOutput represents the output of client creation.
type CreateClientOutput struct {
	Client *entity.Client
}

// CreateClientUseCase handles client creation logic.
type CreateClientUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewCreateClientUseCase creates a new CreateClientUseCase instance.
func NewCreateClientUseCase(clientRepo adapter.ClientRepository) *CreateClientUseCase {
	return &CreateClientUseCase{clientRepo: clientRepo}
}

// Execute performs the client creation.
func (uc *CreateClientUseCase) Execute(ctx context.Context, input CreateClientInput) (*CreateClientOutput, error) {
	// Apply defaults
	healthScore := entity.DefaultHealthScore
	if input.HealthScore != nil {
		healthScore = *input.HealthScore
	}

	riskProfile := entity.RiskProfileModerate
	if input.RiskProfile != nil {
		if !entity.IsValidRiskProfile(*input.RiskProfile) {
			return nil, domainerror.New(
				domainerror.ErrCodeInvalidRiskProfile,
				"risk profile must be 'conservative', 'moderate', or 'aggressive'",
				domainerror.ErrInvalidRiskProfile,
			)
		}
		riskProfile = *input.RiskProfile
	}

	c := entity.NewClient(
		input.Name,
		input.Email,
		input.Avatar,
		input.Occupation,
		input.Age,
		input.NetWorth,
		input.PortfolioValue,
		healthScore,
		riskProfile,
	)

	if err := uc.clientRepo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &CreateClientOutput{Client: c}, nil
}
