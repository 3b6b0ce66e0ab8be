package client

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wealth-advisor/backend/internal/application/adapter"
	"github.com/wealth-advisor/backend/internal/domain/entity"
	domainerror "github.com/wealth-advisor/backend/internal/domain/error"
)

// UpdateClientInput represents a partial client update. Nil fields are left
// untouched; the id itself can never change.
type UpdateClientInput struct {
	ID             uuid.UUID
	Name           *string
	Email          *string
	Avatar         *string
	Age            *int
	Occupation     *string
	NetWorth       *decimal.Decimal
	PortfolioValue *decimal.Decimal
	HealthScore    *int
	RiskProfile    *entity.RiskProfile
	LastContact    *time.Time
}

// UpdateClientOutput represents the output of a client update.
type UpdateClientOutput struct {
	Client *entity.Client
}

// UpdateClientUseCase handles partial client updates.
type UpdateClientUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewUpdateClientUseCase creates a new UpdateClientUseCase instance.
func NewUpdateClientUseCase(clientRepo adapter.ClientRepository) *UpdateClientUseCase {
	return &UpdateClientUseCase{clientRepo: clientRepo}
}

// Execute merges the provided fields into the existing client.
func (uc *UpdateClientUseCase) Execute(ctx context.Context, input UpdateClientInput) (*UpdateClientOutput, error) {
	c, err := uc.clientRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.RiskProfile != nil && !entity.IsValidRiskProfile(*input.RiskProfile) {
		return nil, domainerror.New(
			domainerror.ErrCodeInvalidRiskProfile,
			"risk profile must be 'conservative', 'moderate', or 'aggressive'",
			domainerror.ErrInvalidRiskProfile,
		)
	}

	if input.Name != nil {
		c.Name = *input.Name
	}
	if input.Email != nil {
		c.Email = *input.Email
	}
	if input.Avatar != nil {
		c.Avatar = input.Avatar
	}
	if input.Age != nil {
		c.Age = *input.Age
	}
	if input.Occupation != nil {
		c.Occupation = input.Occupation
	}
	if input.NetWorth != nil {
		c.NetWorth = *input.NetWorth
	}
	if input.PortfolioValue != nil {
		c.PortfolioValue = *input.PortfolioValue
	}
	if input.HealthScore != nil {
		c.HealthScore = *input.HealthScore
	}
	if input.RiskProfile != nil {
		c.RiskProfile = *input.RiskProfile
	}
	if input.LastContact != nil {
		c.LastContact = *input.LastContact
	}

	if err := uc.clientRepo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	return &UpdateClientOutput{Client: c}, nil
}
