// Package portfolio contains portfolio-related use cases.
package portfolio

import (
	"context"

	"github.com/google/uuid"

	"github.com/wealth-advisor/backend/internal/application/adapter"
	"github.com/wealth-advisor/backend/internal/domain/entity"
)

// GetPortfolioInput represents the input for fetching a client's portfolio.
type GetPortfolioInput struct {
	ClientID uuid.UUID
}

// GetPortfolioOutput represents the output of fetching a portfolio.
type GetPortfolioOutput struct {
	Portfolio *entity.Portfolio
}

// GetPortfolioUseCase handles fetching the portfolio owned by one client.
type GetPortfolioUseCase struct {
	portfolioRepo adapter.PortfolioRepository
}

// NewGetPortfolioUseCase creates a new GetPortfolioUseCase instance.
func NewGetPortfolioUseCase(portfolioRepo adapter.PortfolioRepository) *GetPortfolioUseCase {
	return &GetPortfolioUseCase{portfolioRepo: portfolioRepo}
}

// Execute retrieves the portfolio, passing through ErrPortfolioNotFound.
func (uc *GetPortfolioUseCase) Execute(ctx context.Context, input GetPortfolioInput) (*GetPortfolioOutput, error) {
	p, err := uc.portfolioRepo.FindByClient(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}
	return &GetPortfolioOutput{Portfolio: p}, nil
}
