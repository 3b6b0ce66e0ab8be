package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/wealth-advisor/backend/internal/domain/entity"
)

// PortfolioRepository defines persistence operations for portfolios. A
// client owns at most one portfolio.
type PortfolioRepository interface {
	// Create persists a new portfolio.
	Create(ctx context.Context, portfolio *entity.Portfolio) error

	// FindByID retrieves a portfolio by id. Returns
	// domainerror.ErrPortfolioNotFound when the id does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Portfolio, error)

	// FindByClient retrieves the portfolio owned by the given client.
	// Returns domainerror.ErrPortfolioNotFound when the client has none.
	FindByClient(ctx context.Context, clientID uuid.UUID) (*entity.Portfolio, error)

	// Update replaces the stored portfolio and bumps LastUpdated.
	Update(ctx context.Context, portfolio *entity.Portfolio) error

	// Delete removes a portfolio, reporting whether it existed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
