package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/wealth-advisor/backend/internal/domain/entity"
)

// InsightRepository defines persistence operations for AI insights.
// Insights are never updated, only created and deleted.
type InsightRepository interface {
	// Create persists a new insight.
	Create(ctx context.Context, insight *entity.Insight) error

	// FindAll retrieves all insights in creation order.
	FindAll(ctx context.Context) ([]*entity.Insight, error)

	// FindByClient retrieves all insights for a client in creation order.
	FindByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Insight, error)

	// Delete removes an insight, reporting whether it existed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
