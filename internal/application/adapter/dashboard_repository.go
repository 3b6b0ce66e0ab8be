package adapter

import (
	"context"

	"github.com/wealth-advisor/backend/internal/domain/entity"
)

// DashboardRepository defines the aggregate read operations backing the
// dashboard. Metrics are recomputed from current data on every call.
type DashboardRepository interface {
	// Metrics returns the book-level figures: total AUM as the sum of all
	// clients' portfolio values, the active client count and the count of
	// incomplete actions.
	Metrics(ctx context.Context) (*entity.DashboardMetrics, error)

	// PortfolioChart returns the six-point monthly series shown on the
	// dashboard. Placeholder data with small jitter, not a computation.
	PortfolioChart(ctx context.Context) ([]entity.ChartPoint, error)
}
