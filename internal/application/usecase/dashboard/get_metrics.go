// Package dashboard contains dashboard aggregate use cases.
package dashboard

import (
	"context"
	"fmt"

	"github.com/wealth-advisor/backend/internal/application/adapter"
	"github.com/wealth-advisor/backend/internal/domain/entity"
)

// GetMetricsOutput represents the output of the dashboard metrics query.
type GetMetricsOutput struct {
	Metrics *entity.DashboardMetrics
}

// GetMetricsUseCase handles the dashboard metrics query.
type GetMetricsUseCase struct {
	dashboardRepo adapter.DashboardRepository
}

// NewGetMetricsUseCase creates a new GetMetricsUseCase instance.
func NewGetMetricsUseCase(dashboardRepo adapter.DashboardRepository) *GetMetricsUseCase {
	return &GetMetricsUseCase{dashboardRepo: dashboardRepo}
}

// Execute recomputes the book-level metrics from current data.
func (uc *GetMetricsUseCase) Execute(ctx context.Context) (*GetMetricsOutput, error) {
	metrics, err := uc.dashboardRepo.Metrics(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute dashboard metrics: %w", err)
	}
	return &GetMetricsOutput{Metrics: metrics}, nil
}
