package dashboard

import (
	"context"
	"fmt"

	"github.com/wealth-advisor/backend/internal/application/adapter"
	"github.com/wealth-advisor/backend/internal/domain/entity"
)

// GetPortfolioChartOutput represents the dashboard chart series.
type GetPortfolioChartOutput struct {
	Points []entity.ChartPoint
}

// GetPortfolioChartUseCase handles the dashboard portfolio chart query.
type GetPortfolioChartUseCase struct {
	dashboardRepo adapter.DashboardRepository
}

// NewGetPortfolioChartUseCase creates a new GetPortfolioChartUseCase
// instance.
func NewGetPortfolioChartUseCase(dashboardRepo adapter.DashboardRepository) *GetPortfolioChartUseCase {
	return &GetPortfolioChartUseCase{dashboardRepo: dashboardRepo}
}

// Execute retrieves the six-point monthly series.
func (uc *GetPortfolioChartUseCase) Execute(ctx context.Context) (*GetPortfolioChartOutput, error) {
	points, err := uc.dashboardRepo.PortfolioChart(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build portfolio chart: %w", err)
	}
	return &GetPortfolioChartOutput{Points: points}, nil
}
