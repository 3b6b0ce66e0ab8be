package dto

import (
	"github.com/shopspring/decimal"

	"github.com/wealth-advisor/backend/internal/domain/entity"
)

// DashboardMetricsResponse represents the book-level dashboard figures.
type DashboardMetricsResponse struct {
	TotalAUM             decimal.Decimal `json:"totalAum"`
	ActiveClients        int             `json:"activeClients"`
	PendingActions       int             `json:"pendingActions"`
	PortfolioPerformance float64         `json:"portfolioPerformance"`
}

// ChartPointResponse is one point of the dashboard portfolio chart.
type ChartPointResponse struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// ToDashboardMetricsResponse converts the metrics entity to its DTO.
func ToDashboardMetricsResponse(m *entity.DashboardMetrics) DashboardMetricsResponse {
	return DashboardMetricsResponse{
		TotalAUM:             m.TotalAUM,
		ActiveClients:        m.ActiveClients,
		PendingActions:       m.PendingActions,
		PortfolioPerformance: m.PortfolioPerformance,
	}
}

// ToChartResponse converts the chart series to its DTO.
func ToChartResponse(points []entity.ChartPoint) []ChartPointResponse {
	responses := make([]ChartPointResponse, len(points))
	for i, p := range points {
		responses[i] = ChartPointResponse{Date: p.Date, Value: p.Value}
	}
	return responses
}
