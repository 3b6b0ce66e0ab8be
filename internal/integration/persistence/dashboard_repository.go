package persistence

import (
	"context"
	"math/rand"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/wealth-advisor/backend/internal/application/adapter"
	"github.com/wealth-advisor/backend/internal/domain/entity"
	"github.com/wealth-advisor/backend/internal/integration/persistence/model"
)

var chartMonths = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}

// dashboardRepository implements the adapter.DashboardRepository
// interface with aggregate queries over the client and action tables.
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new dashboard repository instance.
func NewDashboardRepository(db *gorm.DB) adapter.DashboardRepository {
	return &dashboardRepository{db: db}
}

// Metrics recomputes the book-level figures from current rows.
func (r *dashboardRepository) Metrics(ctx context.Context) (*entity.DashboardMetrics, error) {
	var totalAUM decimal.Decimal
	row := r.db.WithContext(ctx).
		Model(&model.ClientModel{}).
		Select("COALESCE(SUM(portfolio_value), 0)").
		Row()
	if err := row.Scan(&totalAUM); err != nil {
		return nil, err
	}

	var activeClients int64
	if result := r.db.WithContext(ctx).Model(&model.ClientModel{}).Count(&activeClients); result.Error != nil {
		return nil, result.Error
	}

	var pendingActions int64
	result := r.db.WithContext(ctx).
		Model(&model.ActionModel{}).
		Where("is_completed = ?", false).
		Count(&pendingActions)
	if result.Error != nil {
		return nil, result.Error
	}

	return &entity.DashboardMetrics{
		TotalAUM:             totalAUM.Round(0),
		ActiveClients:        int(activeClients),
		PendingActions:       int(pendingActions),
		PortfolioPerformance: entity.BookPerformancePct,
	}, nil
}

// PortfolioChart returns the placeholder six-month series.
func (r *dashboardRepository) PortfolioChart(ctx context.Context) ([]entity.ChartPoint, error) {
	points := make([]entity.ChartPoint, len(chartMonths))
	for i, month := range chartMonths {
		points[i] = entity.ChartPoint{
			Date:  month,
			Value: 18 + float64(i)*0.8 + rand.Float64()*0.5,
		}
	}
	return points, nil
}
