package memstore

import (
	"context"
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/wealth-advisor/backend/internal/domain/entity"
)

var chartMonths = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}

// dashboardStore derives the aggregate figures from the client and action
// stores on every call; nothing is cached.
type dashboardStore struct {
	clients *clientStore
	actions *actionStore
}

func newDashboardStore(clients *clientStore, actions *actionStore) *dashboardStore {
	return &dashboardStore{clients: clients, actions: actions}
}

func (s *dashboardStore) Metrics(_ context.Context) (*entity.DashboardMetrics, error) {
	totalAUM := decimal.Zero
	for _, id := range s.clients.order {
		totalAUM = totalAUM.Add(s.clients.clients[id].PortfolioValue)
	}

	pending := 0
	for _, id := range s.actions.order {
		if !s.actions.actions[id].IsCompleted {
			pending++
		}
	}

	return &entity.DashboardMetrics{
		TotalAUM:             totalAUM.Round(0),
		ActiveClients:        len(s.clients.order),
		PendingActions:       pending,
		PortfolioPerformance: entity.BookPerformancePct,
	}, nil
}

func (s *dashboardStore) PortfolioChart(_ context.Context) ([]entity.ChartPoint, error) {
	points := make([]entity.ChartPoint, len(chartMonths))
	for i, month := range chartMonths {
		points[i] = entity.ChartPoint{
			Date:  month,
			Value: 18 + float64(i)*0.8 + rand.Float64()*0.5,
		}
	}
	return points, nil
}
