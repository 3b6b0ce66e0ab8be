package persistence

import (
	"gorm.io/gorm"

	"github.com/wealth-advisor/backend/internal/application/adapter"
)

// NewStorage assembles the relational storage backend over one shared
// GORM handle.
func NewStorage(db *gorm.DB) *adapter.Storage {
	return &adapter.Storage{
		Clients:    NewClientRepository(db),
		Goals:      NewGoalRepository(db),
		Portfolios: NewPortfolioRepository(db),
		Insights:   NewInsightRepository(db),
		Scenarios:  NewScenarioRepository(db),
		Actions:    NewActionRepository(db),
		Dashboard:  NewDashboardRepository(db),
	}
}
