package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wealth-advisor/backend/internal/domain/entity"
)

// PortfolioModel represents the portfolios table in the database. The
// allocation breakdown is stored as a JSON document.
type PortfolioModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ClientID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	TotalValue  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CashFlow    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	YTDReturn   decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	Allocation  string          `gorm:"type:jsonb;not null"`
	LastUpdated time.Time       `gorm:"not null"`
}

// TableName returns the table name for the PortfolioModel.
func (PortfolioModel) TableName() string {
	return "portfolios"
}

// ToEntity converts a PortfolioModel to a domain Portfolio entity.
func (m *PortfolioModel) ToEntity() *entity.Portfolio {
	allocation := map[string]float64{}
	_ = json.Unmarshal([]byte(m.Allocation), &allocation)

	return &entity.Portfolio{
		ID:          m.ID,
		ClientID:    m.ClientID,
		TotalValue:  m.TotalValue,
		CashFlow:    m.CashFlow,
		YTDReturn:   m.YTDReturn,
		Allocation:  allocation,
		LastUpdated: m.LastUpdated,
	}
}

// PortfolioFromEntity creates a PortfolioModel from a domain Portfolio
// entity.
func PortfolioFromEntity(p *entity.Portfolio) *PortfolioModel {
	allocation, _ := json.Marshal(p.Allocation)

	return &PortfolioModel{
		ID:          p.ID,
		ClientID:    p.ClientID,
		TotalValue:  p.TotalValue,
		CashFlow:    p.CashFlow,
		YTDReturn:   p.YTDReturn,
		Allocation:  string(allocation),
		LastUpdated: p.LastUpdated,
	}
}
