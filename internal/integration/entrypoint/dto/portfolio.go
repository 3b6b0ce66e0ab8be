package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wealth-advisor/backend/internal/domain/entity"
)

// PortfolioResponse represents a client's portfolio in API responses.
type PortfolioResponse struct {
	ID          string             `json:"id"`
	ClientID    string             `json:"clientId"`
	TotalValue  decimal.Decimal    `json:"totalValue"`
	CashFlow    decimal.Decimal    `json:"cashFlow"`
	YTDReturn   decimal.Decimal    `json:"ytdReturn"`
	Allocation  map[string]float64 `json:"allocation"`
	LastUpdated time.Time          `json:"lastUpdated"`
}

// ToPortfolioResponse converts a domain Portfolio entity to a
// PortfolioResponse DTO.
func ToPortfolioResponse(p *entity.Portfolio) PortfolioResponse {
	return PortfolioResponse{
		ID:          p.ID.String(),
		ClientID:    p.ClientID.String(),
		TotalValue:  p.TotalValue,
		CashFlow:    p.CashFlow,
		YTDReturn:   p.YTDReturn,
		Allocation:  p.Allocation,
		LastUpdated: p.LastUpdated,
	}
}
