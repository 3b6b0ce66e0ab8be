package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Portfolio represents a client's managed portfolio. The allocation maps
// asset categories to percentages; the categories are free-form and are not
// required to sum to 100.
type Portfolio struct {
	ID          uuid.UUID
	ClientID    uuid.UUID
	TotalValue  decimal.Decimal
	CashFlow    decimal.Decimal // Monthly net cash flow
	YTDReturn   decimal.Decimal // Year-to-date return percentage
	Allocation  map[string]float64
	LastUpdated time.Time
}

// NewPortfolio creates a new Portfolio entity.
func NewPortfolio(
	clientID uuid.UUID,
	totalValue, cashFlow, ytdReturn decimal.Decimal,
	allocation map[string]float64,
) *Portfolio {
	return &Portfolio{
		ID:          uuid.New(),
		ClientID:    clientID,
		TotalValue:  totalValue,
		CashFlow:    cashFlow,
		YTDReturn:   ytdReturn,
		Allocation:  allocation,
		LastUpdated: time.Now().UTC(),
	}
}
