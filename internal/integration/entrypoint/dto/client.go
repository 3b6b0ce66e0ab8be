package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wealth-advisor/backend/internal/domain/entity"
)

// CreateClientRequest represents the request body for client creation.
type CreateClientRequest struct {
	Name           string          `json:"name" binding:"required"`
	Email          string          `json:"email" binding:"required,email"`
	Avatar         *string         `json:"avatar,omitempty"`
	Age            int             `json:"age" binding:"required,gt=0"`
	Occupation     *string         `json:"occupation,omitempty"`
	NetWorth       decimal.Decimal `json:"netWorth" binding:"required"`
	PortfolioValue decimal.Decimal `json:"portfolioValue" binding:"required"`
	HealthScore    *int            `json:"healthScore,omitempty" binding:"omitempty,gte=0,lte=100"`
	RiskProfile    *string         `json:"riskProfile,omitempty" binding:"omitempty,oneof=conservative moderate aggressive"`
}

// UpdateClientRequest represents the request body for a client update.
// Absent fields keep their stored values.
type UpdateClientRequest struct {
	Name           *string          `json:"name,omitempty"`
	Email          *string          `json:"email,omitempty" binding:"omitempty,email"`
	Avatar         *string          `json:"avatar,omitempty"`
	Age            *int             `json:"age,omitempty" binding:"omitempty,gt=0"`
	Occupation     *string          `json:"occupation,omitempty"`
	NetWorth       *decimal.Decimal `json:"netWorth,omitempty"`
	PortfolioValue *decimal.Decimal `json:"portfolioValue,omitempty"`
	HealthScore    *int             `json:"healthScore,omitempty" binding:"omitempty,gte=0,lte=100"`
	RiskProfile    *string          `json:"riskProfile,omitempty" binding:"omitempty,oneof=conservative moderate aggressive"`
	LastContact    *time.Time       `json:"lastContact,omitempty"`
}

// ClientResponse represents a single client in API responses. Monetary
// amounts serialize as strings to keep full precision.
type ClientResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Avatar         *string         `json:"avatar,omitempty"`
	Age            int             `json:"age"`
	Occupation     *string         `json:"occupation,omitempty"`
	NetWorth       decimal.Decimal `json:"netWorth"`
	PortfolioValue decimal.Decimal `json:"portfolioValue"`
	HealthScore    int             `json:"healthScore"`
	RiskProfile    string          `json:"riskProfile"`
	LastContact    time.Time       `json:"lastContact"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ToClientResponse converts a domain Client entity to a ClientResponse DTO.
func ToClientResponse(c *entity.Client) ClientResponse {
	return ClientResponse{
		ID:             c.ID.String(),
		Name:           c.Name,
		Email:          c.Email,
		Avatar:         c.Avatar,
		Age:            c.Age,
		Occupation:     c.Occupation,
		NetWorth:       c.NetWorth,
		PortfolioValue: c.PortfolioValue,
		HealthScore:    c.HealthScore,
		RiskProfile:    string(c.RiskProfile),
		LastContact:    c.LastContact,
		CreatedAt:      c.CreatedAt,
	}
}

// ToClientListResponse converts a list of clients to response DTOs.
func ToClientListResponse(clients []*entity.Client) []ClientResponse {
	responses := make([]ClientResponse, len(clients))
	for i, c := range clients {
		responses[i] = ToClientResponse(c)
	}
	return responses
}
