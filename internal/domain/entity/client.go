// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RiskProfile represents a client's investment risk tolerance.
type RiskProfile string

const (
	RiskProfileConservative RiskProfile = "conservative"
	RiskProfileModerate     RiskProfile = "moderate"
	RiskProfileAggressive   RiskProfile = "aggressive"
)

// DefaultHealthScore is assigned when a client is created without one.
const DefaultHealthScore = 85

// Client represents a wealth-management client in the advisor's book.
type Client struct {
	ID             uuid.UUID
	Name           string
	Email          string
	Avatar         *string
	Age            int
	Occupation     *string
	NetWorth       decimal.Decimal
	PortfolioValue decimal.Decimal
	HealthScore    int // Financial health score, 0-100
	RiskProfile    RiskProfile
	LastContact    time.Time
	CreatedAt      time.Time
}

// NewClient creates a new Client entity with a fresh id and timestamps.
func NewClient(
	name, email string,
	avatar, occupation *string,
	age int,
	netWorth, portfolioValue decimal.Decimal,
	healthScore int,
	riskProfile RiskProfile,
) *Client {
	now := time.Now().UTC()

	return &Client{
		ID:             uuid.New(),
		Name:           name,
		Email:          email,
		Avatar:         avatar,
		Age:            age,
		Occupation:     occupation,
		NetWorth:       netWorth,
		PortfolioValue: portfolioValue,
		HealthScore:    healthScore,
		RiskProfile:    riskProfile,
		LastContact:    now,
		CreatedAt:      now,
	}
}

// IsValidRiskProfile reports whether the given profile is one of the three
// supported risk tiers.
func IsValidRiskProfile(p RiskProfile) bool {
	return p == RiskProfileConservative ||
		p == RiskProfileModerate ||
		p == RiskProfileAggressive
}
