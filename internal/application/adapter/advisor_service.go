package adapter

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/wealth-advisor/backend/internal/domain/entity"
)

// ClientProfile is the slice of client data the advisor model sees.
type ClientProfile struct {
	Name           string
	Age            int
	NetWorth       decimal.Decimal
	PortfolioValue decimal.Decimal
	RiskProfile    entity.RiskProfile
}

// InsightDraft is an advisor-model suggestion before it is persisted.
type InsightDraft struct {
	Type        string
	Title       string
	Description string
	Impact      entity.ImpactLevel
	Priority    int // 1-5, lower is more urgent
}

// RetirementParams are the inputs of a retirement scenario analysis.
type RetirementParams struct {
	CurrentAge     int
	RetirementAge  int
	CurrentSavings float64
	MonthlySavings float64
	ExpectedReturn float64 // annual percentage
}

// AdvisorService generates advisory text from client data. Implementations
// may fail for any provider reason; callers must treat every error as
// "provider unavailable" and fall back to deterministic content.
type AdvisorService interface {
	// IsAvailable reports whether the external provider is configured.
	IsAvailable() bool

	// GenerateInsights produces ranked insights for a client profile.
	GenerateInsights(ctx context.Context, profile ClientProfile) ([]*InsightDraft, error)

	// RecommendRetirement produces textual recommendations for a retirement
	// scenario whose balance has already been projected.
	RecommendRetirement(ctx context.Context, params RetirementParams, projectedBalance float64) ([]string, error)
}
