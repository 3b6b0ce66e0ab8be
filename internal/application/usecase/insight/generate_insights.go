package insight

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wealth-advisor/backend/internal/application/adapter"
	"github.com/wealth-advisor/backend/internal/domain/entity"
)

// GenerateInsightsInput represents the input for insight generation.
type GenerateInsightsInput struct {
	ClientID uuid.UUID
}

// GenerateInsightsOutput represents the output of insight generation.
type GenerateInsightsOutput struct {
	Insights []*entity.Insight
}

// GenerateInsightsUseCase produces and persists insights for one client.
// The advisor provider is best-effort: any provider failure is absorbed and
// replaced with the deterministic fallback set, so this use case only fails
// on unknown clients or storage errors.
type GenerateInsightsUseCase struct {
	clientRepo  adapter.ClientRepository
	insightRepo adapter.InsightRepository
	advisor     adapter.AdvisorService
}

// NewGenerateInsightsUseCase creates a new GenerateInsightsUseCase instance.
func NewGenerateInsightsUseCase(
	clientRepo adapter.ClientRepository,
	insightRepo adapter.InsightRepository,
	advisor adapter.AdvisorService,
) *GenerateInsightsUseCase {
	return &GenerateInsightsUseCase{
		clientRepo:  clientRepo,
		insightRepo: insightRepo,
		advisor:     advisor,
	}
}

// Execute generates insights for the client and persists them.
func (uc *GenerateInsightsUseCase) Execute(ctx context.Context, input GenerateInsightsInput) (*GenerateInsightsOutput, error) {
	c, err := uc.clientRepo.FindByID(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}

	profile := adapter.ClientProfile{
		Name:           c.Name,
		Age:            c.Age,
		NetWorth:       c.NetWorth,
		PortfolioValue: c.PortfolioValue,
		RiskProfile:    c.RiskProfile,
	}

	drafts := uc.draftInsights(ctx, profile)

	created := make([]*entity.Insight, 0, len(drafts))
	for _, d := range drafts {
		ins := entity.NewInsight(c.ID, d.Type, d.Title, d.Description, d.Impact, d.Priority)
		if err := uc.insightRepo.Create(ctx, ins); err != nil {
			return nil, fmt.Errorf("failed to store insight: %w", err)
		}
		created = append(created, ins)
	}

	return &GenerateInsightsOutput{Insights: created}, nil
}

// draftInsights asks the advisor provider and falls back to the fixed set
// when it is unconfigured, errors out, or returns nothing.
func (uc *GenerateInsightsUseCase) draftInsights(ctx context.Context, profile adapter.ClientProfile) []*adapter.InsightDraft {
	if uc.advisor != nil && uc.advisor.IsAvailable() {
		drafts, err := uc.advisor.GenerateInsights(ctx, profile)
		if err == nil && len(drafts) > 0 {
			return drafts
		}
		if err != nil {
			slog.Warn("Advisor provider failed, using fallback insights", "error", err)
		}
	}
	return FallbackInsights(profile)
}

// FallbackInsights is the deterministic offline insight set, derived only
// from the profile fields. It always returns at least one insight.
func FallbackInsights(profile adapter.ClientProfile) []*adapter.InsightDraft {
	return []*adapter.InsightDraft{
		{
			Type:        "opportunity",
			Title:       "Tax Optimization Review",
			Description: fmt.Sprintf("%s may benefit from tax-loss harvesting opportunities in their portfolio.", profile.Name),
			Impact:      entity.ImpactHigh,
			Priority:    1,
		},
		{
			Type:        "action",
			Title:       "Portfolio Rebalancing",
			Description: fmt.Sprintf("Review asset allocation to ensure it aligns with %s risk profile.", profile.RiskProfile),
			Impact:      entity.ImpactMedium,
			Priority:    2,
		},
		{
			Type:        "opportunity",
			Title:       "Retirement Planning Check",
			Description: "Consider increasing retirement contributions to maximize tax-advantaged growth.",
			Impact:      entity.ImpactMedium,
			Priority:    3,
		},
	}
}
