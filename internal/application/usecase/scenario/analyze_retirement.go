package scenario

import (
	"context"
	"log/slog"
	"math"

	"github.com/wealth-advisor/backend/internal/application/adapter"
	"github.com/wealth-advisor/backend/internal/domain/finmath"
)

// AnalyzeRetirementInput are the retirement scenario parameters.
type AnalyzeRetirementInput struct {
	CurrentAge     int
	RetirementAge  int
	CurrentSavings float64
	MonthlySavings float64
	ExpectedReturn float64 // annual percentage
}

// AnalyzeRetirementOutput couples the deterministic projection with
// advisory text.
type AnalyzeRetirementOutput struct {
	ProjectedBalance float64
	Projection       []finmath.ProjectionPoint
	Recommendations  []string
}

// AnalyzeRetirementUseCase projects a retirement balance and gathers
// recommendations. The numeric projection never depends on the advisor
// provider; only the recommendation text does, and provider failures fall
// back to the fixed set.
type AnalyzeRetirementUseCase struct {
	advisor adapter.AdvisorService
}

// NewAnalyzeRetirementUseCase creates a new AnalyzeRetirementUseCase
// instance.
func NewAnalyzeRetirementUseCase(advisor adapter.AdvisorService) *AnalyzeRetirementUseCase {
	return &AnalyzeRetirementUseCase{advisor: advisor}
}

// Execute runs the analysis. It never fails: the projection is closed-form
// and the recommendation path always resolves to the fallback.
func (uc *AnalyzeRetirementUseCase) Execute(ctx context.Context, input AnalyzeRetirementInput) *AnalyzeRetirementOutput {
	projection := finmath.RetirementProjection(
		input.CurrentAge,
		input.RetirementAge,
		input.CurrentSavings,
		input.MonthlySavings,
		input.ExpectedReturn,
	)
	balance := math.Round(projection[len(projection)-1].Balance)

	params := adapter.RetirementParams{
		CurrentAge:     input.CurrentAge,
		RetirementAge:  input.RetirementAge,
		CurrentSavings: input.CurrentSavings,
		MonthlySavings: input.MonthlySavings,
		ExpectedReturn: input.ExpectedReturn,
	}

	return &AnalyzeRetirementOutput{
		ProjectedBalance: balance,
		Projection:       projection,
		Recommendations:  uc.recommendations(ctx, params, balance),
	}
}

func (uc *AnalyzeRetirementUseCase) recommendations(ctx context.Context, params adapter.RetirementParams, balance float64) []string {
	if uc.advisor != nil && uc.advisor.IsAvailable() {
		recs, err := uc.advisor.RecommendRetirement(ctx, params, balance)
		if err == nil && len(recs) > 0 {
			return recs
		}
		if err != nil {
			slog.Warn("Advisor provider failed, using fallback recommendations", "error", err)
		}
	}
	return FallbackRecommendations()
}

// FallbackRecommendations is the deterministic offline recommendation set.
func FallbackRecommendations() []string {
	return []string{
		"Consider increasing monthly contributions to reach your retirement goals faster",
		"Review your asset allocation periodically to match your risk tolerance",
		"Plan for healthcare and other expenses in retirement",
	}
}
