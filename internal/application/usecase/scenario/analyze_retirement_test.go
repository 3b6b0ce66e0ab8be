package scenario

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/wealth-advisor/backend/internal/application/adapter"
)

type failingAdvisor struct{}

func (failingAdvisor) IsAvailable() bool { return true }
func (failingAdvisor) GenerateInsights(context.Context, adapter.ClientProfile) ([]*adapter.InsightDraft, error) {
	return nil, errors.New("provider timeout")
}
func (failingAdvisor) RecommendRetirement(context.Context, adapter.RetirementParams, float64) ([]string, error) {
	return nil, errors.New("provider timeout")
}

type scriptedAdvisor struct {
	recommendations []string
}

func (scriptedAdvisor) IsAvailable() bool { return true }
func (scriptedAdvisor) GenerateInsights(context.Context, adapter.ClientProfile) ([]*adapter.InsightDraft, error) {
	return nil, nil
}
func (s scriptedAdvisor) RecommendRetirement(context.Context, adapter.RetirementParams, float64) ([]string, error) {
	return s.recommendations, nil
}

func TestAnalyzeRetirementUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	input := AnalyzeRetirementInput{
		CurrentAge:     40,
		RetirementAge:  42,
		CurrentSavings: 1000,
		MonthlySavings: 100,
		ExpectedReturn: 10,
	}

	t.Run("projects the balance year by year", func(t *testing.T) {
		uc := NewAnalyzeRetirementUseCase(nil)
		output := uc.Execute(ctx, input)

		// 1000 -> 1000*1.1+1200 = 2300 -> 2300*1.1+1200 = 3730
		if output.ProjectedBalance != 3730 {
			t.Errorf("expected projected balance 3730, got %v", output.ProjectedBalance)
		}
		if len(output.Projection) != 3 {
			t.Fatalf("expected 3 projection points, got %d", len(output.Projection))
		}
		if output.Projection[0].Age != 40 || output.Projection[0].Balance != 1000 {
			t.Errorf("expected first point age 40 balance 1000, got age %d balance %v",
				output.Projection[0].Age, output.Projection[0].Balance)
		}
		if math.Abs(output.Projection[2].Balance-3730) > 1e-9 {
			t.Errorf("expected last point balance 3730, got %v", output.Projection[2].Balance)
		}
	})

	t.Run("is deterministic across runs", func(t *testing.T) {
		uc := NewAnalyzeRetirementUseCase(nil)
		first := uc.Execute(ctx, input)
		second := uc.Execute(ctx, input)
		if first.ProjectedBalance != second.ProjectedBalance {
			t.Errorf("expected identical balances, got %v and %v",
				first.ProjectedBalance, second.ProjectedBalance)
		}
	})

	t.Run("uses the fallback recommendations without a provider", func(t *testing.T) {
		uc := NewAnalyzeRetirementUseCase(nil)
		output := uc.Execute(ctx, input)
		want := FallbackRecommendations()
		if len(output.Recommendations) != len(want) {
			t.Fatalf("expected %d recommendations, got %d", len(want), len(output.Recommendations))
		}
		for i := range want {
			if output.Recommendations[i] != want[i] {
				t.Errorf("expected fallback recommendation %q, got %q", want[i], output.Recommendations[i])
			}
		}
	})

	t.Run("falls back when the provider errors", func(t *testing.T) {
		uc := NewAnalyzeRetirementUseCase(failingAdvisor{})
		output := uc.Execute(ctx, input)
		if len(output.Recommendations) != 3 {
			t.Fatalf("expected 3 fallback recommendations, got %d", len(output.Recommendations))
		}
		if output.ProjectedBalance != 3730 {
			t.Errorf("expected the projection to be unaffected by the provider, got %v", output.ProjectedBalance)
		}
	})

	t.Run("uses provider recommendations when available", func(t *testing.T) {
		uc := NewAnalyzeRetirementUseCase(scriptedAdvisor{recommendations: []string{"Max out the 401k"}})
		output := uc.Execute(ctx, input)
		if len(output.Recommendations) != 1 || output.Recommendations[0] != "Max out the 401k" {
			t.Errorf("expected provider recommendations, got %v", output.Recommendations)
		}
	})
}

func TestMortgageQuoteUseCase_Execute(t *testing.T) {
	uc := NewMortgageQuoteUseCase()

	output := uc.Execute(MortgageQuoteInput{
		PurchasePrice: 500_000,
		DownPayment:   100_000,
		InterestRate:  6.5,
		TermYears:     30,
	})

	if output.Principal != 400_000 {
		t.Errorf("expected principal 400000, got %v", output.Principal)
	}
	if math.Abs(output.MonthlyPayment-2528.27) > 0.01 {
		t.Errorf("expected monthly payment about 2528.27, got %v", output.MonthlyPayment)
	}
	wantTotal := output.MonthlyPayment * 360
	if math.Abs(output.TotalPaid-wantTotal) > 0.01 {
		t.Errorf("expected total paid %v, got %v", wantTotal, output.TotalPaid)
	}
	if math.Abs(output.TotalInterest-(output.TotalPaid-400_000)) > 0.01 {
		t.Errorf("expected interest to be total paid minus principal, got %v", output.TotalInterest)
	}
}

func TestGrowthComparisonUseCase_Execute(t *testing.T) {
	uc := NewGrowthComparisonUseCase()

	t.Run("defaults the principal", func(t *testing.T) {
		output := uc.Execute(GrowthComparisonInput{})
		if output.Principal != DefaultComparisonPrincipal {
			t.Errorf("expected default principal %v, got %v", DefaultComparisonPrincipal, output.Principal)
		}
		if len(output.Points) != 7 {
			t.Fatalf("expected 7 checkpoints, got %d", len(output.Points))
		}
		first := output.Points[0]
		if first.Year != 0 {
			t.Errorf("expected first checkpoint at year 0, got %d", first.Year)
		}
		for _, strategy := range []string{"conservative", "moderate", "aggressive"} {
			if first.Values[strategy] != DefaultComparisonPrincipal {
				t.Errorf("expected %s to start at the principal, got %v", strategy, first.Values[strategy])
			}
		}
	})

	t.Run("orders strategies by rate at the horizon", func(t *testing.T) {
		output := uc.Execute(GrowthComparisonInput{Principal: 50_000})
		last := output.Points[len(output.Points)-1]
		if !(last.Values["conservative"] < last.Values["moderate"] &&
			last.Values["moderate"] < last.Values["aggressive"]) {
			t.Errorf("expected conservative < moderate < aggressive at year %d, got %v", last.Year, last.Values)
		}
	})
}
