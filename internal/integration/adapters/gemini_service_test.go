package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wealth-advisor/backend/internal/application/adapter"
	"github.com/wealth-advisor/backend/internal/domain/entity"
)

func clientProfileFixture() adapter.ClientProfile {
	return adapter.ClientProfile{
		Name:           "Test Client",
		Age:            45,
		NetWorth:       decimal.NewFromInt(1_000_000),
		PortfolioValue: decimal.NewFromInt(750_000),
		RiskProfile:    entity.RiskProfileModerate,
	}
}

func retirementParamsFixture() adapter.RetirementParams {
	return adapter.RetirementParams{
		CurrentAge:     45,
		RetirementAge:  65,
		CurrentSavings: 250_000,
		MonthlySavings: 2_000,
		ExpectedReturn: 7,
	}
}

func TestNewGeminiService_Timeout(t *testing.T) {
	t.Run("uses the configured timeout", func(t *testing.T) {
		svc := NewGeminiService("key", "gemini-2.5-flash-lite", 10*time.Second)
		if svc.Timeout() != 10*time.Second {
			t.Errorf("expected 10s timeout, got %s", svc.Timeout())
		}
	})

	t.Run("falls back to the default when unset", func(t *testing.T) {
		svc := NewGeminiService("key", "gemini-2.5-flash-lite", 0)
		if svc.Timeout() != DefaultProviderTimeout {
			t.Errorf("expected default timeout %s, got %s", DefaultProviderTimeout, svc.Timeout())
		}
	})
}

func TestGeminiService_IsAvailable(t *testing.T) {
	if NewGeminiService("", "gemini-2.5-flash-lite", time.Second).IsAvailable() {
		t.Error("service without an API key should not be available")
	}
	if !NewGeminiService("key", "gemini-2.5-flash-lite", time.Second).IsAvailable() {
		t.Error("service with an API key should be available")
	}
}

func TestGeminiService_UnconfiguredCallsFail(t *testing.T) {
	svc := NewGeminiService("", "gemini-2.5-flash-lite", time.Second)
	ctx := context.Background()

	if _, err := svc.GenerateInsights(ctx, clientProfileFixture()); err == nil {
		t.Error("expected an error from an unconfigured service")
	}
	if _, err := svc.RecommendRetirement(ctx, retirementParamsFixture(), 1_000_000); err == nil {
		t.Error("expected an error from an unconfigured service")
	}
}

// A canceled parent context must surface promptly; the per-call deadline
// must never extend a deadline the caller already gave up on.
func TestGeminiService_CanceledContext(t *testing.T) {
	svc := NewGeminiService("key", "gemini-2.5-flash-lite", time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	if _, err := svc.GenerateInsights(ctx, clientProfileFixture()); err == nil {
		t.Error("expected an error with a canceled context")
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("canceled call took %s, expected a prompt return", elapsed)
	}
}
