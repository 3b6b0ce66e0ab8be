package insight

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/wealth-advisor/backend/internal/application/adapter"
	"github.com/wealth-advisor/backend/internal/domain/entity"
	domainerror "github.com/wealth-advisor/backend/internal/domain/error"
	"github.com/wealth-advisor/backend/internal/integration/memstore"
)

// unavailableAdvisor simulates a provider with no API key configured.
type unavailableAdvisor struct{}

func (unavailableAdvisor) IsAvailable() bool { return false }
func (unavailableAdvisor) GenerateInsights(context.Context, adapter.ClientProfile) ([]*adapter.InsightDraft, error) {
	return nil, errors.New("not configured")
}
func (unavailableAdvisor) RecommendRetirement(context.Context, adapter.RetirementParams, float64) ([]string, error) {
	return nil, errors.New("not configured")
}

// failingAdvisor simulates a configured provider whose calls fail.
type failingAdvisor struct{}

func (failingAdvisor) IsAvailable() bool { return true }
func (failingAdvisor) GenerateInsights(context.Context, adapter.ClientProfile) ([]*adapter.InsightDraft, error) {
	return nil, errors.New("provider timeout")
}
func (failingAdvisor) RecommendRetirement(context.Context, adapter.RetirementParams, float64) ([]string, error) {
	return nil, errors.New("provider timeout")
}

// scriptedAdvisor returns a fixed draft set.
type scriptedAdvisor struct {
	drafts []*adapter.InsightDraft
}

func (scriptedAdvisor) IsAvailable() bool { return true }
func (s scriptedAdvisor) GenerateInsights(context.Context, adapter.ClientProfile) ([]*adapter.InsightDraft, error) {
	return s.drafts, nil
}
func (scriptedAdvisor) RecommendRetirement(context.Context, adapter.RetirementParams, float64) ([]string, error) {
	return nil, nil
}

func seededClient(t *testing.T, storage *adapter.Storage) *entity.Client {
	t.Helper()
	clients, err := storage.Clients.FindAll(context.Background())
	if err != nil || len(clients) == 0 {
		t.Fatalf("expected seeded clients, got err=%v", err)
	}
	return clients[0]
}

func TestGenerateInsightsUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("falls back when the provider is not configured", func(t *testing.T) {
		storage := memstore.NewStorage()
		c := seededClient(t, storage)
		uc := NewGenerateInsightsUseCase(storage.Clients, storage.Insights, unavailableAdvisor{})

		output, err := uc.Execute(ctx, GenerateInsightsInput{ClientID: c.ID})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if len(output.Insights) != 3 {
			t.Fatalf("expected 3 fallback insights, got %d", len(output.Insights))
		}
		if output.Insights[0].Title != "Tax Optimization Review" {
			t.Errorf("expected fallback title, got %q", output.Insights[0].Title)
		}
		for _, in := range output.Insights {
			if in.ClientID != c.ID {
				t.Errorf("expected insight bound to client %s, got %s", c.ID, in.ClientID)
			}
			if in.IsRead {
				t.Error("expected new insights to be unread")
			}
		}

		stored, err := storage.Insights.FindByClient(ctx, c.ID)
		if err != nil {
			t.Fatalf("FindByClient failed: %v", err)
		}
		if len(stored) != 3 {
			t.Errorf("expected 3 persisted insights, got %d", len(stored))
		}
	})

	t.Run("falls back when the provider errors", func(t *testing.T) {
		storage := memstore.NewStorage()
		c := seededClient(t, storage)
		uc := NewGenerateInsightsUseCase(storage.Clients, storage.Insights, failingAdvisor{})

		output, err := uc.Execute(ctx, GenerateInsightsInput{ClientID: c.ID})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if len(output.Insights) != 3 {
			t.Fatalf("expected 3 fallback insights, got %d", len(output.Insights))
		}
	})

	t.Run("uses provider drafts when available", func(t *testing.T) {
		storage := memstore.NewStorage()
		c := seededClient(t, storage)
		advisor := scriptedAdvisor{drafts: []*adapter.InsightDraft{
			{Type: "risk", Title: "Concentration Risk", Description: "Too much in one stock", Impact: entity.ImpactHigh, Priority: 1},
		}}
		uc := NewGenerateInsightsUseCase(storage.Clients, storage.Insights, advisor)

		output, err := uc.Execute(ctx, GenerateInsightsInput{ClientID: c.ID})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if len(output.Insights) != 1 {
			t.Fatalf("expected 1 provider insight, got %d", len(output.Insights))
		}
		if output.Insights[0].Title != "Concentration Risk" {
			t.Errorf("expected provider title, got %q", output.Insights[0].Title)
		}
	})

	t.Run("fails for an unknown client", func(t *testing.T) {
		storage := memstore.NewStorage()
		uc := NewGenerateInsightsUseCase(storage.Clients, storage.Insights, unavailableAdvisor{})

		_, err := uc.Execute(ctx, GenerateInsightsInput{ClientID: uuid.New()})
		if !errors.Is(err, domainerror.ErrClientNotFound) {
			t.Errorf("expected ErrClientNotFound, got %v", err)
		}
	})
}

func TestFallbackInsights(t *testing.T) {
	profile := adapter.ClientProfile{Name: "Test Client", RiskProfile: entity.RiskProfileModerate}
	drafts := FallbackInsights(profile)

	if len(drafts) != 3 {
		t.Fatalf("expected 3 fallback drafts, got %d", len(drafts))
	}
	for i, d := range drafts {
		if d.Priority != i+1 {
			t.Errorf("expected priority %d at index %d, got %d", i+1, i, d.Priority)
		}
	}
	// Same profile always yields identical drafts.
	again := FallbackInsights(profile)
	for i := range drafts {
		if drafts[i].Description != again[i].Description {
			t.Errorf("expected deterministic fallback at index %d", i)
		}
	}
}
