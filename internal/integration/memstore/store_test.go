package memstore_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/wealth-advisor/backend/internal/application/adapter"
	"github.com/wealth-advisor/backend/internal/integration/memstore"
	"github.com/wealth-advisor/backend/internal/integration/storagetest"
)

func TestMemstoreContract(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) *adapter.Storage {
		return memstore.NewStorage()
	})
}

func TestMemstoreSeedData(t *testing.T) {
	ctx := context.Background()
	storage := memstore.NewStorage()

	clients, err := storage.Clients.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(clients) != 5 {
		t.Fatalf("expected 5 seeded clients, got %d", len(clients))
	}

	t.Run("roster leads with Sarah Johnson", func(t *testing.T) {
		first := clients[0]
		if first.Name != "Sarah Johnson" {
			t.Errorf("expected Sarah Johnson first, got %q", first.Name)
		}
		if !first.PortfolioValue.Equal(decimal.NewFromInt(1_850_000)) {
			t.Errorf("expected portfolio value 1850000, got %s", first.PortfolioValue)
		}
		if first.HealthScore != 92 {
			t.Errorf("expected health score 92, got %d", first.HealthScore)
		}
	})

	t.Run("every client has a retirement goal and a portfolio", func(t *testing.T) {
		for _, c := range clients {
			goals, err := storage.Goals.FindByClient(ctx, c.ID)
			if err != nil {
				t.Fatalf("FindByClient goals failed: %v", err)
			}
			if len(goals) != 1 {
				t.Fatalf("expected 1 seeded goal for %s, got %d", c.Name, len(goals))
			}
			if goals[0].Type != "retirement" {
				t.Errorf("expected retirement goal for %s, got %s", c.Name, goals[0].Type)
			}

			portfolio, err := storage.Portfolios.FindByClient(ctx, c.ID)
			if err != nil {
				t.Fatalf("FindByClient portfolio failed for %s: %v", c.Name, err)
			}
			if !portfolio.TotalValue.Equal(c.PortfolioValue) {
				t.Errorf("expected portfolio total %s for %s, got %s",
					c.PortfolioValue, c.Name, portfolio.TotalValue)
			}
		}
	})

	t.Run("recent listing follows roster order", func(t *testing.T) {
		recent, err := storage.Clients.FindRecent(ctx, 5)
		if err != nil {
			t.Fatalf("FindRecent failed: %v", err)
		}
		if len(recent) != 5 {
			t.Fatalf("expected 5 recent clients, got %d", len(recent))
		}
		for i, c := range recent {
			if c.ID != clients[i].ID {
				t.Errorf("expected %q at position %d, got %q", clients[i].Name, i, c.Name)
			}
		}
	})

	t.Run("three actions are seeded and pending", func(t *testing.T) {
		actions, err := storage.Actions.FindActive(ctx)
		if err != nil {
			t.Fatalf("FindActive failed: %v", err)
		}
		if len(actions) != 3 {
			t.Fatalf("expected 3 seeded actions, got %d", len(actions))
		}
		firmWide := 0
		for _, a := range actions {
			if a.ClientID == nil {
				firmWide++
			}
		}
		if firmWide != 1 {
			t.Errorf("expected exactly 1 firm-wide action, got %d", firmWide)
		}
	})

	t.Run("metrics reflect the seeded book", func(t *testing.T) {
		metrics, err := storage.Dashboard.Metrics(ctx)
		if err != nil {
			t.Fatalf("Metrics failed: %v", err)
		}
		// 1850000 + 6200000 + 1200000 + 4500000 + 650000
		if !metrics.TotalAUM.Equal(decimal.NewFromInt(14_400_000)) {
			t.Errorf("expected total AUM 14400000, got %s", metrics.TotalAUM)
		}
		if metrics.ActiveClients != 5 {
			t.Errorf("expected 5 active clients, got %d", metrics.ActiveClients)
		}
		if metrics.PendingActions != 3 {
			t.Errorf("expected 3 pending actions, got %d", metrics.PendingActions)
		}
	})
}
