// Package storagetest exercises the repository contracts shared by every
// storage backend. Both the in-memory store and the relational store run
// the same suite, so behavior differences between them show up as test
// failures rather than production surprises.
package storagetest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wealth-advisor/backend/internal/application/adapter"
	"github.com/wealth-advisor/backend/internal/domain/entity"
	domainerror "github.com/wealth-advisor/backend/internal/domain/error"
)

// Run executes the repository contract suite against one backend. The
// factory must return a ready-to-use storage; it may be pre-seeded, so
// the suite only asserts on entities it creates itself.
func Run(t *testing.T, factory func(t *testing.T) *adapter.Storage) {
	t.Run("clients", func(t *testing.T) { testClients(t, factory(t)) })
	t.Run("recent clients ordering", func(t *testing.T) { testRecentClients(t, factory(t)) })
	t.Run("goals", func(t *testing.T) { testGoals(t, factory(t)) })
	t.Run("portfolios", func(t *testing.T) { testPortfolios(t, factory(t)) })
	t.Run("insights", func(t *testing.T) { testInsights(t, factory(t)) })
	t.Run("scenarios", func(t *testing.T) { testScenarios(t, factory(t)) })
	t.Run("actions", func(t *testing.T) { testActions(t, factory(t)) })
	t.Run("dashboard", func(t *testing.T) { testDashboard(t, factory(t)) })
}

func newTestClient(name string, portfolioValue int64) *entity.Client {
	occupation := "Engineer"
	return entity.NewClient(
		name, name+"@example.com",
		nil, &occupation,
		40,
		decimal.NewFromInt(portfolioValue*2),
		decimal.NewFromInt(portfolioValue),
		90,
		entity.RiskProfileModerate,
	)
}

func testClients(t *testing.T, storage *adapter.Storage) {
	ctx := context.Background()

	created := newTestClient("Contract Client", 500_000)
	if err := storage.Clients.Create(ctx, created); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	t.Run("round trip preserves fields", func(t *testing.T) {
		got, err := storage.Clients.FindByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("FindByID failed: %v", err)
		}
		if got.Name != created.Name {
			t.Errorf("expected name %q, got %q", created.Name, got.Name)
		}
		if got.Email != created.Email {
			t.Errorf("expected email %q, got %q", created.Email, got.Email)
		}
		if !got.PortfolioValue.Equal(created.PortfolioValue) {
			t.Errorf("expected portfolio value %s, got %s", created.PortfolioValue, got.PortfolioValue)
		}
		if got.RiskProfile != entity.RiskProfileModerate {
			t.Errorf("expected risk profile moderate, got %s", got.RiskProfile)
		}
		if got.Occupation == nil || *got.Occupation != "Engineer" {
			t.Errorf("expected occupation Engineer, got %v", got.Occupation)
		}
	})

	t.Run("FindAll contains the created client", func(t *testing.T) {
		all, err := storage.Clients.FindAll(ctx)
		if err != nil {
			t.Fatalf("FindAll failed: %v", err)
		}
		found := false
		for _, c := range all {
			if c.ID == created.ID {
				found = true
			}
		}
		if !found {
			t.Error("expected FindAll to include the created client")
		}
	})

	t.Run("Update replaces stored fields", func(t *testing.T) {
		created.Name = "Renamed Client"
		created.HealthScore = 70
		if err := storage.Clients.Update(ctx, created); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		got, err := storage.Clients.FindByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("FindByID after update failed: %v", err)
		}
		if got.Name != "Renamed Client" {
			t.Errorf("expected updated name, got %q", got.Name)
		}
		if got.HealthScore != 70 {
			t.Errorf("expected health score 70, got %d", got.HealthScore)
		}
	})

	t.Run("Delete reports existence", func(t *testing.T) {
		existed, err := storage.Clients.Delete(ctx, created.ID)
		if err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if !existed {
			t.Error("expected Delete to report the client existed")
		}
		if _, err := storage.Clients.FindByID(ctx, created.ID); err == nil {
			t.Error("expected FindByID to fail after delete")
		} else if err != domainerror.ErrClientNotFound {
			t.Errorf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("Delete of a missing id reports false", func(t *testing.T) {
		existed, err := storage.Clients.Delete(ctx, uuid.New())
		if err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if existed {
			t.Error("expected Delete to report false for a missing id")
		}
	})
}

func testRecentClients(t *testing.T, storage *adapter.Storage) {
	ctx := context.Background()

	// Future timestamps rank these above any pre-seeded clients.
	base := time.Now().UTC().Add(24 * time.Hour)
	names := []string{"Oldest Contact", "Middle Contact", "Newest Contact"}
	ids := make([]uuid.UUID, len(names))
	for i, name := range names {
		c := newTestClient(name, 100_000)
		c.LastContact = base.Add(time.Duration(i) * time.Hour)
		if err := storage.Clients.Create(ctx, c); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		ids[i] = c.ID
	}

	recent, err := storage.Clients.FindRecent(ctx, 3)
	if err != nil {
		t.Fatalf("FindRecent failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("expected 3 recent clients, got %d", len(recent))
	}
	if recent[0].ID != ids[2] || recent[1].ID != ids[1] || recent[2].ID != ids[0] {
		t.Errorf("expected newest-first ordering, got %s, %s, %s",
			recent[0].Name, recent[1].Name, recent[2].Name)
	}
}

func testGoals(t *testing.T, storage *adapter.Storage) {
	ctx := context.Background()

	owner := newTestClient("Goal Owner", 200_000)
	if err := storage.Clients.Create(ctx, owner); err != nil {
		t.Fatalf("Create client failed: %v", err)
	}

	targetDate := time.Date(2040, time.June, 1, 0, 0, 0, 0, time.UTC)
	first := entity.NewGoal(owner.ID, entity.GoalTypeRetirement, "First Goal",
		decimal.NewFromInt(1_000_000), decimal.NewFromInt(250_000), targetDate, 25, entity.PriorityHigh)
	second := entity.NewGoal(owner.ID, entity.GoalTypeHome, "Second Goal",
		decimal.NewFromInt(400_000), decimal.NewFromInt(50_000), targetDate, 12, entity.PriorityMedium)
	second.CreatedAt = first.CreatedAt.Add(time.Second)

	if err := storage.Goals.Create(ctx, first); err != nil {
		t.Fatalf("Create goal failed: %v", err)
	}
	if err := storage.Goals.Create(ctx, second); err != nil {
		t.Fatalf("Create goal failed: %v", err)
	}

	t.Run("FindByClient returns goals in creation order", func(t *testing.T) {
		goals, err := storage.Goals.FindByClient(ctx, owner.ID)
		if err != nil {
			t.Fatalf("FindByClient failed: %v", err)
		}
		if len(goals) != 2 {
			t.Fatalf("expected 2 goals, got %d", len(goals))
		}
		if goals[0].ID != first.ID || goals[1].ID != second.ID {
			t.Errorf("expected creation order, got %q then %q", goals[0].Name, goals[1].Name)
		}
	})

	t.Run("round trip preserves amounts and progress", func(t *testing.T) {
		got, err := storage.Goals.FindByID(ctx, first.ID)
		if err != nil {
			t.Fatalf("FindByID failed: %v", err)
		}
		if !got.TargetAmount.Equal(first.TargetAmount) {
			t.Errorf("expected target %s, got %s", first.TargetAmount, got.TargetAmount)
		}
		if got.Progress != 25 {
			t.Errorf("expected progress 25, got %d", got.Progress)
		}
		if got.Priority != entity.PriorityHigh {
			t.Errorf("expected high priority, got %s", got.Priority)
		}
	})

	t.Run("Update replaces stored fields", func(t *testing.T) {
		first.Progress = 40
		first.CurrentAmount = decimal.NewFromInt(400_000)
		if err := storage.Goals.Update(ctx, first); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		got, err := storage.Goals.FindByID(ctx, first.ID)
		if err != nil {
			t.Fatalf("FindByID failed: %v", err)
		}
		if got.Progress != 40 {
			t.Errorf("expected progress 40, got %d", got.Progress)
		}
	})

	t.Run("Delete reports existence", func(t *testing.T) {
		existed, err := storage.Goals.Delete(ctx, second.ID)
		if err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if !existed {
			t.Error("expected Delete to report the goal existed")
		}
		existed, err = storage.Goals.Delete(ctx, second.ID)
		if err != nil {
			t.Fatalf("repeat Delete failed: %v", err)
		}
		if existed {
			t.Error("expected repeat Delete to report false")
		}
	})
}

func testPortfolios(t *testing.T, storage *adapter.Storage) {
	ctx := context.Background()

	owner := newTestClient("Portfolio Owner", 750_000)
	if err := storage.Clients.Create(ctx, owner); err != nil {
		t.Fatalf("Create client failed: %v", err)
	}

	allocation := map[string]float64{
		"stocks": 60,
		"bonds":  30,
		"cash":   10,
	}
	created := entity.NewPortfolio(owner.ID,
		decimal.NewFromInt(750_000), decimal.NewFromInt(5_000), decimal.NewFromFloat(7.2), allocation)
	if err := storage.Portfolios.Create(ctx, created); err != nil {
		t.Fatalf("Create portfolio failed: %v", err)
	}

	t.Run("FindByClient returns the portfolio with its allocation", func(t *testing.T) {
		got, err := storage.Portfolios.FindByClient(ctx, owner.ID)
		if err != nil {
			t.Fatalf("FindByClient failed: %v", err)
		}
		if got.ID != created.ID {
			t.Errorf("expected portfolio %s, got %s", created.ID, got.ID)
		}
		if len(got.Allocation) != 3 {
			t.Fatalf("expected 3 allocation entries, got %d", len(got.Allocation))
		}
		if got.Allocation["stocks"] != 60 {
			t.Errorf("expected stocks allocation 60, got %v", got.Allocation["stocks"])
		}
	})

	t.Run("FindByClient for an unknown client fails", func(t *testing.T) {
		if _, err := storage.Portfolios.FindByClient(ctx, uuid.New()); err != domainerror.ErrPortfolioNotFound {
			t.Errorf("expected ErrPortfolioNotFound, got %v", err)
		}
	})

	t.Run("Update replaces the allocation", func(t *testing.T) {
		created.Allocation = map[string]float64{"stocks": 100}
		created.TotalValue = decimal.NewFromInt(800_000)
		if err := storage.Portfolios.Update(ctx, created); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		got, err := storage.Portfolios.FindByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("FindByID failed: %v", err)
		}
		if len(got.Allocation) != 1 || got.Allocation["stocks"] != 100 {
			t.Errorf("expected allocation {stocks:100}, got %v", got.Allocation)
		}
		if !got.TotalValue.Equal(decimal.NewFromInt(800_000)) {
			t.Errorf("expected total value 800000, got %s", got.TotalValue)
		}
	})
}

func testInsights(t *testing.T, storage *adapter.Storage) {
	ctx := context.Background()

	owner := newTestClient("Insight Owner", 300_000)
	other := newTestClient("Other Owner", 300_000)
	for _, c := range []*entity.Client{owner, other} {
		if err := storage.Clients.Create(ctx, c); err != nil {
			t.Fatalf("Create client failed: %v", err)
		}
	}

	urgent := entity.NewInsight(owner.ID, "risk", "Urgent Insight", "Act now", entity.ImpactHigh, 1)
	later := entity.NewInsight(owner.ID, "opportunity", "Later Insight", "Eventually", entity.ImpactLow, 4)
	unrelated := entity.NewInsight(other.ID, "action", "Unrelated", "Different client", entity.ImpactMedium, 2)
	for _, in := range []*entity.Insight{later, urgent, unrelated} {
		if err := storage.Insights.Create(ctx, in); err != nil {
			t.Fatalf("Create insight failed: %v", err)
		}
	}

	t.Run("FindByClient scopes and ranks by priority", func(t *testing.T) {
		insights, err := storage.Insights.FindByClient(ctx, owner.ID)
		if err != nil {
			t.Fatalf("FindByClient failed: %v", err)
		}
		if len(insights) != 2 {
			t.Fatalf("expected 2 insights, got %d", len(insights))
		}
		if insights[0].ID != urgent.ID {
			t.Errorf("expected the priority-1 insight first, got %q", insights[0].Title)
		}
	})

	t.Run("Delete reports existence", func(t *testing.T) {
		existed, err := storage.Insights.Delete(ctx, urgent.ID)
		if err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if !existed {
			t.Error("expected Delete to report the insight existed")
		}
		existed, err = storage.Insights.Delete(ctx, uuid.New())
		if err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if existed {
			t.Error("expected Delete to report false for a missing id")
		}
	})
}

func testScenarios(t *testing.T, storage *adapter.Storage) {
	ctx := context.Background()

	owner := newTestClient("Scenario Owner", 400_000)
	if err := storage.Clients.Create(ctx, owner); err != nil {
		t.Fatalf("Create client failed: %v", err)
	}

	created := entity.NewScenario(owner.ID, "Early Retirement", "retirement",
		map[string]any{"currentAge": float64(40), "retirementAge": float64(60)}, nil)
	if err := storage.Scenarios.Create(ctx, created); err != nil {
		t.Fatalf("Create scenario failed: %v", err)
	}

	t.Run("round trip preserves parameters", func(t *testing.T) {
		got, err := storage.Scenarios.FindByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("FindByID failed: %v", err)
		}
		if got.Name != "Early Retirement" {
			t.Errorf("expected name Early Retirement, got %q", got.Name)
		}
		if got.Parameters["currentAge"] != float64(40) {
			t.Errorf("expected currentAge 40, got %v", got.Parameters["currentAge"])
		}
		if got.Results != nil {
			t.Errorf("expected nil results before analysis, got %v", got.Results)
		}
	})

	t.Run("Update attaches results", func(t *testing.T) {
		created.Results = map[string]any{"projectedBalance": float64(1_500_000)}
		if err := storage.Scenarios.Update(ctx, created); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		got, err := storage.Scenarios.FindByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("FindByID failed: %v", err)
		}
		if got.Results == nil || got.Results["projectedBalance"] != float64(1_500_000) {
			t.Errorf("expected attached results, got %v", got.Results)
		}
	})

	t.Run("FindByClient returns newest first", func(t *testing.T) {
		newer := entity.NewScenario(owner.ID, "Home Purchase", "home",
			map[string]any{"price": float64(900_000)}, nil)
		newer.CreatedAt = created.CreatedAt.Add(time.Second)
		if err := storage.Scenarios.Create(ctx, newer); err != nil {
			t.Fatalf("Create scenario failed: %v", err)
		}

		scenarios, err := storage.Scenarios.FindByClient(ctx, owner.ID)
		if err != nil {
			t.Fatalf("FindByClient failed: %v", err)
		}
		if len(scenarios) != 2 {
			t.Fatalf("expected 2 scenarios, got %d", len(scenarios))
		}
		if scenarios[0].ID != newer.ID {
			t.Errorf("expected newest scenario first, got %q", scenarios[0].Name)
		}
	})

	t.Run("Delete reports existence", func(t *testing.T) {
		existed, err := storage.Scenarios.Delete(ctx, created.ID)
		if err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if !existed {
			t.Error("expected Delete to report the scenario existed")
		}
	})
}

func testActions(t *testing.T, storage *adapter.Storage) {
	ctx := context.Background()

	owner := newTestClient("Action Owner", 100_000)
	if err := storage.Clients.Create(ctx, owner); err != nil {
		t.Fatalf("Create client failed: %v", err)
	}

	desc := "Call about rebalancing"
	linked := entity.NewAction(&owner.ID, "Client Call", &desc, entity.PriorityHigh, nil)
	firmWide := entity.NewAction(nil, "File Reports", nil, entity.PriorityMedium, nil)
	for _, a := range []*entity.Action{linked, firmWide} {
		if err := storage.Actions.Create(ctx, a); err != nil {
			t.Fatalf("Create action failed: %v", err)
		}
	}

	t.Run("FindActive includes both linked and firm-wide actions", func(t *testing.T) {
		active, err := storage.Actions.FindActive(ctx)
		if err != nil {
			t.Fatalf("FindActive failed: %v", err)
		}
		var foundLinked, foundFirmWide bool
		for _, a := range active {
			if a.ID == linked.ID {
				foundLinked = true
				if a.ClientID == nil || *a.ClientID != owner.ID {
					t.Error("expected linked action to keep its client id")
				}
			}
			if a.ID == firmWide.ID {
				foundFirmWide = true
				if a.ClientID != nil {
					t.Error("expected firm-wide action to have no client id")
				}
			}
		}
		if !foundLinked || !foundFirmWide {
			t.Errorf("expected both actions active, linked=%v firmWide=%v", foundLinked, foundFirmWide)
		}
	})

	t.Run("Toggle flips completion and hides the action", func(t *testing.T) {
		toggled, err := storage.Actions.Toggle(ctx, linked.ID)
		if err != nil {
			t.Fatalf("Toggle failed: %v", err)
		}
		if !toggled.IsCompleted {
			t.Error("expected action to be completed after toggle")
		}

		active, err := storage.Actions.FindActive(ctx)
		if err != nil {
			t.Fatalf("FindActive failed: %v", err)
		}
		for _, a := range active {
			if a.ID == linked.ID {
				t.Error("expected completed action to be absent from FindActive")
			}
		}
	})

	t.Run("Toggling twice restores the original state", func(t *testing.T) {
		restored, err := storage.Actions.Toggle(ctx, linked.ID)
		if err != nil {
			t.Fatalf("Toggle failed: %v", err)
		}
		if restored.IsCompleted {
			t.Error("expected action to be incomplete after a second toggle")
		}
	})

	t.Run("Toggle of a missing id fails", func(t *testing.T) {
		if _, err := storage.Actions.Toggle(ctx, uuid.New()); err != domainerror.ErrActionNotFound {
			t.Errorf("expected ErrActionNotFound, got %v", err)
		}
	})

	t.Run("Delete reports existence", func(t *testing.T) {
		existed, err := storage.Actions.Delete(ctx, firmWide.ID)
		if err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if !existed {
			t.Error("expected Delete to report the action existed")
		}
	})
}

func testDashboard(t *testing.T, storage *adapter.Storage) {
	ctx := context.Background()

	before, err := storage.Dashboard.Metrics(ctx)
	if err != nil {
		t.Fatalf("Metrics failed: %v", err)
	}

	added := newTestClient("Metrics Client", 1_000_000)
	if err := storage.Clients.Create(ctx, added); err != nil {
		t.Fatalf("Create client failed: %v", err)
	}
	pending := entity.NewAction(nil, "Pending Task", nil, entity.PriorityLow, nil)
	if err := storage.Actions.Create(ctx, pending); err != nil {
		t.Fatalf("Create action failed: %v", err)
	}

	t.Run("metrics are recomputed from current data", func(t *testing.T) {
		after, err := storage.Dashboard.Metrics(ctx)
		if err != nil {
			t.Fatalf("Metrics failed: %v", err)
		}
		aumDelta := after.TotalAUM.Sub(before.TotalAUM)
		if !aumDelta.Equal(decimal.NewFromInt(1_000_000)) {
			t.Errorf("expected total AUM to grow by 1000000, grew by %s", aumDelta)
		}
		if after.ActiveClients != before.ActiveClients+1 {
			t.Errorf("expected active clients %d, got %d", before.ActiveClients+1, after.ActiveClients)
		}
		if after.PendingActions != before.PendingActions+1 {
			t.Errorf("expected pending actions %d, got %d", before.PendingActions+1, after.PendingActions)
		}
		if after.PortfolioPerformance != entity.BookPerformancePct {
			t.Errorf("expected performance %v, got %v", entity.BookPerformancePct, after.PortfolioPerformance)
		}
	})

	t.Run("chart has six months of plausible values", func(t *testing.T) {
		points, err := storage.Dashboard.PortfolioChart(ctx)
		if err != nil {
			t.Fatalf("PortfolioChart failed: %v", err)
		}
		if len(points) != 6 {
			t.Fatalf("expected 6 chart points, got %d", len(points))
		}
		months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}
		for i, p := range points {
			if p.Date != months[i] {
				t.Errorf("expected month %s at index %d, got %s", months[i], i, p.Date)
			}
			low := 18 + float64(i)*0.8
			if p.Value < low || p.Value > low+0.5 {
				t.Errorf("expected value in [%v, %v] at index %d, got %v", low, low+0.5, i, p.Value)
			}
		}
	})
}
