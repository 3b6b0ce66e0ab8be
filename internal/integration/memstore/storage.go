package memstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wealth-advisor/backend/internal/application/adapter"
	"github.com/wealth-advisor/backend/internal/domain/entity"
)

// retirementTarget is the goal every seeded client starts with.
var retirementTarget = decimal.NewFromInt(3_000_000)

type seedClient struct {
	name           string
	email          string
	occupation     string
	age            int
	netWorth       int64
	portfolioValue int64
	healthScore    int
	riskProfile    entity.RiskProfile
}

var seedClients = []seedClient{
	{"Sarah Johnson", "sarah.johnson@email.com", "Tech Executive", 42, 2_400_000, 1_850_000, 92, entity.RiskProfileModerate},
	{"Michael Chen", "michael.chen@email.com", "Business Owner", 55, 8_500_000, 6_200_000, 88, entity.RiskProfileConservative},
	{"Jennifer Martinez", "jennifer.martinez@email.com", "Doctor", 38, 1_800_000, 1_200_000, 85, entity.RiskProfileModerate},
	{"Robert Williams", "robert.williams@email.com", "Retired Executive", 67, 5_200_000, 4_500_000, 78, entity.RiskProfileConservative},
	{"Emily Davis", "emily.davis@email.com", "Software Engineer", 33, 850_000, 650_000, 95, entity.RiskProfileAggressive},
}

// NewStorage builds the in-memory backend pre-seeded with a demo roster:
// five clients, each with a retirement goal and a portfolio, plus a few
// open action items.
func NewStorage() *adapter.Storage {
	clients := newClientStore()
	goals := newGoalStore()
	portfolios := newPortfolioStore()
	insights := newInsightStore()
	scenarios := newScenarioStore()
	actions := newActionStore()

	seed(clients, goals, portfolios, actions)

	return &adapter.Storage{
		Clients:    clients,
		Goals:      goals,
		Portfolios: portfolios,
		Insights:   insights,
		Scenarios:  scenarios,
		Actions:    actions,
		Dashboard:  newDashboardStore(clients, actions),
	}
}

func seed(clients *clientStore, goals *goalStore, portfolios *portfolioStore, actions *actionStore) {
	ctx := context.Background()
	now := time.Now().UTC()
	targetDate := time.Date(2045, time.January, 1, 0, 0, 0, 0, time.UTC)

	ids := make([]uuid.UUID, 0, len(seedClients))
	for i, sc := range seedClients {
		occupation := sc.occupation
		client := entity.NewClient(
			sc.name, sc.email,
			nil, &occupation,
			sc.age,
			decimal.NewFromInt(sc.netWorth),
			decimal.NewFromInt(sc.portfolioValue),
			sc.healthScore,
			sc.riskProfile,
		)
		// Stagger last contact so the recent listing follows roster order.
		client.LastContact = now.AddDate(0, 0, -(i + 1))
		_ = clients.Create(ctx, client)
		ids = append(ids, client.ID)

		portfolioValue := decimal.NewFromInt(sc.portfolioValue)
		progress := int(portfolioValue.Div(retirementTarget).Mul(decimal.NewFromInt(100)).IntPart())
		if progress > 100 {
			progress = 100
		}
		_ = goals.Create(ctx, entity.NewGoal(
			client.ID,
			entity.GoalTypeRetirement,
			"Retirement Fund",
			retirementTarget,
			portfolioValue,
			targetDate,
			progress,
			entity.PriorityHigh,
		))

		_ = portfolios.Create(ctx, entity.NewPortfolio(
			client.ID,
			portfolioValue,
			decimal.NewFromInt(12_000),
			decimal.NewFromFloat(8.5),
			map[string]float64{
				"stocks":      45,
				"bonds":       25,
				"realEstate":  15,
				"cash":        10,
				"alternative": 5,
			},
		))
	}

	reviewDue := now.AddDate(0, 0, 7)
	rebalanceDue := now.AddDate(0, 0, 3)
	reportDue := now.AddDate(0, 0, 14)

	reviewDesc := "Quarterly portfolio review and goal check-in"
	_ = actions.Create(ctx, entity.NewAction(&ids[0], "Schedule portfolio review with Sarah Johnson", &reviewDesc, entity.PriorityHigh, &reviewDue))

	rebalanceDesc := "Allocation has drifted past the rebalancing threshold"
	_ = actions.Create(ctx, entity.NewAction(&ids[1], "Rebalance Michael Chen's portfolio", &rebalanceDesc, entity.PriorityHigh, &rebalanceDue))

	reportDesc := "Compile quarterly performance reports for all clients"
	_ = actions.Create(ctx, entity.NewAction(nil, "Prepare quarterly performance reports", &reportDesc, entity.PriorityMedium, &reportDue))
}
