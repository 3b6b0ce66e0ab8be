package adapter

// Storage bundles the per-family repositories of one storage backend.
// Exactly one backend is active per process: the relational store when a
// database URL is configured, the seeded in-memory store otherwise. Both
// satisfy the same repository contracts and are interchangeable.
type Storage struct {
	Clients    ClientRepository
	Goals      GoalRepository
	Portfolios PortfolioRepository
	Insights   InsightRepository
	Scenarios  ScenarioRepository
	Actions    ActionRepository
	Dashboard  DashboardRepository
}
