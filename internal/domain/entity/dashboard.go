package entity

import "github.com/shopspring/decimal"

// BookPerformancePct is the fixed year-to-date performance figure shown
// on the dashboard until real performance tracking lands.
const BookPerformancePct = 8.5

// DashboardMetrics aggregates the advisor's book-level figures. TotalAUM is
// recomputed from the current client roster on every read, never cached.
type DashboardMetrics struct {
	TotalAUM             decimal.Decimal
	ActiveClients        int
	PendingActions       int
	PortfolioPerformance float64
}

// ChartPoint is one point of the dashboard portfolio chart.
type ChartPoint struct {
	Date  string
	Value float64
}
