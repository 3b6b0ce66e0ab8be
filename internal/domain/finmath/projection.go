// Package finmath implements the closed-form financial projections used by
// the planning and scenario tools. All functions are pure, deterministic and
// operate on float64; input validation is the caller's responsibility.
package finmath

// ProjectionPoint is one yearly data point of a retirement projection.
// Contributions is the cumulative nominal amount paid in up to that year,
// undiscounted and without growth.
type ProjectionPoint struct {
	Age           int
	Balance       float64
	Contributions float64
}

// RetirementProjection projects a savings balance from currentAge to
// retirementAge inclusive, compounding the balance once per year at
// annualReturnPct and adding twelve monthly contributions:
//
//	balance[0]   = currentSavings
//	balance[i+1] = balance[i]*(1+annualReturnPct/100) + monthlySavings*12
//
// When retirementAge <= currentAge the projection is a single point with no
// growth applied.
func RetirementProjection(
	currentAge, retirementAge int,
	currentSavings, monthlySavings, annualReturnPct float64,
) []ProjectionPoint {
	years := retirementAge - currentAge
	if years < 0 {
		years = 0
	}

	points := make([]ProjectionPoint, 0, years+1)
	balance := currentSavings
	for i := 0; i <= years; i++ {
		points = append(points, ProjectionPoint{
			Age:           currentAge + i,
			Balance:       balance,
			Contributions: currentSavings + monthlySavings*12*float64(i),
		})
		balance = balance*(1+annualReturnPct/100) + monthlySavings*12
	}
	return points
}

// ProjectedRetirementBalance returns the final balance of the projection.
func ProjectedRetirementBalance(
	currentAge, retirementAge int,
	currentSavings, monthlySavings, annualReturnPct float64,
) float64 {
	points := RetirementProjection(currentAge, retirementAge, currentSavings, monthlySavings, annualReturnPct)
	return points[len(points)-1].Balance
}
