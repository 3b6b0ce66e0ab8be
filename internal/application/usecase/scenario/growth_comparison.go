package scenario

import (
	"github.com/wealth-advisor/backend/internal/domain/finmath"
)

// DefaultComparisonPrincipal is the principal used when none is supplied.
const DefaultComparisonPrincipal = 100000

// Strategy growth rates contrasted on the scenario explorer.
var strategyRates = map[string]float64{
	"conservative": 5,
	"moderate":     7,
	"aggressive":   9,
}

// GrowthComparisonInput represents the input of the strategy comparison.
type GrowthComparisonInput struct {
	Principal float64 // Optional, defaults to DefaultComparisonPrincipal
}

// GrowthComparisonOutput represents the strategy comparison series.
type GrowthComparisonOutput struct {
	Principal float64
	Points    []finmath.ComparisonPoint
}

// GrowthComparisonUseCase contrasts the three standard strategies over a
// 30-year horizon. Pure computation, no dependencies.
type GrowthComparisonUseCase struct{}

// NewGrowthComparisonUseCase creates a new GrowthComparisonUseCase instance.
func NewGrowthComparisonUseCase() *GrowthComparisonUseCase {
	return &GrowthComparisonUseCase{}
}

// Execute computes the comparison series.
func (uc *GrowthComparisonUseCase) Execute(input GrowthComparisonInput) *GrowthComparisonOutput {
	principal := input.Principal
	if principal <= 0 {
		principal = DefaultComparisonPrincipal
	}

	return &GrowthComparisonOutput{
		Principal: principal,
		Points:    finmath.GrowthComparison(principal, strategyRates),
	}
}
