package finmath

import "math"

// Growth comparison checkpoints: every 5 years from year 0 to 30.
const (
	comparisonHorizonYears = 30
	comparisonStepYears    = 5
)

// ComparisonPoint holds the projected value of each named strategy at one
// checkpoint year.
type ComparisonPoint struct {
	Year   int
	Values map[string]float64
}

// GrowthComparison projects a single principal under several named annual
// growth rates (in percent), evaluated at 5-year checkpoints from year 0 to
// year 30 via value = principal * (1+rate/100)^year.
func GrowthComparison(principal float64, annualRatesPct map[string]float64) []ComparisonPoint {
	points := make([]ComparisonPoint, 0, comparisonHorizonYears/comparisonStepYears+1)
	for year := 0; year <= comparisonHorizonYears; year += comparisonStepYears {
		values := make(map[string]float64, len(annualRatesPct))
		for name, rate := range annualRatesPct {
			values[name] = principal * math.Pow(1+rate/100, float64(year))
		}
		points = append(points, ComparisonPoint{Year: year, Values: values})
	}
	return points
}
