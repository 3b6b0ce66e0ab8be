package dto

import (
	"time"

	"github.com/wealth-advisor/backend/internal/domain/entity"
	"github.com/wealth-advisor/backend/internal/domain/finmath"
)

// CreateScenarioRequest represents the request body for saving a what-if
// scenario.
type CreateScenarioRequest struct {
	ClientID   string         `json:"clientId" binding:"required,uuid"`
	Name       string         `json:"name" binding:"required"`
	Type       string         `json:"type" binding:"required"`
	Parameters map[string]any `json:"parameters" binding:"required"`
	Results    map[string]any `json:"results,omitempty"`
}

// UpdateScenarioRequest represents the request body for a scenario update.
type UpdateScenarioRequest struct {
	Name       *string        `json:"name,omitempty"`
	Type       *string        `json:"type,omitempty"`
	Parameters map[string]any `json:"parameters,omitempty"`
	Results    map[string]any `json:"results,omitempty"`
}

// ScenarioResponse represents a saved scenario in API responses.
type ScenarioResponse struct {
	ID         string         `json:"id"`
	ClientID   string         `json:"clientId"`
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	Parameters map[string]any `json:"parameters"`
	Results    map[string]any `json:"results,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// ToScenarioResponse converts a domain Scenario entity to a
// ScenarioResponse DTO.
func ToScenarioResponse(s *entity.Scenario) ScenarioResponse {
	return ScenarioResponse{
		ID:         s.ID.String(),
		ClientID:   s.ClientID.String(),
		Name:       s.Name,
		Type:       s.Type,
		Parameters: s.Parameters,
		Results:    s.Results,
		CreatedAt:  s.CreatedAt,
	}
}

// ToScenarioListResponse converts a list of scenarios to response DTOs.
func ToScenarioListResponse(scenarios []*entity.Scenario) []ScenarioResponse {
	responses := make([]ScenarioResponse, len(scenarios))
	for i, s := range scenarios {
		responses[i] = ToScenarioResponse(s)
	}
	return responses
}

// RetirementScenarioRequest represents the request body for a retirement
// analysis.
type RetirementScenarioRequest struct {
	CurrentAge     int     `json:"currentAge" binding:"required,gt=0"`
	RetirementAge  int     `json:"retirementAge" binding:"required,gtfield=CurrentAge"`
	CurrentSavings float64 `json:"currentSavings" binding:"gte=0"`
	MonthlySavings float64 `json:"monthlySavings" binding:"gte=0"`
	ExpectedReturn float64 `json:"expectedReturn" binding:"gte=0"`
}

// ProjectionPointResponse is one year of the retirement projection.
type ProjectionPointResponse struct {
	Age           int     `json:"age"`
	Balance       float64 `json:"balance"`
	Contributions float64 `json:"contributions"`
}

// RetirementAnalysisResponse couples the projected balance with the yearly
// series and advisory recommendations.
type RetirementAnalysisResponse struct {
	ProjectedBalance float64                   `json:"projectedBalance"`
	Projection       []ProjectionPointResponse `json:"projection"`
	Recommendations  []string                  `json:"recommendations"`
}

// ToRetirementAnalysisResponse builds the response from the projection
// output.
func ToRetirementAnalysisResponse(projectedBalance float64, projection []finmath.ProjectionPoint, recommendations []string) RetirementAnalysisResponse {
	points := make([]ProjectionPointResponse, len(projection))
	for i, p := range projection {
		points[i] = ProjectionPointResponse{
			Age:           p.Age,
			Balance:       p.Balance,
			Contributions: p.Contributions,
		}
	}
	return RetirementAnalysisResponse{
		ProjectedBalance: projectedBalance,
		Projection:       points,
		Recommendations:  recommendations,
	}
}

// MortgageScenarioRequest represents the request body for a mortgage
// quote.
type MortgageScenarioRequest struct {
	PurchasePrice float64 `json:"purchasePrice" binding:"required,gt=0"`
	DownPayment   float64 `json:"downPayment" binding:"gte=0"`
	InterestRate  float64 `json:"interestRate" binding:"gte=0"`
	TermYears     int     `json:"termYears" binding:"required,gt=0"`
}

// MortgageQuoteResponse is the computed financing breakdown.
type MortgageQuoteResponse struct {
	Principal      float64 `json:"principal"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalPaid      float64 `json:"totalPaid"`
	TotalInterest  float64 `json:"totalInterest"`
}

// ComparisonPointResponse is one checkpoint of the growth comparison. The
// three strategies are flattened into named fields.
type ComparisonPointResponse struct {
	Year         int     `json:"year"`
	Conservative float64 `json:"conservative"`
	Moderate     float64 `json:"moderate"`
	Aggressive   float64 `json:"aggressive"`
}

// GrowthComparisonResponse is the strategy comparison series.
type GrowthComparisonResponse struct {
	Principal float64                   `json:"principal"`
	Data      []ComparisonPointResponse `json:"data"`
}

// ToGrowthComparisonResponse flattens the comparison series for the API.
func ToGrowthComparisonResponse(principal float64, points []finmath.ComparisonPoint) GrowthComparisonResponse {
	data := make([]ComparisonPointResponse, len(points))
	for i, p := range points {
		data[i] = ComparisonPointResponse{
			Year:         p.Year,
			Conservative: p.Values["conservative"],
			Moderate:     p.Values["moderate"],
			Aggressive:   p.Values["aggressive"],
		}
	}
	return GrowthComparisonResponse{
		Principal: principal,
		Data:      data,
	}
}
