package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wealth-advisor/backend/internal/application/usecase/scenario"
	domainerror "github.com/wealth-advisor/backend/internal/domain/error"
	"github.com/wealth-advisor/backend/internal/integration/entrypoint/dto"
)

// ScenarioController handles scenario endpoints, both the persisted
// what-if scenarios and the stateless analysis calculators.
type ScenarioController struct {
	listUseCase       *scenario.ListScenariosUseCase
	createUseCase     *scenario.CreateScenarioUseCase
	updateUseCase     *scenario.UpdateScenarioUseCase
	deleteUseCase     *scenario.DeleteScenarioUseCase
	retirementUseCase *scenario.AnalyzeRetirementUseCase
	mortgageUseCase   *scenario.MortgageQuoteUseCase
	comparisonUseCase *scenario.GrowthComparisonUseCase
}

// NewScenarioController creates a new scenario controller instance.
func NewScenarioController(
	listUseCase *scenario.ListScenariosUseCase,
	createUseCase *scenario.CreateScenarioUseCase,
	updateUseCase *scenario.UpdateScenarioUseCase,
	deleteUseCase *scenario.DeleteScenarioUseCase,
	retirementUseCase *scenario.AnalyzeRetirementUseCase,
	mortgageUseCase *scenario.MortgageQuoteUseCase,
	comparisonUseCase *scenario.GrowthComparisonUseCase,
) *ScenarioController {
	return &ScenarioController{
		listUseCase:       listUseCase,
		createUseCase:     createUseCase,
		updateUseCase:     updateUseCase,
		deleteUseCase:     deleteUseCase,
		retirementUseCase: retirementUseCase,
		mortgageUseCase:   mortgageUseCase,
		comparisonUseCase: comparisonUseCase,
	}
}

// ListByClient handles GET /clients/:id/scenarios requests.
func (c *ScenarioController) ListByClient(ctx *gin.Context) {
	clientID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), scenario.ListScenariosInput{ClientID: clientID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve scenarios",
		})
		return
	}
	ctx.JSON(http.StatusOK, dto.ToScenarioListResponse(output.Scenarios))
}

// Create handles POST /scenarios requests.
func (c *ScenarioController) Create(ctx *gin.Context) {
	var req dto.CreateScenarioRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidScenarioFields),
		})
		return
	}

	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid client ID format",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), scenario.CreateScenarioInput{
		ClientID:   clientID,
		Name:       req.Name,
		Type:       req.Type,
		Parameters: req.Parameters,
		Results:    req.Results,
	})
	if err != nil {
		c.handleScenarioError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToScenarioResponse(output.Scenario))
}

// Update handles PATCH /scenarios/:id requests.
func (c *ScenarioController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateScenarioRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidScenarioFields),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), scenario.UpdateScenarioInput{
		ID:         id,
		Name:       req.Name,
		Type:       req.Type,
		Parameters: req.Parameters,
		Results:    req.Results,
	})
	if err != nil {
		c.handleScenarioError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToScenarioResponse(output.Scenario))
}

// Delete handles DELETE /scenarios/:id requests.
func (c *ScenarioController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), scenario.DeleteScenarioInput{ID: id}); err != nil {
		c.handleScenarioError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// AnalyzeRetirement handles POST /scenarios/analyze requests. The
// numeric projection is deterministic; only the recommendation text
// involves the advisor provider.
func (c *ScenarioController) AnalyzeRetirement(ctx *gin.Context) {
	var req dto.RetirementScenarioRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output := c.retirementUseCase.Execute(ctx.Request.Context(), scenario.AnalyzeRetirementInput{
		CurrentAge:     req.CurrentAge,
		RetirementAge:  req.RetirementAge,
		CurrentSavings: req.CurrentSavings,
		MonthlySavings: req.MonthlySavings,
		ExpectedReturn: req.ExpectedReturn,
	})
	ctx.JSON(http.StatusOK, dto.ToRetirementAnalysisResponse(output.ProjectedBalance, output.Projection, output.Recommendations))
}

// QuoteMortgage handles POST /scenarios/mortgage requests.
func (c *ScenarioController) QuoteMortgage(ctx *gin.Context) {
	var req dto.MortgageScenarioRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output := c.mortgageUseCase.Execute(scenario.MortgageQuoteInput{
		PurchasePrice: req.PurchasePrice,
		DownPayment:   req.DownPayment,
		InterestRate:  req.InterestRate,
		TermYears:     req.TermYears,
	})
	ctx.JSON(http.StatusOK, dto.MortgageQuoteResponse{
		Principal:      output.Principal,
		MonthlyPayment: output.MonthlyPayment,
		TotalPaid:      output.TotalPaid,
		TotalInterest:  output.TotalInterest,
	})
}

// CompareGrowth handles GET /scenarios/comparison requests. The optional
// principal query parameter overrides the default starting amount.
func (c *ScenarioController) CompareGrowth(ctx *gin.Context) {
	var principal float64
	if raw := ctx.Query("principal"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid principal value",
			})
			return
		}
		principal = parsed
	}

	output := c.comparisonUseCase.Execute(scenario.GrowthComparisonInput{Principal: principal})
	ctx.JSON(http.StatusOK, dto.ToGrowthComparisonResponse(output.Principal, output.Points))
}

// handleScenarioError maps scenario errors to HTTP responses.
func (c *ScenarioController) handleScenarioError(ctx *gin.Context, err error) {
	if errors.Is(err, domainerror.ErrScenarioNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Scenario not found",
			Code:  string(domainerror.ErrCodeScenarioNotFound),
		})
		return
	}
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
