package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wealth-advisor/backend/internal/application/usecase/insight"
	domainerror "github.com/wealth-advisor/backend/internal/domain/error"
	"github.com/wealth-advisor/backend/internal/integration/entrypoint/dto"
)

// InsightController handles insight endpoints.
type InsightController struct {
	listUseCase     *insight.ListInsightsUseCase
	generateUseCase *insight.GenerateInsightsUseCase
	deleteUseCase   *insight.DeleteInsightUseCase
}

// NewInsightController creates a new insight controller instance.
func NewInsightController(
	listUseCase *insight.ListInsightsUseCase,
	generateUseCase *insight.GenerateInsightsUseCase,
	deleteUseCase *insight.DeleteInsightUseCase,
) *InsightController {
	return &InsightController{
		listUseCase:     listUseCase,
		generateUseCase: generateUseCase,
		deleteUseCase:   deleteUseCase,
	}
}

// List handles GET /insights requests.
func (c *InsightController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), insight.ListInsightsInput{})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve insights",
		})
		return
	}
	ctx.JSON(http.StatusOK, dto.ToInsightListResponse(output.Insights))
}

// ListByClient handles GET /clients/:id/insights requests.
func (c *InsightController) ListByClient(ctx *gin.Context) {
	clientID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), insight.ListInsightsInput{ClientID: &clientID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve insights",
		})
		return
	}
	ctx.JSON(http.StatusOK, dto.ToInsightListResponse(output.Insights))
}

// Generate handles POST /insights/generate requests. Generation succeeds
// even when the advisor provider is down; the deterministic fallback set
// is stored instead.
func (c *InsightController) Generate(ctx *gin.Context) {
	var req dto.GenerateInsightsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
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

	output, err := c.generateUseCase.Execute(ctx.Request.Context(), insight.GenerateInsightsInput{ClientID: clientID})
	if err != nil {
		if errors.Is(err, domainerror.ErrClientNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "Client not found",
				Code:  string(domainerror.ErrCodeClientNotFound),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to generate insights",
		})
		return
	}
	ctx.JSON(http.StatusOK, dto.ToInsightListResponse(output.Insights))
}

// Delete handles DELETE /insights/:id requests.
func (c *InsightController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), insight.DeleteInsightInput{ID: id}); err != nil {
		if errors.Is(err, domainerror.ErrInsightNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "Insight not found",
				Code:  string(domainerror.ErrCodeInsightNotFound),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}
	ctx.Status(http.StatusNoContent)
}
