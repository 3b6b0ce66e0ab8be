package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wealth-advisor/backend/internal/application/usecase/dashboard"
	"github.com/wealth-advisor/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard aggregate endpoints.
type DashboardController struct {
	metricsUseCase *dashboard.GetMetricsUseCase
	chartUseCase   *dashboard.GetPortfolioChartUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	metricsUseCase *dashboard.GetMetricsUseCase,
	chartUseCase *dashboard.GetPortfolioChartUseCase,
) *DashboardController {
	return &DashboardController{
		metricsUseCase: metricsUseCase,
		chartUseCase:   chartUseCase,
	}
}

// Metrics handles GET /dashboard/metrics requests.
func (c *DashboardController) Metrics(ctx *gin.Context) {
	output, err := c.metricsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute dashboard metrics",
		})
		return
	}
	ctx.JSON(http.StatusOK, dto.ToDashboardMetricsResponse(output.Metrics))
}

// PortfolioChart handles GET /dashboard/portfolio-chart requests.
func (c *DashboardController) PortfolioChart(ctx *gin.Context) {
	output, err := c.chartUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to build portfolio chart",
		})
		return
	}
	ctx.JSON(http.StatusOK, dto.ToChartResponse(output.Points))
}
