package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wealth-advisor/backend/internal/application/usecase/portfolio"
	domainerror "github.com/wealth-advisor/backend/internal/domain/error"
	"github.com/wealth-advisor/backend/internal/integration/entrypoint/dto"
)

// PortfolioController handles portfolio endpoints.
type PortfolioController struct {
	getUseCase *portfolio.GetPortfolioUseCase
}

// NewPortfolioController creates a new portfolio controller instance.
func NewPortfolioController(getUseCase *portfolio.GetPortfolioUseCase) *PortfolioController {
	return &PortfolioController{getUseCase: getUseCase}
}

// GetByClient handles GET /clients/:id/portfolio requests.
func (c *PortfolioController) GetByClient(ctx *gin.Context) {
	clientID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), portfolio.GetPortfolioInput{ClientID: clientID})
	if err != nil {
		if errors.Is(err, domainerror.ErrPortfolioNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "Portfolio not found",
				Code:  string(domainerror.ErrCodePortfolioNotFound),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}
	ctx.JSON(http.StatusOK, dto.ToPortfolioResponse(output.Portfolio))
}
