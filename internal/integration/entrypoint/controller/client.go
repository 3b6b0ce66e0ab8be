package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wealth-advisor/backend/internal/application/usecase/client"
	"github.com/wealth-advisor/backend/internal/domain/entity"
	domainerror "github.com/wealth-advisor/backend/internal/domain/error"
	"github.com/wealth-advisor/backend/internal/integration/entrypoint/dto"
)

// ClientController handles client endpoints.
type ClientController struct {
	listUseCase   *client.ListClientsUseCase
	getUseCase    *client.GetClientUseCase
	recentUseCase *client.RecentClientsUseCase
	createUseCase *client.CreateClientUseCase
	updateUseCase *client.UpdateClientUseCase
	deleteUseCase *client.DeleteClientUseCase
}

// NewClientController creates a new client controller instance.
func NewClientController(
	listUseCase *client.ListClientsUseCase,
	getUseCase *client.GetClientUseCase,
	recentUseCase *client.RecentClientsUseCase,
	createUseCase *client.CreateClientUseCase,
	updateUseCase *client.UpdateClientUseCase,
	deleteUseCase *client.DeleteClientUseCase,
) *ClientController {
	return &ClientController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		recentUseCase: recentUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /clients requests.
func (c *ClientController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve clients",
		})
		return
	}
	ctx.JSON(http.StatusOK, dto.ToClientListResponse(output.Clients))
}

// Recent handles GET /clients/recent requests.
func (c *ClientController) Recent(ctx *gin.Context) {
	output, err := c.recentUseCase.Execute(ctx.Request.Context(), client.RecentClientsInput{})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve recent clients",
		})
		return
	}
	ctx.JSON(http.StatusOK, dto.ToClientListResponse(output.Clients))
}

// Get handles GET /clients/:id requests.
func (c *ClientController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), client.GetClientInput{ID: id})
	if err != nil {
		c.handleClientError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToClientResponse(output.Client))
}

// Create handles POST /clients requests.
func (c *ClientController) Create(ctx *gin.Context) {
	var req dto.CreateClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidClientFields),
		})
		return
	}

	input := client.CreateClientInput{
		Name:           req.Name,
		Email:          req.Email,
		Avatar:         req.Avatar,
		Age:            req.Age,
		Occupation:     req.Occupation,
		NetWorth:       req.NetWorth,
		PortfolioValue: req.PortfolioValue,
		HealthScore:    req.HealthScore,
	}
	if req.RiskProfile != nil {
		profile := entity.RiskProfile(*req.RiskProfile)
		input.RiskProfile = &profile
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleClientError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToClientResponse(output.Client))
}

// Update handles PATCH /clients/:id requests. Absent fields keep their
// stored values.
func (c *ClientController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidClientFields),
		})
		return
	}

	input := client.UpdateClientInput{
		ID:             id,
		Name:           req.Name,
		Email:          req.Email,
		Avatar:         req.Avatar,
		Age:            req.Age,
		Occupation:     req.Occupation,
		NetWorth:       req.NetWorth,
		PortfolioValue: req.PortfolioValue,
		HealthScore:    req.HealthScore,
		LastContact:    req.LastContact,
	}
	if req.RiskProfile != nil {
		profile := entity.RiskProfile(*req.RiskProfile)
		input.RiskProfile = &profile
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleClientError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToClientResponse(output.Client))
}

// Delete handles DELETE /clients/:id requests.
func (c *ClientController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), client.DeleteClientInput{ID: id}); err != nil {
		c.handleClientError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// handleClientError maps client errors to HTTP responses.
func (c *ClientController) handleClientError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrClientNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Client not found",
			Code:  string(domainerror.ErrCodeClientNotFound),
		})
	case errors.Is(err, domainerror.ErrInvalidRiskProfile):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid risk profile",
			Code:  string(domainerror.ErrCodeInvalidRiskProfile),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}

// parseIDParam parses the :id URL parameter, writing a 400 response on
// failure.
func parseIDParam(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}
