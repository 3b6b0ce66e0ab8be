package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wealth-advisor/backend/internal/application/usecase/action"
	"github.com/wealth-advisor/backend/internal/domain/entity"
	domainerror "github.com/wealth-advisor/backend/internal/domain/error"
	"github.com/wealth-advisor/backend/internal/integration/entrypoint/dto"
)

// ActionController handles action item endpoints.
type ActionController struct {
	listUseCase   *action.ListActionsUseCase
	createUseCase *action.CreateActionUseCase
	updateUseCase *action.UpdateActionUseCase
	toggleUseCase *action.ToggleActionUseCase
	deleteUseCase *action.DeleteActionUseCase
}

// NewActionController creates a new action controller instance.
func NewActionController(
	listUseCase *action.ListActionsUseCase,
	createUseCase *action.CreateActionUseCase,
	updateUseCase *action.UpdateActionUseCase,
	toggleUseCase *action.ToggleActionUseCase,
	deleteUseCase *action.DeleteActionUseCase,
) *ActionController {
	return &ActionController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		toggleUseCase: toggleUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /actions requests. Only incomplete actions are
// returned.
func (c *ActionController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve actions",
		})
		return
	}
	ctx.JSON(http.StatusOK, dto.ToActionListResponse(output.Actions))
}

// Create handles POST /actions requests.
func (c *ActionController) Create(ctx *gin.Context) {
	var req dto.CreateActionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidActionFields),
		})
		return
	}

	input := action.CreateActionInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	}
	if req.ClientID != nil {
		clientID, err := uuid.Parse(*req.ClientID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid client ID format",
			})
			return
		}
		input.ClientID = &clientID
	}
	if req.Priority != nil {
		priority := entity.Priority(*req.Priority)
		input.Priority = &priority
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleActionError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToActionResponse(output.Action))
}

// Update handles PATCH /actions/:id requests.
func (c *ActionController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateActionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidActionFields),
		})
		return
	}

	input := action.UpdateActionInput{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		IsCompleted: req.IsCompleted,
	}
	if req.ClientID != nil {
		clientID, err := uuid.Parse(*req.ClientID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid client ID format",
			})
			return
		}
		input.ClientID = &clientID
	}
	if req.Priority != nil {
		priority := entity.Priority(*req.Priority)
		input.Priority = &priority
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleActionError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToActionResponse(output.Action))
}

// Toggle handles PATCH /actions/:id/toggle requests.
func (c *ActionController) Toggle(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	output, err := c.toggleUseCase.Execute(ctx.Request.Context(), action.ToggleActionInput{ID: id})
	if err != nil {
		c.handleActionError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToActionResponse(output.Action))
}

// Delete handles DELETE /actions/:id requests.
func (c *ActionController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), action.DeleteActionInput{ID: id}); err != nil {
		c.handleActionError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// handleActionError maps action errors to HTTP responses.
func (c *ActionController) handleActionError(ctx *gin.Context, err error) {
	var domainErr *domainerror.DomainError
	switch {
	case errors.Is(err, domainerror.ErrActionNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Action not found",
			Code:  string(domainerror.ErrCodeActionNotFound),
		})
	case errors.As(err, &domainErr) && domainErr.Code == domainerror.ErrCodeInvalidActionFields:
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: domainErr.Message,
			Code:  string(domainErr.Code),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}
