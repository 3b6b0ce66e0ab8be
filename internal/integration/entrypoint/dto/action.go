package dto

import (
	"time"

	"github.com/wealth-advisor/backend/internal/domain/entity"
)

// CreateActionRequest represents the request body for action creation.
// ClientID may be omitted for firm-wide tasks.
type CreateActionRequest struct {
	ClientID    *string    `json:"clientId,omitempty" binding:"omitempty,uuid"`
	Title       string     `json:"title" binding:"required"`
	Description *string    `json:"description,omitempty"`
	Priority    *string    `json:"priority,omitempty" binding:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
}

// UpdateActionRequest represents the request body for an action update.
type UpdateActionRequest struct {
	ClientID    *string    `json:"clientId,omitempty" binding:"omitempty,uuid"`
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Priority    *string    `json:"priority,omitempty" binding:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	IsCompleted *bool      `json:"isCompleted,omitempty"`
}

// ActionResponse represents a single action item in API responses.
type ActionResponse struct {
	ID          string     `json:"id"`
	ClientID    *string    `json:"clientId,omitempty"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	IsCompleted bool       `json:"isCompleted"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// ToActionResponse converts a domain Action entity to an ActionResponse
// DTO.
func ToActionResponse(a *entity.Action) ActionResponse {
	response := ActionResponse{
		ID:          a.ID.String(),
		Title:       a.Title,
		Description: a.Description,
		Priority:    string(a.Priority),
		DueDate:     a.DueDate,
		IsCompleted: a.IsCompleted,
		CreatedAt:   a.CreatedAt,
	}
	if a.ClientID != nil {
		id := a.ClientID.String()
		response.ClientID = &id
	}
	return response
}

// ToActionListResponse converts a list of actions to response DTOs.
func ToActionListResponse(actions []*entity.Action) []ActionResponse {
	responses := make([]ActionResponse, len(actions))
	for i, a := range actions {
		responses[i] = ToActionResponse(a)
	}
	return responses
}
