package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wealth-advisor/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	ClientID      string          `json:"clientId" binding:"required,uuid"`
	Type          string          `json:"type" binding:"required,oneof=retirement education home investment other"`
	Name          string          `json:"name" binding:"required"`
	TargetAmount  decimal.Decimal `json:"targetAmount" binding:"required"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	TargetDate    time.Time       `json:"targetDate" binding:"required"`
	Progress      *int            `json:"progress,omitempty" binding:"omitempty,gte=0,lte=100"`
	Priority      *string         `json:"priority,omitempty" binding:"omitempty,oneof=low medium high"`
}

// UpdateGoalRequest represents the request body for a goal update.
type UpdateGoalRequest struct {
	Type          *string          `json:"type,omitempty" binding:"omitempty,oneof=retirement education home investment other"`
	Name          *string          `json:"name,omitempty"`
	TargetAmount  *decimal.Decimal `json:"targetAmount,omitempty"`
	CurrentAmount *decimal.Decimal `json:"currentAmount,omitempty"`
	TargetDate    *time.Time       `json:"targetDate,omitempty"`
	Progress      *int             `json:"progress,omitempty" binding:"omitempty,gte=0,lte=100"`
	Priority      *string          `json:"priority,omitempty" binding:"omitempty,oneof=low medium high"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID            string          `json:"id"`
	ClientID      string          `json:"clientId"`
	Type          string          `json:"type"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	TargetDate    time.Time       `json:"targetDate"`
	Progress      int             `json:"progress"`
	Priority      string          `json:"priority"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	return GoalResponse{
		ID:            g.ID.String(),
		ClientID:      g.ClientID.String(),
		Type:          string(g.Type),
		Name:          g.Name,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		TargetDate:    g.TargetDate,
		Progress:      g.Progress,
		Priority:      string(g.Priority),
		CreatedAt:     g.CreatedAt,
	}
}

// ToGoalListResponse converts a list of goals to response DTOs.
func ToGoalListResponse(goals []*entity.Goal) []GoalResponse {
	responses := make([]GoalResponse, len(goals))
	for i, g := range goals {
		responses[i] = ToGoalResponse(g)
	}
	return responses
}
