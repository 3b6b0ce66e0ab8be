package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalType represents the category of a financial goal.
type GoalType string

const (
	GoalTypeRetirement GoalType = "retirement"
	GoalTypeEducation  GoalType = "education"
	GoalTypeHome       GoalType = "home"
	GoalTypeInvestment GoalType = "investment"
	GoalTypeOther      GoalType = "other"
)

// Priority represents the urgency tier shared by goals and actions.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Goal represents a client's financial goal. Progress is advisory data
// supplied by the caller; it is never recomputed from the amounts.
type Goal struct {
	ID            uuid.UUID
	ClientID      uuid.UUID
	Type          GoalType
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    time.Time
	Progress      int // 0-100
	Priority      Priority
	CreatedAt     time.Time
}

// NewGoal creates a new Goal entity.
func NewGoal(
	clientID uuid.UUID,
	goalType GoalType,
	name string,
	targetAmount, currentAmount decimal.Decimal,
	targetDate time.Time,
	progress int,
	priority Priority,
) *Goal {
	return &Goal{
		ID:            uuid.New(),
		ClientID:      clientID,
		Type:          goalType,
		Name:          name,
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		TargetDate:    targetDate,
		Progress:      progress,
		Priority:      priority,
		CreatedAt:     time.Now().UTC(),
	}
}

// IsValidGoalType reports whether the given type is supported.
func IsValidGoalType(t GoalType) bool {
	switch t {
	case GoalTypeRetirement, GoalTypeEducation, GoalTypeHome, GoalTypeInvestment, GoalTypeOther:
		return true
	}
	return false
}

// IsValidPriority reports whether the given priority tier is supported.
func IsValidPriority(p Priority) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}
