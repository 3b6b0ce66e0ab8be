package entity

import (
	"time"

	"github.com/google/uuid"
)

// ImpactLevel qualifies how much an insight matters to the client.
type ImpactLevel string

const (
	ImpactHigh   ImpactLevel = "High"
	ImpactMedium ImpactLevel = "Medium"
	ImpactLow    ImpactLevel = "Low"
)

// DefaultInsightPriority is the least urgent rank on the 1-5 scale.
const DefaultInsightPriority = 5

// Insight represents an AI-generated recommendation for a client. Insights
// are write-once: they are created by the generator and only ever deleted.
// Priority is advisory; lower numbers are conventionally more urgent.
type Insight struct {
	ID          uuid.UUID
	ClientID    uuid.UUID
	Type        string // opportunity, risk, action
	Title       string
	Description string
	Impact      ImpactLevel
	Priority    int
	IsRead      bool
	CreatedAt   time.Time
}

// NewInsight creates a new unread Insight entity.
func NewInsight(
	clientID uuid.UUID,
	insightType, title, description string,
	impact ImpactLevel,
	priority int,
) *Insight {
	return &Insight{
		ID:          uuid.New(),
		ClientID:    clientID,
		Type:        insightType,
		Title:       title,
		Description: description,
		Impact:      impact,
		Priority:    priority,
		IsRead:      false,
		CreatedAt:   time.Now().UTC(),
	}
}
