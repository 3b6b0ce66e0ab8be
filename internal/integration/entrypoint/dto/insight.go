package dto

import (
	"time"

	"github.com/wealth-advisor/backend/internal/domain/entity"
)

// GenerateInsightsRequest represents the request body for insight
// generation.
type GenerateInsightsRequest struct {
	ClientID string `json:"clientId" binding:"required,uuid"`
}

// InsightResponse represents a single insight in API responses.
type InsightResponse struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"clientId"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Impact      string    `json:"impact"`
	Priority    int       `json:"priority"`
	IsRead      bool      `json:"isRead"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToInsightResponse converts a domain Insight entity to an
// InsightResponse DTO.
func ToInsightResponse(i *entity.Insight) InsightResponse {
	return InsightResponse{
		ID:          i.ID.String(),
		ClientID:    i.ClientID.String(),
		Type:        i.Type,
		Title:       i.Title,
		Description: i.Description,
		Impact:      string(i.Impact),
		Priority:    i.Priority,
		IsRead:      i.IsRead,
		CreatedAt:   i.CreatedAt,
	}
}

// ToInsightListResponse converts a list of insights to response DTOs.
func ToInsightListResponse(insights []*entity.Insight) []InsightResponse {
	responses := make([]InsightResponse, len(insights))
	for i, in := range insights {
		responses[i] = ToInsightResponse(in)
	}
	return responses
}
