// Package insight contains AI-insight use cases.
package insight

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wealth-advisor/backend/internal/application/adapter"
	"github.com/wealth-advisor/backend/internal/domain/entity"
)

// ListInsightsInput represents the input for listing insights. A nil
// ClientID lists the whole book.
type ListInsightsInput struct {
	ClientID *uuid.UUID
}

// ListInsightsOutput represents the output of listing insights.
type ListInsightsOutput struct {
	Insights []*entity.Insight
}

// ListInsightsUseCase handles listing stored insights.
type ListInsightsUseCase struct {
	insightRepo adapter.InsightRepository
}

// NewListInsightsUseCase creates a new ListInsightsUseCase instance.
func NewListInsightsUseCase(insightRepo adapter.InsightRepository) *ListInsightsUseCase {
	return &ListInsightsUseCase{insightRepo: insightRepo}
}

// Execute retrieves insights, optionally scoped to one client.
func (uc *ListInsightsUseCase) Execute(ctx context.Context, input ListInsightsInput) (*ListInsightsOutput, error) {
	var (
		insights []*entity.Insight
		err      error
	)
	if input.ClientID != nil {
		insights, err = uc.insightRepo.FindByClient(ctx, *input.ClientID)
	} else {
		insights, err = uc.insightRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list insights: %w", err)
	}
	return &ListInsightsOutput{Insights: insights}, nil
}
