package insight

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wealth-advisor/backend/internal/application/adapter"
	domainerror "github.com/wealth-advisor/backend/internal/domain/error"
)

// DeleteInsightInput represents the input for insight deletion.
type DeleteInsightInput struct {
	ID uuid.UUID
}

// DeleteInsightUseCase handles insight deletion.
type DeleteInsightUseCase struct {
	insightRepo adapter.InsightRepository
}

// NewDeleteInsightUseCase creates a new DeleteInsightUseCase instance.
func NewDeleteInsightUseCase(insightRepo adapter.InsightRepository) *DeleteInsightUseCase {
	return &DeleteInsightUseCase{insightRepo: insightRepo}
}

// Execute deletes the insight.
func (uc *DeleteInsightUseCase) Execute(ctx context.Context, input DeleteInsightInput) error {
	existed, err := uc.insightRepo.Delete(ctx, input.ID)
	if err != nil {
		return fmt.Errorf("failed to delete insight: %w", err)
	}
	if !existed {
		return domainerror.ErrInsightNotFound
	}
	return nil
}
