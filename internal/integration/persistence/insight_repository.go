package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wealth-advisor/backend/internal/application/adapter"
	"github.com/wealth-advisor/backend/internal/domain/entity"
	"github.com/wealth-advisor/backend/internal/integration/persistence/model"
)

// insightRepository implements the adapter.InsightRepository interface.
type insightRepository struct {
	db *gorm.DB
}

// NewInsightRepository creates a new insight repository instance.
func NewInsightRepository(db *gorm.DB) adapter.InsightRepository {
	return &insightRepository{db: db}
}

// Create persists a new insight.
func (r *insightRepository) Create(ctx context.Context, insight *entity.Insight) error {
	insightModel := model.InsightFromEntity(insight)
	if result := r.db.WithContext(ctx).Create(insightModel); result.Error != nil {
		return result.Error
	}
	return nil
}

// FindAll retrieves all insights, most urgent first.
func (r *insightRepository) FindAll(ctx context.Context) ([]*entity.Insight, error) {
	var insightModels []model.InsightModel
	result := r.db.WithContext(ctx).
		Order("priority ASC, created_at DESC").
		Find(&insightModels)
	if result.Error != nil {
		return nil, result.Error
	}

	insights := make([]*entity.Insight, len(insightModels))
	for i, im := range insightModels {
		insights[i] = im.ToEntity()
	}
	return insights, nil
}

// FindByClient retrieves a client's insights, most urgent first.
func (r *insightRepository) FindByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Insight, error) {
	var insightModels []model.InsightModel
	result := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("priority ASC, created_at DESC").
		Find(&insightModels)
	if result.Error != nil {
		return nil, result.Error
	}

	insights := make([]*entity.Insight, len(insightModels))
	for i, im := range insightModels {
		insights[i] = im.ToEntity()
	}
	return insights, nil
}

// Delete removes an insight, reporting whether a row existed.
func (r *insightRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&model.InsightModel{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
