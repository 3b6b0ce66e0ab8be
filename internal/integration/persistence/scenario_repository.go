package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wealth-advisor/backend/internal/application/adapter"
	"github.com/wealth-advisor/backend/internal/domain/entity"
	domainerror "github.com/wealth-advisor/backend/internal/domain/error"
	"github.com/wealth-advisor/backend/internal/integration/persistence/model"
)

// scenarioRepository implements the adapter.ScenarioRepository interface.
type scenarioRepository struct {
	db *gorm.DB
}

// NewScenarioRepository creates a new scenario repository instance.
func NewScenarioRepository(db *gorm.DB) adapter.ScenarioRepository {
	return &scenarioRepository{db: db}
}

// Create persists a new scenario.
func (r *scenarioRepository) Create(ctx context.Context, scenario *entity.Scenario) error {
	scenarioModel := model.ScenarioFromEntity(scenario)
	if result := r.db.WithContext(ctx).Create(scenarioModel); result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a scenario by its id.
func (r *scenarioRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Scenario, error) {
	var scenarioModel model.ScenarioModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&scenarioModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrScenarioNotFound
		}
		return nil, result.Error
	}
	return scenarioModel.ToEntity(), nil
}

// FindByClient retrieves a client's scenarios, newest first.
func (r *scenarioRepository) FindByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Scenario, error) {
	var scenarioModels []model.ScenarioModel
	result := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&scenarioModels)
	if result.Error != nil {
		return nil, result.Error
	}

	scenarios := make([]*entity.Scenario, len(scenarioModels))
	for i, sm := range scenarioModels {
		scenarios[i] = sm.ToEntity()
	}
	return scenarios, nil
}

// Update replaces the stored scenario row.
func (r *scenarioRepository) Update(ctx context.Context, scenario *entity.Scenario) error {
	scenarioModel := model.ScenarioFromEntity(scenario)
	if result := r.db.WithContext(ctx).Save(scenarioModel); result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a scenario, reporting whether a row existed.
func (r *scenarioRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&model.ScenarioModel{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
