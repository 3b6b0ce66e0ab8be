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

// actionRepository implements the adapter.ActionRepository interface.
type actionRepository struct {
	db *gorm.DB
}

// NewActionRepository creates a new action repository instance.
func NewActionRepository(db *gorm.DB) adapter.ActionRepository {
	return &actionRepository{db: db}
}

// Create persists a new action item.
func (r *actionRepository) Create(ctx context.Context, action *entity.Action) error {
	actionModel := model.ActionFromEntity(action)
	if result := r.db.WithContext(ctx).Create(actionModel); result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an action item by its id.
func (r *actionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Action, error) {
	var actionModel model.ActionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&actionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrActionNotFound
		}
		return nil, result.Error
	}
	return actionModel.ToEntity(), nil
}

// FindActive retrieves all open action items, newest first.
func (r *actionRepository) FindActive(ctx context.Context) ([]*entity.Action, error) {
	var actionModels []model.ActionModel
	result := r.db.WithContext(ctx).
		Where("is_completed = ?", false).
		Order("created_at DESC").
		Find(&actionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	actions := make([]*entity.Action, len(actionModels))
	for i, am := range actionModels {
		actions[i] = am.ToEntity()
	}
	return actions, nil
}

// Update replaces the stored action row.
func (r *actionRepository) Update(ctx context.Context, action *entity.Action) error {
	actionModel := model.ActionFromEntity(action)
	if result := r.db.WithContext(ctx).Save(actionModel); result.Error != nil {
		return result.Error
	}
	return nil
}

// Toggle flips an action's completion flag and returns the updated
// action. The read and write are separate statements, so two
// concurrent toggles of the same action can overwrite each other.
func (r *actionRepository) Toggle(ctx context.Context, id uuid.UUID) (*entity.Action, error) {
	var actionModel model.ActionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&actionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrActionNotFound
		}
		return nil, result.Error
	}

	actionModel.IsCompleted = !actionModel.IsCompleted
	if result := r.db.WithContext(ctx).Save(&actionModel); result.Error != nil {
		return nil, result.Error
	}
	return actionModel.ToEntity(), nil
}

// Delete removes an action, reporting whether a row existed.
func (r *actionRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&model.ActionModel{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
