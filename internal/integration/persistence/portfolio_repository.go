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

// portfolioRepository implements the adapter.PortfolioRepository interface.
type portfolioRepository struct {
	db *gorm.DB
}

// NewPortfolioRepository creates a new portfolio repository instance.
func NewPortfolioRepository(db *gorm.DB) adapter.PortfolioRepository {
	return &portfolioRepository{db: db}
}

// Create persists a new portfolio.
func (r *portfolioRepository) Create(ctx context.Context, portfolio *entity.Portfolio) error {
	portfolioModel := model.PortfolioFromEntity(portfolio)
	if result := r.db.WithContext(ctx).Create(portfolioModel); result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a portfolio by its id.
func (r *portfolioRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Portfolio, error) {
	var portfolioModel model.PortfolioModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&portfolioModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPortfolioNotFound
		}
		return nil, result.Error
	}
	return portfolioModel.ToEntity(), nil
}

// FindByClient retrieves the portfolio belonging to a client.
func (r *portfolioRepository) FindByClient(ctx context.Context, clientID uuid.UUID) (*entity.Portfolio, error) {
	var portfolioModel model.PortfolioModel
	result := r.db.WithContext(ctx).Where("client_id = ?", clientID).First(&portfolioModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPortfolioNotFound
		}
		return nil, result.Error
	}
	return portfolioModel.ToEntity(), nil
}

// Update replaces the stored portfolio row.
func (r *portfolioRepository) Update(ctx context.Context, portfolio *entity.Portfolio) error {
	portfolioModel := model.PortfolioFromEntity(portfolio)
	if result := r.db.WithContext(ctx).Save(portfolioModel); result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a portfolio, reporting whether a row existed.
func (r *portfolioRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&model.PortfolioModel{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
