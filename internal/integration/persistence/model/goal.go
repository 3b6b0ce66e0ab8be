package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wealth-advisor/backend/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
type GoalModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ClientID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type          string          `gorm:"type:varchar(20);not null"`
	Name          string          `gorm:"type:text;not null"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TargetDate    time.Time       `gorm:"not null"`
	Progress      int             `gorm:"not null;default:0"`
	Priority      string          `gorm:"type:varchar(10);not null;default:'medium'"`
	CreatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	return &entity.Goal{
		ID:            m.ID,
		ClientID:      m.ClientID,
		Type:          entity.GoalType(m.Type),
		Name:          m.Name,
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		TargetDate:    m.TargetDate,
		Progress:      m.Progress,
		Priority:      entity.Priority(m.Priority),
		CreatedAt:     m.CreatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(g *entity.Goal) *GoalModel {
	return &GoalModel{
		ID:            g.ID,
		ClientID:      g.ClientID,
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
