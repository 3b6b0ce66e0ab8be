package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/wealth-advisor/backend/internal/domain/entity"
)

// ActionModel represents the actions table in the database. ClientID is
// null for firm-wide tasks.
type ActionModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ClientID    *uuid.UUID `gorm:"type:uuid;index"`
	Title       string     `gorm:"type:text;not null"`
	Description *string    `gorm:"type:text"`
	Priority    string     `gorm:"type:varchar(10);not null;default:'medium'"`
	DueDate     *time.Time
	IsCompleted bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the ActionModel.
func (ActionModel) TableName() string {
	return "actions"
}

// ToEntity converts an ActionModel to a domain Action entity.
func (m *ActionModel) ToEntity() *entity.Action {
	return &entity.Action{
		ID:          m.ID,
		ClientID:    m.ClientID,
		Title:       m.Title,
		Description: m.Description,
		Priority:    entity.Priority(m.Priority),
		DueDate:     m.DueDate,
		IsCompleted: m.IsCompleted,
		CreatedAt:   m.CreatedAt,
	}
}

// ActionFromEntity creates an ActionModel from a domain Action entity.
func ActionFromEntity(a *entity.Action) *ActionModel {
	return &ActionModel{
		ID:          a.ID,
		ClientID:    a.ClientID,
		Title:       a.Title,
		Description: a.Description,
		Priority:    string(a.Priority),
		DueDate:     a.DueDate,
		IsCompleted: a.IsCompleted,
		CreatedAt:   a.CreatedAt,
	}
}
