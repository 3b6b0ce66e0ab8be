package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/wealth-advisor/backend/internal/domain/entity"
)

// InsightModel represents the insights table in the database.
type InsightModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Type        string    `gorm:"type:varchar(20);not null"`
	Title       string    `gorm:"type:text;not null"`
	Description string    `gorm:"type:text;not null"`
	Impact      string    `gorm:"type:varchar(10);not null"`
	Priority    int       `gorm:"not null;default:5"`
	IsRead      bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the InsightModel.
func (InsightModel) TableName() string {
	return "insights"
}

// ToEntity converts an InsightModel to a domain Insight entity.
func (m *InsightModel) ToEntity() *entity.Insight {
	return &entity.Insight{
		ID:          m.ID,
		ClientID:    m.ClientID,
		Type:        m.Type,
		Title:       m.Title,
		Description: m.Description,
		Impact:      entity.ImpactLevel(m.Impact),
		Priority:    m.Priority,
		IsRead:      m.IsRead,
		CreatedAt:   m.CreatedAt,
	}
}

// InsightFromEntity creates an InsightModel from a domain Insight entity.
func InsightFromEntity(i *entity.Insight) *InsightModel {
	return &InsightModel{
		ID:          i.ID,
		ClientID:    i.ClientID,
		Type:        i.Type,
		Title:       i.Title,
		Description: i.Description,
		Impact:      string(i.Impact),
		Priority:    i.Priority,
		IsRead:      i.IsRead,
		CreatedAt:   i.CreatedAt,
	}
}
