package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/wealth-advisor/backend/internal/domain/entity"
)

// ScenarioModel represents the scenarios table in the database. Parameters
// and results are stored as JSON documents; results may be null.
type ScenarioModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:text;not null"`
	Type       string    `gorm:"type:varchar(20);not null"`
	Parameters string    `gorm:"type:jsonb;not null"`
	Results    *string   `gorm:"type:jsonb"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for the ScenarioModel.
func (ScenarioModel) TableName() string {
	return "scenarios"
}

// ToEntity converts a ScenarioModel to a domain Scenario entity.
func (m *ScenarioModel) ToEntity() *entity.Scenario {
	parameters := map[string]any{}
	_ = json.Unmarshal([]byte(m.Parameters), &parameters)

	var results map[string]any
	if m.Results != nil {
		results = map[string]any{}
		_ = json.Unmarshal([]byte(*m.Results), &results)
	}

	return &entity.Scenario{
		ID:         m.ID,
		ClientID:   m.ClientID,
		Name:       m.Name,
		Type:       m.Type,
		Parameters: parameters,
		Results:    results,
		CreatedAt:  m.CreatedAt,
	}
}

// ScenarioFromEntity creates a ScenarioModel from a domain Scenario entity.
func ScenarioFromEntity(s *entity.Scenario) *ScenarioModel {
	parameters, _ := json.Marshal(s.Parameters)

	var results *string
	if s.Results != nil {
		raw, _ := json.Marshal(s.Results)
		str := string(raw)
		results = &str
	}

	return &ScenarioModel{
		ID:         s.ID,
		ClientID:   s.ClientID,
		Name:       s.Name,
		Type:       s.Type,
		Parameters: string(parameters),
		Results:    results,
		CreatedAt:  s.CreatedAt,
	}
}
