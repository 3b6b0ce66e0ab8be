package entity

import (
	"time"

	"github.com/google/uuid"
)

// Scenario represents a saved what-if analysis for a client. Parameters and
// results are free-form JSON bags; results stay nil until an analysis has
// been attached.
type Scenario struct {
	ID         uuid.UUID
	ClientID   uuid.UUID
	Name       string
	Type       string // retirement, home, education, ...
	Parameters map[string]any
	Results    map[string]any
	CreatedAt  time.Time
}

// NewScenario creates a new Scenario entity.
func NewScenario(
	clientID uuid.UUID,
	name, scenarioType string,
	parameters, results map[string]any,
) *Scenario {
	return &Scenario{
		ID:         uuid.New(),
		ClientID:   clientID,
		Name:       name,
		Type:       scenarioType,
		Parameters: parameters,
		Results:    results,
		CreatedAt:  time.Now().UTC(),
	}
}
