package memstore

import (
	"context"
	"maps"
	"sort"

	"github.com/google/uuid"

	"github.com/wealth-advisor/backend/internal/domain/entity"
	domainerror "github.com/wealth-advisor/backend/internal/domain/error"
)

type scenarioStore struct {
	scenarios map[uuid.UUID]*entity.Scenario
	order     []uuid.UUID
}

func newScenarioStore() *scenarioStore {
	return &scenarioStore{scenarios: make(map[uuid.UUID]*entity.Scenario)}
}

func cloneScenario(s *entity.Scenario) *entity.Scenario {
	c := *s
	c.Parameters = maps.Clone(s.Parameters)
	c.Results = maps.Clone(s.Results)
	return &c
}

func (s *scenarioStore) Create(_ context.Context, scenario *entity.Scenario) error {
	sc := cloneScenario(scenario)
	s.scenarios[sc.ID] = sc
	s.order = append(s.order, sc.ID)
	return nil
}

func (s *scenarioStore) FindByID(_ context.Context, id uuid.UUID) (*entity.Scenario, error) {
	scenario, ok := s.scenarios[id]
	if !ok {
		return nil, domainerror.ErrScenarioNotFound
	}
	return cloneScenario(scenario), nil
}

func (s *scenarioStore) FindByClient(_ context.Context, clientID uuid.UUID) ([]*entity.Scenario, error) {
	scenarios := make([]*entity.Scenario, 0)
	for _, id := range s.order {
		if s.scenarios[id].ClientID == clientID {
			scenarios = append(scenarios, cloneScenario(s.scenarios[id]))
		}
	}
	// Newest first, matching the relational backend.
	sort.SliceStable(scenarios, func(i, j int) bool {
		return scenarios[i].CreatedAt.After(scenarios[j].CreatedAt)
	})
	return scenarios, nil
}

func (s *scenarioStore) Update(_ context.Context, scenario *entity.Scenario) error {
	if _, ok := s.scenarios[scenario.ID]; !ok {
		return domainerror.ErrScenarioNotFound
	}
	s.scenarios[scenario.ID] = cloneScenario(scenario)
	return nil
}

func (s *scenarioStore) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := s.scenarios[id]; !ok {
		return false, nil
	}
	delete(s.scenarios, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true, nil
}
