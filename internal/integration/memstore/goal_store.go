package memstore

import (
	"context"

	"github.com/google/uuid"

	"github.com/wealth-advisor/backend/internal/domain/entity"
	domainerror "github.com/wealth-advisor/backend/internal/domain/error"
)

type goalStore struct {
	goals map[uuid.UUID]*entity.Goal
	order []uuid.UUID
}

func newGoalStore() *goalStore {
	return &goalStore{goals: make(map[uuid.UUID]*entity.Goal)}
}

func (s *goalStore) Create(_ context.Context, goal *entity.Goal) error {
	g := *goal
	s.goals[g.ID] = &g
	s.order = append(s.order, g.ID)
	return nil
}

func (s *goalStore) FindByID(_ context.Context, id uuid.UUID) (*entity.Goal, error) {
	goal, ok := s.goals[id]
	if !ok {
		return nil, domainerror.ErrGoalNotFound
	}
	g := *goal
	return &g, nil
}

func (s *goalStore) FindByClient(_ context.Context, clientID uuid.UUID) ([]*entity.Goal, error) {
	goals := make([]*entity.Goal, 0)
	for _, id := range s.order {
		if s.goals[id].ClientID == clientID {
			g := *s.goals[id]
			goals = append(goals, &g)
		}
	}
	return goals, nil
}

func (s *goalStore) Update(_ context.Context, goal *entity.Goal) error {
	if _, ok := s.goals[goal.ID]; !ok {
		return domainerror.ErrGoalNotFound
	}
	g := *goal
	s.goals[g.ID] = &g
	return nil
}

func (s *goalStore) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := s.goals[id]; !ok {
		return false, nil
	}
	delete(s.goals, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true, nil
}
