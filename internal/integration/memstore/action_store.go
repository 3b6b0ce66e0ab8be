package memstore

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/wealth-advisor/backend/internal/domain/entity"
	domainerror "github.com/wealth-advisor/backend/internal/domain/error"
)

type actionStore struct {
	actions map[uuid.UUID]*entity.Action
	order   []uuid.UUID
}

func newActionStore() *actionStore {
	return &actionStore{actions: make(map[uuid.UUID]*entity.Action)}
}

func (s *actionStore) Create(_ context.Context, action *entity.Action) error {
	a := *action
	s.actions[a.ID] = &a
	s.order = append(s.order, a.ID)
	return nil
}

func (s *actionStore) FindByID(_ context.Context, id uuid.UUID) (*entity.Action, error) {
	action, ok := s.actions[id]
	if !ok {
		return nil, domainerror.ErrActionNotFound
	}
	a := *action
	return &a, nil
}

func (s *actionStore) FindActive(_ context.Context) ([]*entity.Action, error) {
	actions := make([]*entity.Action, 0)
	for _, id := range s.order {
		if !s.actions[id].IsCompleted {
			a := *s.actions[id]
			actions = append(actions, &a)
		}
	}
	sort.SliceStable(actions, func(i, j int) bool {
		return actions[i].CreatedAt.After(actions[j].CreatedAt)
	})
	return actions, nil
}

func (s *actionStore) Update(_ context.Context, action *entity.Action) error {
	if _, ok := s.actions[action.ID]; !ok {
		return domainerror.ErrActionNotFound
	}
	a := *action
	s.actions[a.ID] = &a
	return nil
}

func (s *actionStore) Toggle(_ context.Context, id uuid.UUID) (*entity.Action, error) {
	action, ok := s.actions[id]
	if !ok {
		return nil, domainerror.ErrActionNotFound
	}
	action.IsCompleted = !action.IsCompleted
	a := *action
	return &a, nil
}

func (s *actionStore) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := s.actions[id]; !ok {
		return false, nil
	}
	delete(s.actions, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true, nil
}
