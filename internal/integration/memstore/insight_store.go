package memstore

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/wealth-advisor/backend/internal/domain/entity"
)

type insightStore struct {
	insights map[uuid.UUID]*entity.Insight
	order    []uuid.UUID
}

func newInsightStore() *insightStore {
	return &insightStore{insights: make(map[uuid.UUID]*entity.Insight)}
}

func (s *insightStore) Create(_ context.Context, insight *entity.Insight) error {
	in := *insight
	s.insights[in.ID] = &in
	s.order = append(s.order, in.ID)
	return nil
}

// sortByUrgency orders insights by ascending priority; within a priority
// tier, later insights come first.
func sortByUrgency(insights []*entity.Insight) {
	sort.SliceStable(insights, func(i, j int) bool {
		if insights[i].Priority != insights[j].Priority {
			return insights[i].Priority < insights[j].Priority
		}
		return insights[i].CreatedAt.After(insights[j].CreatedAt)
	})
}

func (s *insightStore) FindAll(_ context.Context) ([]*entity.Insight, error) {
	insights := make([]*entity.Insight, 0, len(s.order))
	for _, id := range s.order {
		in := *s.insights[id]
		insights = append(insights, &in)
	}
	sortByUrgency(insights)
	return insights, nil
}

func (s *insightStore) FindByClient(_ context.Context, clientID uuid.UUID) ([]*entity.Insight, error) {
	insights := make([]*entity.Insight, 0)
	for _, id := range s.order {
		if s.insights[id].ClientID == clientID {
			in := *s.insights[id]
			insights = append(insights, &in)
		}
	}
	sortByUrgency(insights)
	return insights, nil
}

func (s *insightStore) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := s.insights[id]; !ok {
		return false, nil
	}
	delete(s.insights, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true, nil
}
