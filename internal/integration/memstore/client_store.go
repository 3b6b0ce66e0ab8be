// Package memstore implements the repository interfaces over plain maps.
// It backs the server when no database URL is configured, pre-seeded with
// a demo roster so the API is usable out of the box.
//
// The store does no locking. It exists for demos and tests, both of which
// drive it from a single goroutine at a time; concurrent mutation is not
// supported.
package memstore

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/wealth-advisor/backend/internal/domain/entity"
	domainerror "github.com/wealth-advisor/backend/internal/domain/error"
)

// clientStore keeps clients in a map plus an insertion-order index so
// listings are stable across calls.
type clientStore struct {
	clients map[uuid.UUID]*entity.Client
	order   []uuid.UUID
}

func newClientStore() *clientStore {
	return &clientStore{clients: make(map[uuid.UUID]*entity.Client)}
}

func (s *clientStore) Create(_ context.Context, client *entity.Client) error {
	c := *client
	s.clients[c.ID] = &c
	s.order = append(s.order, c.ID)
	return nil
}

func (s *clientStore) FindByID(_ context.Context, id uuid.UUID) (*entity.Client, error) {
	client, ok := s.clients[id]
	if !ok {
		return nil, domainerror.ErrClientNotFound
	}
	c := *client
	return &c, nil
}

func (s *clientStore) FindAll(_ context.Context) ([]*entity.Client, error) {
	clients := make([]*entity.Client, 0, len(s.order))
	for _, id := range s.order {
		c := *s.clients[id]
		clients = append(clients, &c)
	}
	return clients, nil
}

func (s *clientStore) FindRecent(ctx context.Context, limit int) ([]*entity.Client, error) {
	clients, err := s.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	// Stable sort keeps insertion order between clients contacted at the
	// same instant.
	sort.SliceStable(clients, func(i, j int) bool {
		return clients[i].LastContact.After(clients[j].LastContact)
	})
	if limit < len(clients) {
		clients = clients[:limit]
	}
	return clients, nil
}

func (s *clientStore) Update(_ context.Context, client *entity.Client) error {
	if _, ok := s.clients[client.ID]; !ok {
		return domainerror.ErrClientNotFound
	}
	c := *client
	s.clients[c.ID] = &c
	return nil
}

func (s *clientStore) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := s.clients[id]; !ok {
		return false, nil
	}
	delete(s.clients, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true, nil
}
