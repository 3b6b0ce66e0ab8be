package memstore

import (
	"context"
	"maps"

	"github.com/google/uuid"

	"github.com/wealth-advisor/backend/internal/domain/entity"
	domainerror "github.com/wealth-advisor/backend/internal/domain/error"
)

type portfolioStore struct {
	portfolios map[uuid.UUID]*entity.Portfolio
	order      []uuid.UUID
}

func newPortfolioStore() *portfolioStore {
	return &portfolioStore{portfolios: make(map[uuid.UUID]*entity.Portfolio)}
}

// clonePortfolio copies the portfolio including its allocation map so
// callers cannot mutate stored state through the returned pointer.
func clonePortfolio(p *entity.Portfolio) *entity.Portfolio {
	c := *p
	c.Allocation = maps.Clone(p.Allocation)
	return &c
}

func (s *portfolioStore) Create(_ context.Context, portfolio *entity.Portfolio) error {
	p := clonePortfolio(portfolio)
	s.portfolios[p.ID] = p
	s.order = append(s.order, p.ID)
	return nil
}

func (s *portfolioStore) FindByID(_ context.Context, id uuid.UUID) (*entity.Portfolio, error) {
	portfolio, ok := s.portfolios[id]
	if !ok {
		return nil, domainerror.ErrPortfolioNotFound
	}
	return clonePortfolio(portfolio), nil
}

func (s *portfolioStore) FindByClient(_ context.Context, clientID uuid.UUID) (*entity.Portfolio, error) {
	for _, id := range s.order {
		if s.portfolios[id].ClientID == clientID {
			return clonePortfolio(s.portfolios[id]), nil
		}
	}
	return nil, domainerror.ErrPortfolioNotFound
}

func (s *portfolioStore) Update(_ context.Context, portfolio *entity.Portfolio) error {
	if _, ok := s.portfolios[portfolio.ID]; !ok {
		return domainerror.ErrPortfolioNotFound
	}
	s.portfolios[portfolio.ID] = clonePortfolio(portfolio)
	return nil
}

func (s *portfolioStore) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := s.portfolios[id]; !ok {
		return false, nil
	}
	delete(s.portfolios, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true, nil
}
