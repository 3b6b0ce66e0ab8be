package client

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wealth-advisor/backend/internal/domain/entity"
	domainerror "github.com/wealth-advisor/backend/internal/domain/error"
	"github.com/wealth-advisor/backend/internal/integration/memstore"
)

func TestCreateClientUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("applies defaults for health score and risk profile", func(t *testing.T) {
		storage := memstore.NewStorage()
		uc := NewCreateClientUseCase(storage.Clients)

		output, err := uc.Execute(ctx, CreateClientInput{
			Name:           "New Client",
			Email:          "new@example.com",
			Age:            50,
			NetWorth:       decimal.NewFromInt(1_000_000),
			PortfolioValue: decimal.NewFromInt(600_000),
		})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if output.Client.HealthScore != entity.DefaultHealthScore {
			t.Errorf("expected default health score %d, got %d",
				entity.DefaultHealthScore, output.Client.HealthScore)
		}
		if output.Client.RiskProfile != entity.RiskProfileModerate {
			t.Errorf("expected default risk profile moderate, got %s", output.Client.RiskProfile)
		}

		stored, err := storage.Clients.FindByID(ctx, output.Client.ID)
		if err != nil {
			t.Fatalf("expected the client to be persisted: %v", err)
		}
		if stored.Name != "New Client" {
			t.Errorf("expected persisted name, got %q", stored.Name)
		}
	})

	t.Run("honors explicit health score and risk profile", func(t *testing.T) {
		storage := memstore.NewStorage()
		uc := NewCreateClientUseCase(storage.Clients)

		healthScore := 61
		profile := entity.RiskProfileAggressive
		output, err := uc.Execute(ctx, CreateClientInput{
			Name:           "Explicit Client",
			Email:          "explicit@example.com",
			Age:            29,
			NetWorth:       decimal.NewFromInt(400_000),
			PortfolioValue: decimal.NewFromInt(250_000),
			HealthScore:    &healthScore,
			RiskProfile:    &profile,
		})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if output.Client.HealthScore != 61 {
			t.Errorf("expected health score 61, got %d", output.Client.HealthScore)
		}
		if output.Client.RiskProfile != entity.RiskProfileAggressive {
			t.Errorf("expected aggressive risk profile, got %s", output.Client.RiskProfile)
		}
	})

	t.Run("rejects an unknown risk profile", func(t *testing.T) {
		storage := memstore.NewStorage()
		uc := NewCreateClientUseCase(storage.Clients)

		profile := entity.RiskProfile("reckless")
		_, err := uc.Execute(ctx, CreateClientInput{
			Name:           "Bad Profile",
			Email:          "bad@example.com",
			Age:            35,
			NetWorth:       decimal.NewFromInt(100),
			PortfolioValue: decimal.NewFromInt(100),
			RiskProfile:    &profile,
		})
		if !errors.Is(err, domainerror.ErrInvalidRiskProfile) {
			t.Errorf("expected ErrInvalidRiskProfile, got %v", err)
		}
	})
}

func TestUpdateClientUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("merges only the provided fields", func(t *testing.T) {
		storage := memstore.NewStorage()
		clients, err := storage.Clients.FindAll(ctx)
		if err != nil || len(clients) == 0 {
			t.Fatalf("expected seeded clients, got err=%v", err)
		}
		target := clients[0]
		originalEmail := target.Email

		uc := NewUpdateClientUseCase(storage.Clients)
		name := "Updated Name"
		healthScore := 50
		output, err := uc.Execute(ctx, UpdateClientInput{
			ID:          target.ID,
			Name:        &name,
			HealthScore: &healthScore,
		})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if output.Client.Name != "Updated Name" {
			t.Errorf("expected updated name, got %q", output.Client.Name)
		}
		if output.Client.HealthScore != 50 {
			t.Errorf("expected updated health score, got %d", output.Client.HealthScore)
		}
		if output.Client.Email != originalEmail {
			t.Errorf("expected untouched email %q, got %q", originalEmail, output.Client.Email)
		}
	})

	t.Run("fails for an unknown client", func(t *testing.T) {
		storage := memstore.NewStorage()
		uc := NewDeleteClientUseCase(storage.Clients)

		err := uc.Execute(ctx, DeleteClientInput{ID: uuid.New()})
		if !errors.Is(err, domainerror.ErrClientNotFound) {
			t.Errorf("expected ErrClientNotFound, got %v", err)
		}
	})
}
