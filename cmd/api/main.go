// Package main is the entry point for the Wealth Advisor API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/wealth-advisor/backend/config"
	"github.com/wealth-advisor/backend/internal/application/adapter"
	"github.com/wealth-advisor/backend/internal/application/usecase/action"
	"github.com/wealth-advisor/backend/internal/application/usecase/client"
	"github.com/wealth-advisor/backend/internal/application/usecase/dashboard"
	"github.com/wealth-advisor/backend/internal/application/usecase/goal"
	"github.com/wealth-advisor/backend/internal/application/usecase/insight"
	"github.com/wealth-advisor/backend/internal/application/usecase/portfolio"
	"github.com/wealth-advisor/backend/internal/application/usecase/scenario"
	"github.com/wealth-advisor/backend/internal/infra/db"
	"github.com/wealth-advisor/backend/internal/infra/server/router"
	"github.com/wealth-advisor/backend/internal/integration/adapters"
	"github.com/wealth-advisor/backend/internal/integration/entrypoint/controller"
	"github.com/wealth-advisor/backend/internal/integration/memstore"
	"github.com/wealth-advisor/backend/internal/integration/persistence"
	"github.com/wealth-advisor/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Wealth Advisor API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Select the storage backend: PostgreSQL when a database URL is
	// configured, the seeded in-memory store otherwise.
	var storage *adapter.Storage
	var dbHealthChecker func() bool

	if cfg.Database.URL != "" {
		database, err := db.NewPostgresConnection(&cfg.Database)
		if err != nil {
			slog.Error("Database connection failed", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()

		if err := database.AutoMigrate(
			&model.ClientModel{},
			&model.GoalModel{},
			&model.PortfolioModel{},
			&model.InsightModel{},
			&model.ScenarioModel{},
			&model.ActionModel{},
		); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		storage = persistence.NewStorage(database.DB())
		dbHealthChecker = database.HealthCheck
	} else {
		slog.Info("No database URL configured, using seeded in-memory storage")
		storage = memstore.NewStorage()
	}

	// Advisor provider; falls back to deterministic content when no API
	// key is configured.
	advisor := adapters.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.Model, cfg.AI.Timeout)
	if !advisor.IsAvailable() {
		slog.Warn("Gemini API key not configured, advisory text uses fallback content")
	}

	// Controllers
	healthController := controller.NewHealthController(dbHealthChecker)

	clientController := controller.NewClientController(
		client.NewListClientsUseCase(storage.Clients),
		client.NewGetClientUseCase(storage.Clients),
		client.NewRecentClientsUseCase(storage.Clients),
		client.NewCreateClientUseCase(storage.Clients),
		client.NewUpdateClientUseCase(storage.Clients),
		client.NewDeleteClientUseCase(storage.Clients),
	)

	goalController := controller.NewGoalController(
		goal.NewListGoalsUseCase(storage.Goals),
		goal.NewCreateGoalUseCase(storage.Goals),
		goal.NewUpdateGoalUseCase(storage.Goals),
		goal.NewDeleteGoalUseCase(storage.Goals),
	)

	portfolioController := controller.NewPortfolioController(
		portfolio.NewGetPortfolioUseCase(storage.Portfolios),
	)

	insightController := controller.NewInsightController(
		insight.NewListInsightsUseCase(storage.Insights),
		insight.NewGenerateInsightsUseCase(storage.Clients, storage.Insights, advisor),
		insight.NewDeleteInsightUseCase(storage.Insights),
	)

	scenarioController := controller.NewScenarioController(
		scenario.NewListScenariosUseCase(storage.Scenarios),
		scenario.NewCreateScenarioUseCase(storage.Scenarios),
		scenario.NewUpdateScenarioUseCase(storage.Scenarios),
		scenario.NewDeleteScenarioUseCase(storage.Scenarios),
		scenario.NewAnalyzeRetirementUseCase(advisor),
		scenario.NewMortgageQuoteUseCase(),
		scenario.NewGrowthComparisonUseCase(),
	)

	actionController := controller.NewActionController(
		action.NewListActionsUseCase(storage.Actions),
		action.NewCreateActionUseCase(storage.Actions),
		action.NewUpdateActionUseCase(storage.Actions),
		action.NewToggleActionUseCase(storage.Actions),
		action.NewDeleteActionUseCase(storage.Actions),
	)

	dashboardController := controller.NewDashboardController(
		dashboard.NewGetMetricsUseCase(storage.Dashboard),
		dashboard.NewGetPortfolioChartUseCase(storage.Dashboard),
	)

	// Setup router
	r := router.NewRouter(
		healthController,
		clientController,
		goalController,
		portfolioController,
		insightController,
		scenarioController,
		actionController,
		dashboardController,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited")
}
