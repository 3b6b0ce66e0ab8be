// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/wealth-advisor/backend/internal/integration/entrypoint/controller"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	clientController    *controller.ClientController
	goalController      *controller.GoalController
	portfolioController *controller.PortfolioController
	insightController   *controller.InsightController
	scenarioController  *controller.ScenarioController
	actionController    *controller.ActionController
	dashboardController *controller.DashboardController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	clientController *controller.ClientController,
	goalController *controller.GoalController,
	portfolioController *controller.PortfolioController,
	insightController *controller.InsightController,
	scenarioController *controller.ScenarioController,
	actionController *controller.ActionController,
	dashboardController *controller.DashboardController,
) *Router {
	return &Router{
		healthController:    healthController,
		clientController:    clientController,
		goalController:      goalController,
		portfolioController: portfolioController,
		insightController:   insightController,
		scenarioController:  scenarioController,
		actionController:    actionController,
		dashboardController: dashboardController,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Nested client resources
// reuse the :id wildcard name; gin panics at startup when sibling routes
// disagree on it.
func (r *Router) setupAPIRoutes() {
	api := r.engine.Group("/api")
	{
		clients := api.Group("/clients")
		{
			clients.GET("", r.clientController.List)
			clients.GET("/recent", r.clientController.Recent)
			clients.POST("", r.clientController.Create)
			clients.GET("/:id", r.clientController.Get)
			clients.PATCH("/:id", r.clientController.Update)
			clients.DELETE("/:id", r.clientController.Delete)

			clients.GET("/:id/goals", r.goalController.ListByClient)
			clients.GET("/:id/portfolio", r.portfolioController.GetByClient)
			clients.GET("/:id/insights", r.insightController.ListByClient)
			clients.GET("/:id/scenarios", r.scenarioController.ListByClient)
		}

		goals := api.Group("/goals")
		{
			goals.POST("", r.goalController.Create)
			goals.PATCH("/:id", r.goalController.Update)
			goals.DELETE("/:id", r.goalController.Delete)
		}

		insights := api.Group("/insights")
		{
			insights.GET("", r.insightController.List)
			insights.POST("/generate", r.insightController.Generate)
			insights.DELETE("/:id", r.insightController.Delete)
		}

		scenarios := api.Group("/scenarios")
		{
			scenarios.POST("", r.scenarioController.Create)
			scenarios.POST("/analyze", r.scenarioController.AnalyzeRetirement)
			scenarios.POST("/mortgage", r.scenarioController.QuoteMortgage)
			scenarios.GET("/comparison", r.scenarioController.CompareGrowth)
			scenarios.PATCH("/:id", r.scenarioController.Update)
			scenarios.DELETE("/:id", r.scenarioController.Delete)
		}

		actions := api.Group("/actions")
		{
			actions.GET("", r.actionController.List)
			actions.POST("", r.actionController.Create)
			actions.PATCH("/:id", r.actionController.Update)
			actions.PATCH("/:id/toggle", r.actionController.Toggle)
			actions.DELETE("/:id", r.actionController.Delete)
		}

		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("/metrics", r.dashboardController.Metrics)
			dashboard.GET("/portfolio-chart", r.dashboardController.PortfolioChart)
		}
	}
}
