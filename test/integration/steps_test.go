package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/wealth-advisor/backend/internal/application/usecase/action"
	"github.com/wealth-advisor/backend/internal/application/usecase/client"
	"github.com/wealth-advisor/backend/internal/application/usecase/dashboard"
	"github.com/wealth-advisor/backend/internal/application/usecase/goal"
	"github.com/wealth-advisor/backend/internal/application/usecase/insight"
	"github.com/wealth-advisor/backend/internal/application/usecase/portfolio"
	"github.com/wealth-advisor/backend/internal/application/usecase/scenario"
	"github.com/wealth-advisor/backend/internal/infra/server/router"
	"github.com/wealth-advisor/backend/internal/integration/adapters"
	"github.com/wealth-advisor/backend/internal/integration/entrypoint/controller"
	"github.com/wealth-advisor/backend/internal/integration/memstore"
)

// testContext holds per-scenario state: the running test server, the last
// response, and ids captured from created resources for use in later steps.
type testContext struct {
	server       *httptest.Server
	client       *http.Client
	response     *http.Response
	responseBody []byte

	clientID   string
	actionID   string
	goalID     string
	scenarioID string
}

// newTestServer wires the full API the same way main does, using the seeded
// in-memory storage and the unconfigured advisor so insight generation takes
// the deterministic fallback path.
func newTestServer() *httptest.Server {
	gin.SetMode(gin.TestMode)

	storage := memstore.NewStorage()
	advisor := adapters.NewGeminiService("", "gemini-2.5-flash-lite", 5*time.Second)

	healthController := controller.NewHealthController(nil)

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
	return httptest.NewServer(r.Setup("test"))
}

// InitializeScenario registers all step definitions. Each scenario gets a
// fresh server and storage so scenarios cannot leak state into each other.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.server = newTestServer()
		test.client = &http.Client{Timeout: 10 * time.Second}
		test.response = nil
		test.responseBody = nil
		test.clientID = ""
		test.actionID = ""
		test.goalID = ""
		test.scenarioID = ""
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if test.server != nil {
			test.server.Close()
		}
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Resource setup steps
	ctx.Given(`^a client exists named "([^"]*)"$`, test.aClientExistsNamed)
	ctx.Given(`^an action exists titled "([^"]*)"$`, test.anActionExistsTitled)
	ctx.Given(`^a goal exists for the client named "([^"]*)"$`, test.aGoalExistsForTheClientNamed)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.Step(`^I remember the created scenario id$`, test.iRememberTheCreatedScenarioID)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response should not contain "([^"]*)"$`, test.theResponseShouldNotContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response list should have (\d+) items$`, test.theResponseListShouldHaveItems)
}

// expandPlaceholders substitutes captured resource ids into endpoints and
// request bodies.
func (t *testContext) expandPlaceholders(s string) string {
	s = strings.ReplaceAll(s, "{clientId}", t.clientID)
	s = strings.ReplaceAll(s, "{actionId}", t.actionID)
	s = strings.ReplaceAll(s, "{goalId}", t.goalID)
	s = strings.ReplaceAll(s, "{scenarioId}", t.scenarioID)
	return s
}

func (t *testContext) doRequest(method, endpoint string, body io.Reader) error {
	req, err := http.NewRequest(method, t.server.URL+t.expandPlaceholders(endpoint), body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	t.response = resp
	t.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

// createResource posts a JSON body and returns the id of the created
// resource.
func (t *testContext) createResource(endpoint, body string) (string, error) {
	if err := t.doRequest(http.MethodPost, endpoint, bytes.NewBufferString(body)); err != nil {
		return "", err
	}
	if t.response.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("setup request to %s returned %d: %s", endpoint, t.response.StatusCode, string(t.responseBody))
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(t.responseBody, &created); err != nil {
		return "", fmt.Errorf("failed to parse created resource: %w", err)
	}
	if created.ID == "" {
		return "", fmt.Errorf("created resource has no id. Body: %s", string(t.responseBody))
	}
	return created.ID, nil
}

// Step implementations

func (t *testContext) theAPIServerIsRunning() error {
	if t.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func (t *testContext) aClientExistsNamed(name string) error {
	email := strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com"
	body := fmt.Sprintf(`{
		"name": %q,
		"email": %q,
		"age": 45,
		"netWorth": "1000000",
		"portfolioValue": "750000"
	}`, name, email)

	id, err := t.createResource("/api/clients", body)
	if err != nil {
		return err
	}
	t.clientID = id
	return nil
}

func (t *testContext) anActionExistsTitled(title string) error {
	body := fmt.Sprintf(`{"title": %q, "priority": "high"}`, title)

	id, err := t.createResource("/api/actions", body)
	if err != nil {
		return err
	}
	t.actionID = id
	return nil
}

func (t *testContext) aGoalExistsForTheClientNamed(name string) error {
	if t.clientID == "" {
		return fmt.Errorf("no client has been created yet")
	}
	body := fmt.Sprintf(`{
		"clientId": %q,
		"name": %q,
		"type": "retirement",
		"targetAmount": "2000000",
		"currentAmount": "500000",
		"targetDate": "2045-01-01T00:00:00Z"
	}`, t.clientID, name)

	id, err := t.createResource("/api/goals", body)
	if err != nil {
		return err
	}
	t.goalID = id
	return nil
}

func (t *testContext) iRememberTheCreatedScenarioID() error {
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(t.responseBody, &created); err != nil {
		return fmt.Errorf("failed to parse created scenario: %w", err)
	}
	if created.ID == "" {
		return fmt.Errorf("created scenario has no id. Body: %s", string(t.responseBody))
	}
	t.scenarioID = created.ID
	return nil
}

func (t *testContext) iSendARequestTo(method, endpoint string) error {
	return t.doRequest(method, endpoint, nil)
}

func (t *testContext) iSendARequestToWithBody(method, endpoint string, body *godog.DocString) error {
	return t.doRequest(method, endpoint, bytes.NewBufferString(t.expandPlaceholders(body.Content)))
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return fmt.Errorf("no response received")
	}
	if t.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, t.response.StatusCode, string(t.responseBody))
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	var js json.RawMessage
	if err := json.Unmarshal(t.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(expected string) error {
	if !strings.Contains(string(t.responseBody), expected) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(t.responseBody))
	}
	return nil
}

func (t *testContext) theResponseShouldNotContain(unexpected string) error {
	if strings.Contains(string(t.responseBody), unexpected) {
		return fmt.Errorf("response should not contain '%s'. Body: %s", unexpected, string(t.responseBody))
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expected string) error {
	var data map[string]interface{}
	if err := json.Unmarshal(t.responseBody, &data); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w", err)
	}

	value, ok := data[field]
	if !ok {
		return fmt.Errorf("field '%s' not found in response. Body: %s", field, string(t.responseBody))
	}

	actual := fmt.Sprintf("%v", value)
	expected = t.expandPlaceholders(expected)
	if actual != expected {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	var data map[string]interface{}
	if err := json.Unmarshal(t.responseBody, &data); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w", err)
	}
	if _, ok := data[field]; !ok {
		return fmt.Errorf("field '%s' not found in response. Body: %s", field, string(t.responseBody))
	}
	return nil
}

func (t *testContext) theResponseListShouldHaveItems(expected int) error {
	var items []json.RawMessage
	if err := json.Unmarshal(t.responseBody, &items); err != nil {
		return fmt.Errorf("response is not a JSON array: %w", err)
	}
	if len(items) != expected {
		return fmt.Errorf("expected %d items, got %d. Body: %s", expected, len(items), string(t.responseBody))
	}
	return nil
}
