// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/wealth-advisor/backend/internal/application/adapter"
	"github.com/wealth-advisor/backend/internal/domain/entity"
)

// DefaultProviderTimeout bounds a provider call when no timeout is
// configured. Callers fall back to deterministic content on expiry, so the
// deadline caps API latency rather than failing the request.
const DefaultProviderTimeout = 30 * time.Second

// GeminiService implements the AdvisorService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
	timeout   time.Duration
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey, modelName string, timeout time.Duration) *GeminiService {
	if timeout <= 0 {
		timeout = DefaultProviderTimeout
	}
	return &GeminiService{
		apiKey:    apiKey,
		modelName: modelName,
		timeout:   timeout,
	}
}

// IsAvailable checks if the Gemini service is properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Timeout reports the deadline applied to each provider call.
func (s *GeminiService) Timeout() time.Duration {
	return s.timeout
}

// GenerateInsights asks the model for ranked advisory insights for one
// client profile.
func (s *GeminiService) GenerateInsights(ctx context.Context, profile adapter.ClientProfile) ([]*adapter.InsightDraft, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	prompt := s.buildInsightPrompt(profile)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	drafts, err := s.parseInsightResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return drafts, nil
}

// RecommendRetirement asks the model for recommendations on a retirement
// scenario whose balance has already been projected.
func (s *GeminiService) RecommendRetirement(ctx context.Context, params adapter.RetirementParams, projectedBalance float64) ([]string, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	prompt := s.buildRetirementPrompt(params, projectedBalance)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	recommendations, err := s.parseRecommendationResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return recommendations, nil
}

// buildInsightPrompt creates the insight generation prompt.
func (s *GeminiService) buildInsightPrompt(profile adapter.ClientProfile) string {
	var sb strings.Builder

	sb.WriteString("You are a financial advisor AI assistant. Generate 3 actionable insights for this wealth management client:\n\n")
	sb.WriteString(fmt.Sprintf("- Name: %s\n", profile.Name))
	sb.WriteString(fmt.Sprintf("- Age: %d\n", profile.Age))
	sb.WriteString(fmt.Sprintf("- Net Worth: $%s\n", profile.NetWorth.StringFixed(0)))
	sb.WriteString(fmt.Sprintf("- Portfolio Value: $%s\n", profile.PortfolioValue.StringFixed(0)))
	sb.WriteString(fmt.Sprintf("- Risk Profile: %s\n", profile.RiskProfile))

	sb.WriteString(`
Respond with a JSON array of exactly 3 insights. Each insight must have:
{
  "type": "opportunity" | "risk" | "action",
  "title": "short title",
  "description": "one or two sentences of concrete, personalized advice",
  "impact": "High" | "Medium" | "Low",
  "priority": 1-5 (1 is most urgent)
}

RESPONSE FORMAT: Return only the JSON array, with no additional text.
`)

	return sb.String()
}

// buildRetirementPrompt creates the retirement recommendation prompt.
func (s *GeminiService) buildRetirementPrompt(params adapter.RetirementParams, projectedBalance float64) string {
	var sb strings.Builder

	sb.WriteString("You are a financial advisor AI assistant. A client's retirement scenario has been projected:\n\n")
	sb.WriteString(fmt.Sprintf("- Current Age: %d\n", params.CurrentAge))
	sb.WriteString(fmt.Sprintf("- Retirement Age: %d\n", params.RetirementAge))
	sb.WriteString(fmt.Sprintf("- Current Savings: $%.0f\n", params.CurrentSavings))
	sb.WriteString(fmt.Sprintf("- Monthly Savings: $%.0f\n", params.MonthlySavings))
	sb.WriteString(fmt.Sprintf("- Expected Annual Return: %.1f%%\n", params.ExpectedReturn))
	sb.WriteString(fmt.Sprintf("- Projected Balance at Retirement: $%.0f\n", projectedBalance))

	sb.WriteString(`
Respond with a JSON array of exactly 3 short recommendation strings the
advisor can relay to the client.

RESPONSE FORMAT: Return only the JSON array, with no additional text.
`)

	return sb.String()
}

// geminiInsight represents one raw insight in the model response.
type geminiInsight struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
	Priority    int    `json:"priority"`
}

// responseText extracts and cleans the text content of a model response.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}
	if textContent == "" {
		return "", fmt.Errorf("no text content in response")
	}

	// Strip markdown code fences if present.
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	return strings.TrimSpace(textContent), nil
}

// parseInsightResponse parses the Gemini response into insight drafts.
func (s *GeminiService) parseInsightResponse(resp *genai.GenerateContentResponse) ([]*adapter.InsightDraft, error) {
	textContent, err := responseText(resp)
	if err != nil {
		return nil, err
	}

	var raw []geminiInsight
	if err := json.Unmarshal([]byte(textContent), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	drafts := make([]*adapter.InsightDraft, 0, len(raw))
	for _, in := range raw {
		draft := &adapter.InsightDraft{
			Type:        in.Type,
			Title:       in.Title,
			Description: in.Description,
			Impact:      entity.ImpactLevel(in.Impact),
			Priority:    in.Priority,
		}

		switch draft.Impact {
		case entity.ImpactHigh, entity.ImpactMedium, entity.ImpactLow:
			// Valid
		default:
			draft.Impact = entity.ImpactMedium
		}

		if draft.Priority < 1 || draft.Priority > 5 {
			draft.Priority = entity.DefaultInsightPriority
		}

		drafts = append(drafts, draft)
	}
	return drafts, nil
}

// parseRecommendationResponse parses the Gemini response into plain strings.
func (s *GeminiService) parseRecommendationResponse(resp *genai.GenerateContentResponse) ([]string, error) {
	textContent, err := responseText(resp)
	if err != nil {
		return nil, err
	}

	var recommendations []string
	if err := json.Unmarshal([]byte(textContent), &recommendations); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}
	return recommendations, nil
}
