package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/church-ledger/backend/internal/application/adapter"
)

const defaultGeminiModel = "gemini-2.5-flash-lite"

// GeminiSuggester implements adapter.CategorySuggester using Google Gemini.
type GeminiSuggester struct {
	apiKey    string
	modelName string
}

// NewGeminiSuggester creates a new Gemini suggester. An empty key leaves it unavailable.
func NewGeminiSuggester(apiKey string) *GeminiSuggester {
	return &GeminiSuggester{
		apiKey:    apiKey,
		modelName: defaultGeminiModel,
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiSuggester) IsAvailable() bool {
	return s.apiKey != ""
}

// Suggest asks Gemini to pick one of request.Categories for the expense.
func (s *GeminiSuggester) Suggest(ctx context.Context, request adapter.CategorySuggestionRequest) (*adapter.CategorySuggestion, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.2)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(buildSuggestionPrompt(request)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	suggestion, err := parseSuggestion(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return suggestion, nil
}

func buildSuggestionPrompt(request adapter.CategorySuggestionRequest) string {
	var sb strings.Builder

	sb.WriteString(`You classify church expenses into budget categories.

Pick exactly one category from the list below. Use the category name verbatim.
You may add a short subcategory (for example "Honorarium", "Utilities", "Supplies").

CATEGORIES:
`)
	for _, c := range request.Categories {
		sb.WriteString("- " + c + "\n")
	}

	sb.WriteString(fmt.Sprintf("\nEXPENSE:\n- Particular: %q\n- Amount: %s\n", request.Particular, request.Amount))

	sb.WriteString(`
Respond with a single JSON object:
{
  "category": "one of the categories above",
  "subcategory": "string or empty",
  "confidence": 0.0-1.0,
  "reasoning": "one short sentence"
}

RESPONSE FORMAT: return only the JSON object, no additional text.
`)
	return sb.String()
}

type geminiSuggestion struct {
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory"`
	Confidence  float64 `json:"confidence"`
	Reasoning   string  `json:"reasoning"`
}

func parseSuggestion(resp *genai.GenerateContentResponse) (*adapter.CategorySuggestion, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}
	return decodeSuggestion(textContent)
}

// decodeSuggestion reads the model's JSON answer, tolerating markdown fences.
func decodeSuggestion(textContent string) (*adapter.CategorySuggestion, error) {
	textContent = strings.TrimSpace(textContent)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	if textContent == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	var raw geminiSuggestion
	if err := json.Unmarshal([]byte(textContent), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	confidence := raw.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	return &adapter.CategorySuggestion{
		Category:    strings.TrimSpace(raw.Category),
		Subcategory: strings.TrimSpace(raw.Subcategory),
		Confidence:  confidence,
		Reasoning:   raw.Reasoning,
	}, nil
}
