package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"google.golang.org/genai"

	"github.com/bobmcallan/stockwise/internal/interfaces"
	"github.com/bobmcallan/stockwise/internal/models"
)

// RecommendationCount is the number of stocks requested from the provider.
const RecommendationCount = 5

const summaryPrompt = "Write a very brief (2 sentences) daily market sentiment summary for US and Taiwan markets focusing on tech and semi-conductors."

// stockValidate checks decoded provider stocks against the required fields.
var stockValidate = validator.New()

// NullProvider is used when no credential is configured. Every call reports
// ErrProviderUnavailable so the pipelines take their fallback path.
type NullProvider struct{}

// GetStocks always fails with ErrProviderUnavailable.
func (NullProvider) GetStocks(context.Context, []models.StrategyType) ([]models.Stock, error) {
	return nil, ErrProviderUnavailable
}

// GetSummary always fails with ErrProviderUnavailable.
func (NullProvider) GetSummary(context.Context) (string, error) {
	return "", ErrProviderUnavailable
}

// GeminiProvider asks Gemini for strategy matches and market summaries.
type GeminiProvider struct {
	client interfaces.GeminiClient
}

// NewGeminiProvider wraps a Gemini client. A nil client yields a provider that
// behaves like NullProvider.
func NewGeminiProvider(client interfaces.GeminiClient) *GeminiProvider {
	return &GeminiProvider{client: client}
}

// GetStocks requests RecommendationCount stocks for the strategies.
func (p *GeminiProvider) GetStocks(ctx context.Context, strategies []models.StrategyType) ([]models.Stock, error) {
	if p.client == nil {
		return nil, ErrProviderUnavailable
	}

	text, err := p.client.GenerateJSON(ctx, buildStocksPrompt(strategies), stockListSchema())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderRequestFailed, err)
	}

	return parseStocksResponse(text)
}

// GetSummary requests a two-sentence market sentiment summary.
func (p *GeminiProvider) GetSummary(ctx context.Context) (string, error) {
	if p.client == nil {
		return "", ErrProviderUnavailable
	}

	text, err := p.client.GenerateContent(ctx, summaryPrompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProviderRequestFailed, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: empty summary", ErrResponseSchemaInvalid)
	}
	return text, nil
}

// buildStocksPrompt creates the recommendation prompt for the active strategy labels.
func buildStocksPrompt(strategies []models.StrategyType) string {
	return fmt.Sprintf(`Act as a financial technical analyst.
Generate a JSON list of %d fictional or representative stock examples (mix of US and Taiwan market) that would theoretically match the following technical strategies right now: %s.
For each stock, provide a realistic price, change, volume, and a brief "aiReasoning" explaining why it fits the strategy.

The response must strictly follow the JSON schema.`,
		RecommendationCount,
		strings.Join(models.StrategyLabels(strategies), ", "),
	)
}

// stockListSchema describes the JSON array of stocks the provider must return.
func stockListSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"symbol":        {Type: genai.TypeString},
				"name":          {Type: genai.TypeString},
				"price":         {Type: genai.TypeNumber},
				"change":        {Type: genai.TypeNumber},
				"changePercent": {Type: genai.TypeNumber},
				"volume":        {Type: genai.TypeString},
				"market":        {Type: genai.TypeString, Enum: []string{string(models.MarketUS), string(models.MarketTW)}},
				"strategyMatch": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
				"aiReasoning":   {Type: genai.TypeString},
			},
			Required: []string{"symbol", "name", "price", "market", "aiReasoning"},
		},
	}
}

// stripCodeFences removes markdown code fences a model may wrap around JSON.
func stripCodeFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// parseStocksResponse decodes and validates the provider's JSON array.
func parseStocksResponse(text string) ([]models.Stock, error) {
	text = stripCodeFences(text)
	if text == "" {
		return nil, fmt.Errorf("%w: empty response", ErrResponseSchemaInvalid)
	}

	var stocks []models.Stock
	if err := json.Unmarshal([]byte(text), &stocks); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResponseSchemaInvalid, err)
	}
	if stocks == nil {
		return nil, fmt.Errorf("%w: null payload", ErrResponseSchemaInvalid)
	}

	for i := range stocks {
		if err := stockValidate.Struct(stocks[i]); err != nil {
			return nil, fmt.Errorf("%w: stock %d: %v", ErrResponseSchemaInvalid, i, err)
		}
	}

	return stocks, nil
}

var (
	_ interfaces.RecommendationProvider = NullProvider{}
	_ interfaces.RecommendationProvider = (*GeminiProvider)(nil)
)
