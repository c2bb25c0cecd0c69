package recommend

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/bobmcallan/stockwise/internal/models"
)

type mockGeminiClient struct {
	text       string
	err        error
	lastPrompt string
	lastSchema *genai.Schema
}

func (m *mockGeminiClient) GenerateContent(_ context.Context, prompt string) (string, error) {
	m.lastPrompt = prompt
	return m.text, m.err
}

func (m *mockGeminiClient) GenerateJSON(_ context.Context, prompt string, schema *genai.Schema) (string, error) {
	m.lastPrompt = prompt
	m.lastSchema = schema
	return m.text, m.err
}

const validPayload = `[
  {"symbol":"AMD","name":"Advanced Micro Devices","price":180.5,"change":2.5,"changePercent":1.4,"volume":"40M","market":"US","strategyMatch":["Large Trading Volume"],"aiReasoning":"Volume surge."},
  {"symbol":"2454.TW","name":"MediaTek","price":1100,"market":"TW","aiReasoning":"Bounce off MA."}
]`

func TestGeminiProvider_GetStocks_PromptAndSchema(t *testing.T) {
	client := &mockGeminiClient{text: validPayload}
	p := NewGeminiProvider(client)

	stocks, err := p.GetStocks(context.Background(), []models.StrategyType{models.StrategyRSIDivergence, models.StrategyVolumeSpike})
	require.NoError(t, err)
	require.Len(t, stocks, 2)

	assert.Contains(t, client.lastPrompt, "RSI Divergence, Large Trading Volume")
	assert.Contains(t, client.lastPrompt, "5 fictional")

	require.NotNil(t, client.lastSchema)
	assert.Equal(t, genai.TypeArray, client.lastSchema.Type)
	assert.ElementsMatch(t, []string{"symbol", "name", "price", "market", "aiReasoning"}, client.lastSchema.Items.Required)
	assert.Equal(t, []string{"US", "TW"}, client.lastSchema.Items.Properties["market"].Enum)

	assert.Equal(t, "AMD", stocks[0].Symbol)
	assert.Equal(t, []string{"Large Trading Volume"}, stocks[0].StrategyMatch)
	assert.Equal(t, models.MarketTW, stocks[1].Market)
	assert.Empty(t, stocks[1].Volume)
}

func TestGeminiProvider_GetStocks_RequestFailed(t *testing.T) {
	p := NewGeminiProvider(&mockGeminiClient{err: errors.New("503")})

	_, err := p.GetStocks(context.Background(), []models.StrategyType{models.StrategyMASupport})
	assert.ErrorIs(t, err, ErrProviderRequestFailed)
}

func TestGeminiProvider_NilClientIsUnavailable(t *testing.T) {
	p := NewGeminiProvider(nil)

	_, err := p.GetStocks(context.Background(), []models.StrategyType{models.StrategyMASupport})
	assert.ErrorIs(t, err, ErrProviderUnavailable)

	_, err = p.GetSummary(context.Background())
	assert.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestGeminiProvider_GetSummary(t *testing.T) {
	client := &mockGeminiClient{text: "  Tech leads.  "}
	p := NewGeminiProvider(client)

	text, err := p.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Tech leads.", text)
	assert.Contains(t, client.lastPrompt, "Taiwan")

	_, err = NewGeminiProvider(&mockGeminiClient{text: " "}).GetSummary(context.Background())
	assert.ErrorIs(t, err, ErrResponseSchemaInvalid)
}

func TestNullProvider(t *testing.T) {
	_, err := NullProvider{}.GetStocks(context.Background(), nil)
	assert.ErrorIs(t, err, ErrProviderUnavailable)

	_, err = NullProvider{}.GetSummary(context.Background())
	assert.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestStripCodeFences(t *testing.T) {
	tests := map[string]string{
		"```json\n[1]\n```": "[1]",
		"```\n[1]\n```":     "[1]",
		"  [1]  ":           "[1]",
		"```json[]```":      "[]",
	}
	for in, want := range tests {
		assert.Equal(t, want, stripCodeFences(in), "input %q", in)
	}
}

func TestParseStocksResponse_Fenced(t *testing.T) {
	stocks, err := parseStocksResponse("```json\n" + validPayload + "\n```")
	require.NoError(t, err)
	assert.Len(t, stocks, 2)
}

func TestParseStocksResponse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"empty", ""},
		{"only fences", "```json\n```"},
		{"not json", "Here are some stocks: AAPL, NVDA"},
		{"object not array", `{"symbol":"AAPL"}`},
		{"null", "null"},
		{"missing symbol", `[{"name":"Apple","price":1,"market":"US","aiReasoning":"x"}]`},
		{"missing reasoning", `[{"symbol":"AAPL","name":"Apple","price":1,"market":"US"}]`},
		{"bad market", `[{"symbol":"AAPL","name":"Apple","price":1,"market":"HK","aiReasoning":"x"}]`},
		{"wrong type", `[{"symbol":"AAPL","name":"Apple","price":"cheap","market":"US","aiReasoning":"x"}]`},
		{"zero price", `[{"symbol":"AAPL","name":"Apple","price":0,"market":"US","aiReasoning":"x"}]`},
		{"missing price", `[{"symbol":"AAPL","name":"Apple","market":"US","aiReasoning":"x"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseStocksResponse(tt.payload)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrResponseSchemaInvalid)
		})
	}
}

func TestParseStocksResponse_EmptyArray(t *testing.T) {
	stocks, err := parseStocksResponse("[]")
	require.NoError(t, err)
	assert.Empty(t, stocks)
}

func TestBuildStocksPrompt_ListsLabels(t *testing.T) {
	prompt := buildStocksPrompt([]models.StrategyType{models.StrategyBollingerSqueeze})
	assert.True(t, strings.Contains(prompt, "Bollinger Band Squeeze"))
	assert.Contains(t, prompt, "JSON schema")
}

func TestPipeline_GeminiMalformedFallsBack(t *testing.T) {
	svc := NewService(NewGeminiProvider(&mockGeminiClient{text: "not json"}), nil)

	got := svc.FetchRecommendations(context.Background(), []models.StrategyType{models.StrategyMACDGoldenCross})
	require.Len(t, got, 1)
	assert.Equal(t, "TSM", got[0].Symbol)
}
