// Package interfaces defines service contracts for StockWise
package interfaces

import (
	"context"

	"google.golang.org/genai"

	"github.com/bobmcallan/stockwise/internal/models"
)

// GeminiClient provides access to Gemini API
type GeminiClient interface {
	// GenerateContent generates free-text AI content from a prompt
	GenerateContent(ctx context.Context, prompt string) (string, error)

	// GenerateJSON generates content constrained to a JSON response schema
	GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
}

// RecommendationProvider is the AI capability behind both pipelines.
// Implementations return errors freely; the pipelines own the fallback.
type RecommendationProvider interface {
	// GetStocks returns stocks that plausibly match the given strategies
	GetStocks(ctx context.Context, strategies []models.StrategyType) ([]models.Stock, error)

	// GetSummary returns a short free-text market sentiment summary
	GetSummary(ctx context.Context) (string, error)
}
