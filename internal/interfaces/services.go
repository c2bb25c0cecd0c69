package interfaces

import (
	"context"

	"github.com/bobmcallan/stockwise/internal/models"
)

// RecommendationService turns strategy selections into displayable results.
// Neither operation fails: provider problems resolve to fallback values.
type RecommendationService interface {
	// FetchRecommendations returns stocks matching the selected strategies
	FetchRecommendations(ctx context.Context, strategies []models.StrategyType) []models.Stock

	// FetchMarketSummary returns a non-empty market sentiment sentence
	FetchMarketSummary(ctx context.Context) string
}

// WatchlistService applies watchlist changes by returning updated users
type WatchlistService interface {
	// Add appends stock unless its symbol is already present
	Add(user models.User, stock models.Stock) models.User

	// Remove drops the entry for symbol, if any
	Remove(user models.User, symbol string) models.User

	// RenderChart renders the watchlist's daily change as a PNG bar chart
	RenderChart(watchlist []models.Stock) ([]byte, error)
}

// UserDirectory lists the known users shown on the admin view
type UserDirectory interface {
	List() []models.User
	Seed() models.User
}
