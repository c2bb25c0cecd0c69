package recommend

import "github.com/bobmcallan/stockwise/internal/models"

const (
	// SummaryFallbackNoProvider is returned when no credential is configured.
	SummaryFallbackNoProvider = "Market sentiment appears neutral to bullish as tech sector leads recovery. (Mock Analysis)"

	// SummaryFallbackFailed is returned when the provider is configured but fails.
	SummaryFallbackFailed = "Market sentiment unavailable."
)

var fallbackCatalog = []models.Stock{
	{
		Symbol:        "AAPL",
		Name:          "Apple Inc.",
		Price:         175.43,
		Change:        1.25,
		ChangePercent: 0.72,
		Volume:        "54M",
		Market:        models.MarketUS,
		StrategyMatch: []string{string(models.StrategyVolumeSpike)},
		AIReasoning:   "Consistent high volume trading observed near support levels.",
	},
	{
		Symbol:        "TSM",
		Name:          "Taiwan Semiconductor",
		Price:         124.50,
		Change:        -0.80,
		ChangePercent: -0.64,
		Volume:        "12M",
		Market:        models.MarketTW,
		StrategyMatch: []string{string(models.StrategyMACDGoldenCross)},
		AIReasoning:   "Recent crossover of MACD line above signal line indicates bullish momentum.",
	},
	{
		Symbol:        "NVDA",
		Name:          "NVIDIA Corp",
		Price:         875.20,
		Change:        15.30,
		ChangePercent: 1.78,
		Volume:        "45M",
		Market:        models.MarketUS,
		StrategyMatch: []string{string(models.StrategyRSIDivergence), string(models.StrategyVolumeSpike)},
		AIReasoning:   "Price made lower low while RSI made higher low, suggesting reversal.",
	},
	{
		Symbol:        "2330.TW",
		Name:          "TSMC",
		Price:         780.00,
		Change:        12.00,
		ChangePercent: 1.56,
		Volume:        "32M",
		Market:        models.MarketTW,
		StrategyMatch: []string{string(models.StrategyMASupport)},
		AIReasoning:   "Bounced off the 50-day moving average strongly.",
	},
}

// FallbackCatalog returns a copy of the local sample catalog.
func FallbackCatalog() []models.Stock {
	out := make([]models.Stock, len(fallbackCatalog))
	for i, s := range fallbackCatalog {
		out[i] = s.Clone()
	}
	return out
}

// FilterFallback returns the catalog entries matching any of the strategies,
// in catalog order. It never fails; an empty selection yields an empty list.
func FilterFallback(strategies []models.StrategyType) []models.Stock {
	labels := models.StrategyLabels(strategies)
	out := make([]models.Stock, 0, len(fallbackCatalog))
	for _, s := range fallbackCatalog {
		if s.MatchesAny(labels) {
			out = append(out, s.Clone())
		}
	}
	return out
}
