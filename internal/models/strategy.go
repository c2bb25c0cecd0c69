package models

import "fmt"

// StrategyType is one of the closed set of technical-analysis strategies.
// The string value is the stable label used as a UI key and as the token
// matched against Stock.StrategyMatch.
type StrategyType string

const (
	StrategyMACDGoldenCross  StrategyType = "MACD Golden Cross"
	StrategyRSIDivergence    StrategyType = "RSI Divergence"
	StrategyVolumeSpike      StrategyType = "Large Trading Volume"
	StrategyBollingerSqueeze StrategyType = "Bollinger Band Squeeze"
	StrategyMASupport        StrategyType = "Moving Average Support"
)

// StrategyOption describes a selectable strategy in the catalog.
type StrategyOption struct {
	ID          string       `json:"id"`
	Key         string       `json:"key"`
	Label       string       `json:"label"`
	Description string       `json:"description"`
	Type        StrategyType `json:"type"`
}

var strategyCatalog = []StrategyOption{
	{
		ID:          "macd",
		Key:         "MACD_GOLDEN_CROSS",
		Label:       string(StrategyMACDGoldenCross),
		Description: "When the MACD line crosses above the signal line, indicating bullish momentum.",
		Type:        StrategyMACDGoldenCross,
	},
	{
		ID:          "rsi",
		Key:         "RSI_DIVERGENCE",
		Label:       string(StrategyRSIDivergence),
		Description: "When price makes a new low but RSI makes a higher low, suggesting a potential reversal.",
		Type:        StrategyRSIDivergence,
	},
	{
		ID:          "volume",
		Key:         "VOLUME_SPIKE",
		Label:       string(StrategyVolumeSpike),
		Description: "Abnormal increase in trading volume relative to the average.",
		Type:        StrategyVolumeSpike,
	},
	{
		ID:          "bollinger",
		Key:         "BOLLINGER_SQUEEZE",
		Label:       string(StrategyBollingerSqueeze),
		Description: "Periods of low volatility that are often followed by significant price moves.",
		Type:        StrategyBollingerSqueeze,
	},
	{
		ID:          "ma",
		Key:         "MA_SUPPORT",
		Label:       string(StrategyMASupport),
		Description: "Price testing key moving averages (50-day or 200-day) which often act as support.",
		Type:        StrategyMASupport,
	},
}

// StrategyCatalog returns the selectable strategies in display order.
func StrategyCatalog() []StrategyOption {
	out := make([]StrategyOption, len(strategyCatalog))
	copy(out, strategyCatalog)
	return out
}

// Label returns the display label of the strategy.
func (s StrategyType) Label() string {
	return string(s)
}

// Valid reports whether s belongs to the catalog.
func (s StrategyType) Valid() bool {
	for _, opt := range strategyCatalog {
		if opt.Type == s {
			return true
		}
	}
	return false
}

// ParseStrategyType resolves a catalog key ("VOLUME_SPIKE"), id ("volume")
// or label ("Large Trading Volume") to its StrategyType.
func ParseStrategyType(v string) (StrategyType, error) {
	for _, opt := range strategyCatalog {
		if v == opt.Key || v == opt.ID || v == opt.Label {
			return opt.Type, nil
		}
	}
	return "", fmt.Errorf("unknown strategy %q", v)
}

// StrategyLabels converts strategies to their labels, preserving order.
func StrategyLabels(strategies []StrategyType) []string {
	labels := make([]string, len(strategies))
	for i, s := range strategies {
		labels[i] = s.Label()
	}
	return labels
}
