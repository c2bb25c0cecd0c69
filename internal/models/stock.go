// Package models defines data structures for StockWise
package models

import "strings"

// Market identifies the exchange region a stock trades in.
type Market string

const (
	MarketUS Market = "US"
	MarketTW Market = "TW"
)

// Valid reports whether m is one of the supported markets.
func (m Market) Valid() bool {
	return m == MarketUS || m == MarketTW
}

// Stock is a single recommendation or watchlist entry.
// Values are treated as immutable once produced.
//
// validator's required on Price means non-zero: a quote of 0 is rejected
// the same way as a missing one.
type Stock struct {
	Symbol        string   `json:"symbol" validate:"required"`
	Name          string   `json:"name" validate:"required"`
	Price         float64  `json:"price" validate:"required"`
	Change        float64  `json:"change"`
	ChangePercent float64  `json:"changePercent"`
	Volume        string   `json:"volume"`                                // display string, e.g. "54M"
	Market        Market   `json:"market" validate:"required,oneof=US TW"` // US or TW
	StrategyMatch []string `json:"strategyMatch,omitempty"`               // strategy labels the stock satisfies
	AIReasoning   string   `json:"aiReasoning,omitempty" validate:"required"`
}

// ChangeConsistent reports whether ChangePercent carries the same sign as Change.
// Advisory only: provider data that violates it is still displayed.
func (s Stock) ChangeConsistent() bool {
	switch {
	case s.Change > 0:
		return s.ChangePercent > 0
	case s.Change < 0:
		return s.ChangePercent < 0
	default:
		return s.ChangePercent == 0
	}
}

// MatchesAny reports whether any of the stock's strategy matches is in labels.
func (s Stock) MatchesAny(labels []string) bool {
	for _, m := range s.StrategyMatch {
		for _, l := range labels {
			if m == l {
				return true
			}
		}
	}
	return false
}

// NormalizeSymbol upper-cases and trims a ticker symbol for comparison.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// Clone returns a copy of the stock that shares no slices with s.
func (s Stock) Clone() Stock {
	if s.StrategyMatch != nil {
		s.StrategyMatch = append([]string(nil), s.StrategyMatch...)
	}
	return s
}
