package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStock_ChangeConsistent(t *testing.T) {
	tests := []struct {
		name  string
		stock Stock
		want  bool
	}{
		{"both positive", Stock{Change: 1.25, ChangePercent: 0.72}, true},
		{"both negative", Stock{Change: -0.8, ChangePercent: -0.64}, true},
		{"both zero", Stock{}, true},
		{"sign mismatch", Stock{Change: 1.0, ChangePercent: -0.5}, false},
		{"zero change with percent", Stock{Change: 0, ChangePercent: 0.1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.stock.ChangeConsistent())
		})
	}
}

func TestStock_MatchesAny(t *testing.T) {
	s := Stock{Symbol: "NVDA", StrategyMatch: []string{"RSI Divergence", "Large Trading Volume"}}

	assert.True(t, s.MatchesAny([]string{"Large Trading Volume"}))
	assert.True(t, s.MatchesAny([]string{"MACD Golden Cross", "RSI Divergence"}))
	assert.False(t, s.MatchesAny([]string{"MACD Golden Cross"}))
	assert.False(t, s.MatchesAny(nil))
	assert.False(t, Stock{Symbol: "AMD"}.MatchesAny([]string{"RSI Divergence"}))
}

func TestStock_CloneDoesNotShareSlices(t *testing.T) {
	orig := Stock{Symbol: "AAPL", StrategyMatch: []string{"Large Trading Volume"}}
	c := orig.Clone()
	c.StrategyMatch[0] = "changed"

	assert.Equal(t, "Large Trading Volume", orig.StrategyMatch[0])
}

func TestMarket_Valid(t *testing.T) {
	assert.True(t, MarketUS.Valid())
	assert.True(t, MarketTW.Valid())
	assert.False(t, Market("HK").Valid())
}
