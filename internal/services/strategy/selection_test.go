package strategy

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/stockwise/internal/models"
)

func allStrategies() []models.StrategyType {
	var out []models.StrategyType
	for _, opt := range models.StrategyCatalog() {
		out = append(out, opt.Type)
	}
	return out
}

func TestSelection_ToggleAddsAndRemoves(t *testing.T) {
	var sel Selection
	assert.True(t, sel.Empty())

	sel = sel.Toggle(models.StrategyVolumeSpike)
	assert.True(t, sel.Has(models.StrategyVolumeSpike))
	assert.Equal(t, 1, sel.Len())

	sel = sel.Toggle(models.StrategyVolumeSpike)
	assert.False(t, sel.Has(models.StrategyVolumeSpike))
	assert.True(t, sel.Empty())
}

func TestSelection_ToggleInvolution(t *testing.T) {
	starts := []Selection{
		{},
		NewSelection(models.StrategyMACDGoldenCross),
		NewSelection(models.StrategyRSIDivergence, models.StrategyMASupport),
		NewSelection(allStrategies()...),
	}
	for _, start := range starts {
		for _, s := range allStrategies() {
			assert.Equal(t, start, start.Toggle(s).Toggle(s), "toggle twice %s from %v", s, start.Labels())
		}
	}
}

func TestSelection_ToggleDoesNotMutateReceiver(t *testing.T) {
	orig := NewSelection(models.StrategyMACDGoldenCross)
	_ = orig.Toggle(models.StrategyRSIDivergence)

	assert.Equal(t, []models.StrategyType{models.StrategyMACDGoldenCross}, orig.Strategies())
}

func TestSelection_UnknownStrategyIgnored(t *testing.T) {
	sel := NewSelection(models.StrategyType("Fibonacci Retracement"))
	assert.True(t, sel.Empty())

	sel = sel.Toggle(models.StrategyType("Fibonacci Retracement"))
	assert.True(t, sel.Empty())
	assert.False(t, sel.Has(models.StrategyType("Fibonacci Retracement")))
}

func TestSelection_StrategiesInCatalogOrder(t *testing.T) {
	sel := NewSelection(models.StrategyMASupport, models.StrategyMACDGoldenCross, models.StrategyVolumeSpike)

	assert.Equal(t, []models.StrategyType{
		models.StrategyMACDGoldenCross,
		models.StrategyVolumeSpike,
		models.StrategyMASupport,
	}, sel.Strategies())
	assert.Equal(t, []string{"MACD Golden Cross", "Large Trading Volume", "Moving Average Support"}, sel.Labels())
}

func TestSelection_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(NewSelection(models.StrategyRSIDivergence))
	require.NoError(t, err)
	assert.JSONEq(t, `["RSI Divergence"]`, string(data))

	data, err = json.Marshal(Selection{})
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestOptions_MarksSelected(t *testing.T) {
	opts := Options(NewSelection(models.StrategyBollingerSqueeze))
	require.Len(t, opts, 5)

	for _, o := range opts {
		assert.Equal(t, o.Type == models.StrategyBollingerSqueeze, o.Selected, o.Label)
	}
}
