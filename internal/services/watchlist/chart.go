package watchlist

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/bobmcallan/stockwise/internal/models"
)

var (
	gainColor = drawing.ColorFromHex("16a34a") // green-600
	lossColor = drawing.ColorFromHex("e11d48") // rose-600
)

// RenderChangeChart renders a PNG bar chart of ChangePercent per watchlist symbol.
// Returns raw PNG bytes.
func RenderChangeChart(watchlist []models.Stock) ([]byte, error) {
	if len(watchlist) == 0 {
		return nil, fmt.Errorf("watchlist is empty")
	}

	minY, maxY := 0.0, 0.0
	bars := make([]chart.Value, len(watchlist))
	for i, st := range watchlist {
		color := gainColor
		if st.ChangePercent < 0 {
			color = lossColor
		}
		bars[i] = chart.Value{
			Label: st.Symbol,
			Value: st.ChangePercent,
			Style: chart.Style{
				FillColor:   color,
				StrokeColor: color,
				StrokeWidth: 1,
			},
		}
		if st.ChangePercent < minY {
			minY = st.ChangePercent
		}
		if st.ChangePercent > maxY {
			maxY = st.ChangePercent
		}
	}
	if maxY == minY {
		maxY = minY + 1
	}

	graph := chart.BarChart{
		Title:  "Watchlist Daily Change",
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		BarWidth:     40,
		UseBaseValue: true,
		BaseValue:    0,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: minY, Max: maxY},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.1f%%", f)
				}
				return ""
			},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}
