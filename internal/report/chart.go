package report

import (
	"bytes"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/edututor/edututor/internal/results"
)

// scoreChartPNG renders the percentage score per attempt, in chronological
// order, as a PNG. Needs at least two attempts; callers skip the chart
// otherwise.
func scoreChartPNG(rows []results.Record, studentName string) ([]byte, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("report: need at least 2 attempts for a chart, have %d", len(rows))
	}

	xs := make([]float64, len(rows))
	ys := make([]float64, len(rows))
	for i, r := range rows {
		xs[i] = float64(i + 1)
		ys[i] = r.Percent()
	}

	graph := chart.Chart{
		Title:  "Performance Over Time – " + studentName,
		Width:  720,
		Height: 360,
		XAxis: chart.XAxis{
			Name: "Attempt",
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			Name:  "Score (%)",
			Range: &chart.ContinuousRange{Min: 0, Max: 100},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeWidth: 2,
					DotWidth:    3,
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("report: render chart: %w", err)
	}
	return buf.Bytes(), nil
}
