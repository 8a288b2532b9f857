package render

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/trippydao/eth-tvl-api/internal/core"
)

var billion = decimal.NewFromInt(1_000_000_000)

// ChartFilename returns the output name for a window, e.g. "eth_tvl_3m.png".
func ChartFilename(months int) string {
	return fmt.Sprintf("eth_tvl_%dm.png", months)
}

// Chart renders the full filtered series (not the sampled subset) as a line
// with point markers, y-axis in billions of USD, and writes it as a PNG to
// path, overwriting any existing file. All drawing state is local to this
// call. The series must be sorted and hold at least two records.
func Chart(path string, s core.Series, months int) error {
	if len(s) == 0 {
		return core.ErrEmptySeries
	}

	dates := make([]time.Time, len(s))
	values := make([]float64, len(s))
	for i, r := range s {
		dates[i] = r.Date
		values[i], _ = r.Amount.Div(billion).Float64()
	}

	line := chart.TimeSeries{
		Name:    "TVL",
		XValues: dates,
		YValues: values,
		Style: chart.Style{
			StrokeColor: chart.ColorBlue,
			StrokeWidth: 2,
		},
	}
	markers := chart.TimeSeries{
		XValues: dates,
		YValues: values,
		Style: chart.Style{
			StrokeWidth: 0,
			DotWidth:    4,
			DotColor:    chart.ColorBlue,
		},
	}

	ch := chart.Chart{
		Title:  Title(months),
		Width:  1500,
		Height: 800,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:           "Date",
			ValueFormatter: chart.TimeDateValueFormatter,
			TickStyle: chart.Style{
				TextRotationDegrees: 45,
			},
		},
		YAxis: chart.YAxis{
			Name:           "TVL (Billion USD)",
			ValueFormatter: billionsFormatter,
		},
		Series: []chart.Series{line, markers},
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := ch.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

func billionsFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("$%.2fB", f)
	}
	return ""
}
