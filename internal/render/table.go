// Package render produces the two output artifacts: the stdout table and
// the PNG chart.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/trippydao/eth-tvl-api/internal/core"
	"github.com/trippydao/eth-tvl-api/internal/services"
)

var hundred = decimal.NewFromInt(100)

// Title returns the heading shared by the table and the chart.
func Title(months int) string {
	_, label, _ := services.DisplayInterval(months)
	return fmt.Sprintf("Ethereum TVL - Last %d Months (%s Data)", months, label)
}

// Table writes the sampled series as rows of date, thousands-separated USD
// amount and percentage change versus the previous sampled row. The first
// row carries "---" instead of a change; a zero previous amount renders
// "N/A" rather than dividing by zero.
func Table(w io.Writer, s core.Series, months int) {
	fmt.Fprintf(w, "\n%s\n", Title(months))
	fmt.Fprintln(w, "Date\t\t\tTVL (USD)\t\tChange")
	fmt.Fprintln(w, strings.Repeat("-", 65))

	var prev decimal.Decimal
	for i, r := range s {
		change := "---"
		if i > 0 {
			change = percentChange(prev, r.Amount)
		}

		amount, _ := r.Amount.Float64()
		fmt.Fprintf(w, "%s\t$%s\t%s\n",
			r.Date.Format("2006-01-02"),
			humanize.FormatFloat("#,###.##", amount),
			change)

		prev = r.Amount
	}
}

func percentChange(prev, curr decimal.Decimal) string {
	if prev.IsZero() {
		return "N/A"
	}
	pct, _ := curr.Sub(prev).Div(prev).Mul(hundred).Float64()
	return fmt.Sprintf("%+.2f%%", pct)
}
