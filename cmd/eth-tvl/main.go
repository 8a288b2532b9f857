package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/trippydao/eth-tvl-api/internal/cli"
	"github.com/trippydao/eth-tvl-api/internal/llama"
	"github.com/trippydao/eth-tvl-api/internal/log"
	"github.com/trippydao/eth-tvl-api/internal/render"
	"github.com/trippydao/eth-tvl-api/internal/services"
)

const usage = `Usage: eth-tvl MONTHS

Ethereum TVL analysis tool. Displays Total Value Locked (TVL) data
with different display intervals:
  3 months:  daily data points
  6 months:  every 3 days data points
  12 months: weekly data points

Examples:
  eth-tvl 3    # Show daily data for the last 3 months
  eth-tvl 6    # Show 3-day interval data for the last 6 months
  eth-tvl 12   # Show weekly data for the last 12 months
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	months, ok := parseMonths(args)
	if !ok {
		fmt.Fprint(os.Stderr, usage)
		return 2
	}

	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	fmt.Printf("Fetching Ethereum TVL data for the last %d months...\n", months)

	client := llama.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, logger)
	series, err := client.FetchHistoricalTVL(context.Background())
	if err != nil {
		logger.Error("Failed to fetch TVL data", log.FieldError, err)
		return 1
	}
	if len(series) == 0 {
		logger.Error("API returned no TVL records")
		return 1
	}

	filtered := services.FilterByWindow(series, months, time.Now()).Sorted()
	if len(filtered) == 0 {
		logger.Warn("No TVL records within the requested window", log.FieldMonths, months)
		return 0
	}

	step, _, err := services.DisplayInterval(months)
	if err != nil {
		// unreachable after parseMonths, kept as an inner guard
		logger.Error("Invalid display window", log.FieldError, err)
		return 2
	}

	render.Table(os.Stdout, services.Sample(filtered, step), months)

	chartPath := filepath.Join(cfg.OutputDir, render.ChartFilename(months))
	if err := render.Chart(chartPath, filtered, months); err != nil {
		logger.Error("Failed to render chart",
			log.FieldError, err,
			log.FieldPath, chartPath)
		return 1
	}

	fmt.Printf("\nPlot saved as '%s'\n", chartPath)
	return 0
}

// parseMonths accepts exactly one positional argument restricted to 3, 6 or 12.
func parseMonths(args []string) (int, bool) {
	if len(args) != 1 {
		return 0, false
	}
	months, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, false
	}
	switch months {
	case 3, 6, 12:
		return months, true
	}
	return 0, false
}
