// Package services holds the analysis logic: trailing-window filtering and
// interval sampling of the TVL series.
package services

import (
	"time"

	"github.com/trippydao/eth-tvl-api/internal/core"
)

// daysPerMonth is a fixed approximation; the window is not calendar-accurate.
const daysPerMonth = 30

// FilterByWindow returns the records dated within the trailing window of
// 30*months days before now. The result is a new series and is NOT sorted;
// callers must apply Sorted before display or charting. Empty input yields
// empty output.
func FilterByWindow(s core.Series, months int, now time.Time) core.Series {
	out := make(core.Series, 0, len(s))
	if len(s) == 0 {
		return out
	}

	cutoff := now.AddDate(0, 0, -daysPerMonth*months)
	for _, r := range s {
		if !r.Date.Before(cutoff) {
			out = append(out, r)
		}
	}
	return out
}
