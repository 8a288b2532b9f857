package services

import (
	"fmt"
	"time"

	"github.com/trippydao/eth-tvl-api/internal/core"
)

// snapTolerance is how far a record may sit from an ideal step position and
// still be selected for display.
const snapTolerance = 24 * time.Hour

// DisplayInterval maps a window to its tabular sampling step:
// 3 months shows every day, 6 months every 3 days, 12 months weekly.
func DisplayInterval(months int) (stepDays int, label string, err error) {
	switch months {
	case 3:
		return 1, "Daily", nil
	case 6:
		return 3, "Every 3 Days", nil
	case 12:
		return 7, "Weekly", nil
	default:
		return 0, "", fmt.Errorf("%w: got %d", core.ErrInvalidWindow, months)
	}
}

// Sample thins a sorted series for tabular display by nearest-snap
// resampling: starting at the first record's date it walks forward stepDays
// at a time up to and including the last record's date, and at each position
// selects the record closest in time, scanning the whole series. A position
// with no record within snapTolerance produces a gap. The output follows
// walk order and is not deduplicated, so a record may appear more than once
// when steps land close together. This is selection, not interpolation.
func Sample(s core.Series, stepDays int) core.Series {
	out := make(core.Series, 0, len(s))
	if len(s) == 0 {
		return out
	}

	last := s[len(s)-1].Date
	for target := s[0].Date; !target.After(last); target = target.AddDate(0, 0, stepDays) {
		nearest := s[0]
		nearestDist := absDuration(s[0].Date.Sub(target))
		for _, r := range s[1:] {
			if d := absDuration(r.Date.Sub(target)); d < nearestDist {
				nearest, nearestDist = r, d
			}
		}
		if nearestDist <= snapTolerance {
			out = append(out, nearest)
		}
	}
	return out
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
