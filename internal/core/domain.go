// Package core defines the TVL time-series domain model.
package core

import (
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

type (
	// TVLRecord is a single observation of Ethereum's Total Value Locked.
	// Amount is denominated in USD and rounded to two decimal places at
	// ingestion. Records are never mutated after creation; transformations
	// over a Series always produce new slices.
	TVLRecord struct {
		Date   time.Time
		Amount decimal.Decimal
	}

	// Series is a sequence of TVL records. The contract is chronological
	// ascending order, but a Series coming straight from the API or from a
	// filter is unordered until Sorted is applied.
	Series []TVLRecord
)

var (
	ErrNoData        = errors.New("no TVL data")
	ErrEmptySeries   = errors.New("empty series")
	ErrInvalidWindow = errors.New("window must be 3, 6 or 12 months")
)

// NewTVLRecord builds a record from a raw API entry: a Unix-seconds
// timestamp (converted to local time) and a TVL figure in USD.
func NewTVLRecord(unixSeconds int64, tvlUSD float64) TVLRecord {
	return TVLRecord{
		Date:   time.Unix(unixSeconds, 0),
		Amount: decimal.NewFromFloat(tvlUSD).Round(2),
	}
}

// Sorted returns a copy of the series in ascending date order. The
// receiver is left untouched.
func (s Series) Sorted() Series {
	out := make(Series, len(s))
	copy(out, s)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// First returns the earliest record of a sorted series.
func (s Series) First() TVLRecord { return s[0] }

// Last returns the latest record of a sorted series.
func (s Series) Last() TVLRecord { return s[len(s)-1] }
