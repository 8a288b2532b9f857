package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/trippydao/eth-tvl-api/internal/llama"
	"github.com/trippydao/eth-tvl-api/internal/log"
	"github.com/trippydao/eth-tvl-api/internal/render"
	"github.com/trippydao/eth-tvl-api/internal/services"
)

func TestParseMonths(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
		ok   bool
	}{
		{name: "three", args: []string{"3"}, want: 3, ok: true},
		{name: "six", args: []string{"6"}, want: 6, ok: true},
		{name: "twelve", args: []string{"12"}, want: 12, ok: true},
		{name: "missing", args: nil, ok: false},
		{name: "too many", args: []string{"3", "6"}, ok: false},
		{name: "not a number", args: []string{"three"}, ok: false},
		{name: "unsupported window", args: []string{"9"}, ok: false},
		{name: "negative", args: []string{"-3"}, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseMonths(tt.args)
			if ok != tt.ok || got != tt.want {
				t.Errorf("parseMonths(%v) = (%d, %v), want (%d, %v)", tt.args, got, ok, tt.want, tt.ok)
			}
		})
	}
}

// TestPipeline_ThirteenMonthsOfDailies runs fetch → filter → sort → sample →
// table against a mock API serving 400 daily records with strictly
// increasing amounts from $10B to $50B.
func TestPipeline_ThirteenMonthsOfDailies(t *testing.T) {
	// truncate so the Unix-seconds round trip keeps the cutoff record exact
	now := time.Now().Truncate(time.Second)
	const days = 400

	var body bytes.Buffer
	body.WriteString("[")
	for i := 0; i < days; i++ {
		// oldest first, strictly increasing TVL
		ts := now.AddDate(0, 0, -(days - 1 - i)).Unix()
		tvl := 10e9 + float64(i)*(40e9/float64(days-1))
		if i > 0 {
			body.WriteString(",")
		}
		fmt.Fprintf(&body, `{"date": %d, "tvl": %f}`, ts, tvl)
	}
	body.WriteString("]")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(body.Bytes())
	}))
	defer srv.Close()

	client := llama.NewClient(srv.URL, 5*time.Second, log.New(log.DefaultConfig()))
	series, err := client.FetchHistoricalTVL(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(series) != days {
		t.Fatalf("fetched %d records, want %d", len(series), days)
	}

	filtered := services.FilterByWindow(series, 3, now).Sorted()
	if len(filtered) != 91 { // cutoff itself plus 90 later days
		t.Fatalf("filtered to %d records, want 91", len(filtered))
	}

	step, label, err := services.DisplayInterval(3)
	if err != nil || step != 1 || label != "Daily" {
		t.Fatalf("DisplayInterval(3) = (%d, %q, %v)", step, label, err)
	}

	sampled := services.Sample(filtered, step)
	if len(sampled) != len(filtered) {
		t.Fatalf("daily sampling of daily data: %d rows, want %d", len(sampled), len(filtered))
	}

	var buf bytes.Buffer
	render.Table(&buf, sampled, 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	rows := lines[3:] // heading, columns, separator
	if len(rows) != len(sampled) {
		t.Fatalf("table has %d rows, want %d", len(rows), len(sampled))
	}
	if !strings.HasSuffix(rows[0], "---") {
		t.Errorf("first row = %q, want placeholder change", rows[0])
	}
	for i, row := range rows[1:] {
		if !strings.Contains(row, "+") || !strings.HasSuffix(row, "%") {
			t.Errorf("row %d = %q, want a positive percentage change", i+1, row)
		}
	}
}
