// Package llama is a minimal client for the DefiLlama public API.
package llama

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/trippydao/eth-tvl-api/internal/core"
	"github.com/trippydao/eth-tvl-api/internal/log"
)

// DefaultBaseURL is the public DefiLlama API host.
const DefaultBaseURL = "https://api.llama.fi"

// historicalChainTVLPath is fixed to Ethereum; this tool is single-chain.
const historicalChainTVLPath = "/v2/historicalChainTvl/Ethereum"

// Client fetches historical chain TVL data from DefiLlama.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *log.Logger
}

// NewClient creates a new DefiLlama client. An empty baseURL falls back to
// the public endpoint.
func NewClient(baseURL string, timeout time.Duration, logger *log.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		logger:  logger.WithComponent(log.ComponentFetcher),
	}
}

type chainTVLEntry struct {
	Date int64   `json:"date"`
	TVL  float64 `json:"tvl"`
}

// FetchHistoricalTVL issues one GET for the full Ethereum TVL history and
// converts each entry to a core.TVLRecord (local date, amount rounded to
// two decimals). Records come back in API order; the caller is responsible
// for sorting. Any network error, non-2xx status or malformed body is
// returned as a wrapped error with no partial result. There are no retries.
func (c *Client) FetchHistoricalTVL(ctx context.Context) (core.Series, error) {
	url := c.baseURL + historicalChainTVLPath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch chain TVL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch chain TVL: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var entries []chainTVLEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	series := make(core.Series, 0, len(entries))
	for _, e := range entries {
		series = append(series, core.NewTVLRecord(e.Date, e.TVL))
	}

	c.logger.Debug("Fetched chain TVL history",
		log.FieldOperation, log.OpFetch,
		log.FieldURL, url,
		log.FieldRecords, len(series))

	return series, nil
}
