// Package provider fetches per-game player statistics from the
// stats.nba.com leaguedashplayerstats endpoint.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hooplab/statprep/internal/domain/model"
)

// Default client configuration constants.
const (
	defaultBaseURL = "https://stats.nba.com"
	defaultTimeout = 30 * time.Second
	// The endpoint refuses requests that do not look like a browser.
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	refererHeader    = "https://www.nba.com/"

	statsPath = "/stats/leaguedashplayerstats"
)

// Client queries the stats provider. Construct with New.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// New creates a Client with default configuration, adjusted by options.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		userAgent:  defaultUserAgent,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// statsResponse mirrors the provider's resultSets envelope. Cells in rowSet
// are heterogeneous JSON values (strings, numbers, nulls).
type statsResponse struct {
	ResultSets []struct {
		Name    string              `json:"name"`
		Headers []string            `json:"headers"`
		RowSet  [][]json.RawMessage `json:"rowSet"`
	} `json:"resultSets"`
}

// FetchSeason fetches the per-game stat table for one season, e.g.
// "2023-24". The full column set is returned verbatim as strings. Any
// transport, status, or decode failure is fatal to the caller; there is no
// retry here.
func (c *Client) FetchSeason(ctx context.Context, season string) (model.RawTable, error) {
	q := url.Values{}
	q.Set("Season", season)
	q.Set("SeasonType", "Regular Season")
	q.Set("PerMode", "PerGame")
	q.Set("MeasureType", "Base")
	q.Set("LeagueID", "00")

	reqURL := c.baseURL + statsPath + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return model.RawTable{}, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Referer", refererHeader)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.RawTable{}, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return model.RawTable{}, fmt.Errorf("%w: unexpected status %d", ErrFetch, resp.StatusCode)
	}

	var payload statsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return model.RawTable{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if len(payload.ResultSets) == 0 {
		return model.RawTable{}, fmt.Errorf("%w: empty resultSets", ErrDecode)
	}

	set := payload.ResultSets[0]
	table := model.RawTable{
		Headers: set.Headers,
		Rows:    make([][]string, 0, len(set.RowSet)),
	}
	for _, raw := range set.RowSet {
		row := make([]string, len(raw))
		for i, cell := range raw {
			row[i] = stringifyCell(cell)
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// stringifyCell renders one JSON cell as CSV-ready text: strings lose their
// quotes, numbers keep their JSON rendering, null becomes empty.
func stringifyCell(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	switch raw[0] {
	case 'n': // null
		return ""
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
		return string(raw)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(raw, &b); err == nil {
			return strconv.FormatBool(b)
		}
		return string(raw)
	default:
		// numbers: the raw JSON text is already the canonical rendering
		return string(raw)
	}
}
