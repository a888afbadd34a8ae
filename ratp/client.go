package ratp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the public v4 API endpoint.
const DefaultBaseURL = "https://api-ratp.pierre-grimaud.fr/v4"

// Client is a simple HTTP client for the waiting-time API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for baseURL; an empty baseURL selects
// DefaultBaseURL. A zero timeout means requests never time out on their
// own and are bounded only by the caller's context.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Stations fetches all stations of a line.
func (c *Client) Stations(ctx context.Context, lineType LineType, line string) ([]Station, error) {
	var result struct {
		Stations []Station `json:"stations"`
	}
	url := fmt.Sprintf("%s/stations/%s/%s", c.baseURL, lineType.APIPath(), line)
	if err := c.get(ctx, url, &result); err != nil {
		return nil, err
	}
	return result.Stations, nil
}

// Schedules fetches the upcoming departures for one station and direction.
// Entries come back in the API's order, soonest first.
func (c *Client) Schedules(ctx context.Context, lineType LineType, line, station string, direction Direction) ([]Schedule, error) {
	var result struct {
		Schedules []Schedule `json:"schedules"`
	}
	url := fmt.Sprintf("%s/schedules/%s/%s/%s/%s", c.baseURL, lineType.APIPath(), line, station, direction)
	if err := c.get(ctx, url, &result); err != nil {
		return nil, err
	}
	return result.Schedules, nil
}

// Traffic fetches the live status of a line.
func (c *Client) Traffic(ctx context.Context, lineType LineType, line string) (Traffic, error) {
	var result Traffic
	url := fmt.Sprintf("%s/traffic/%s/%s", c.baseURL, lineType.APIPath(), line)
	if err := c.get(ctx, url, &result); err != nil {
		return Traffic{}, err
	}
	return result, nil
}

// get issues one GET request and decodes the "result" wrapper into out.
func (c *Client) get(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode %s: %w", url, err)
	}
	if len(envelope.Result) == 0 {
		return fmt.Errorf("missing result in response from %s", url)
	}
	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", url, err)
	}
	return nil
}
