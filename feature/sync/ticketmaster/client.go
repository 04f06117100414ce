package ticketmaster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// BaseURL is the Discovery API events endpoint.
const BaseURL = "https://app.ticketmaster.com/discovery/v2/events.json"

// FetchTimeout bounds a single listing request. No retries happen at this
// layer.
const FetchTimeout = 30 * time.Second

// ErrMissingAPIKey is returned when a sync run starts without credentials.
var ErrMissingAPIKey = errors.New("ticketmaster API key not provided")

// Client performs listing requests against the Discovery API.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates a client from the given configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: BaseURL,
		http:    &http.Client{Timeout: FetchTimeout},
	}
}

// FetchEvents requests up to size music events for the given city, sorted by
// date ascending. state may be empty.
func (c *Client) FetchEvents(ctx context.Context, city, state string, size int) (*Response, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("city", city)
	params.Set("size", strconv.Itoa(size))
	params.Set("classificationName", "music")
	params.Set("sort", "date,asc")
	if state != "" {
		params.Set("stateCode", state)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching events: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching events: unexpected status code %d", resp.StatusCode)
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &out, nil
}
