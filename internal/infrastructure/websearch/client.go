// Package websearch queries the Google Custom Search JSON API for
// profile-like results.
package websearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"QuoteBalance/internal/config"
	"QuoteBalance/internal/domain"
	"QuoteBalance/internal/ports"
)

// ErrRateLimited reports an HTTP 429 from the search API. The restricted
// endpoint has no daily quota but throttles aggressively; the
// unrestricted variant is quota-bound but less throttled.
var ErrRateLimited = errors.New("search API rate limited")

// Client performs candidate searches, preferring the site-restricted
// endpoint and falling back to the unrestricted one exactly once when
// rate limited.
type Client struct {
	endpoint    string
	engineID    string
	apiKey      string
	resultCount int
	http        *http.Client
}

var _ ports.ProfileSearcher = (*Client)(nil)

// NewClient builds a client from configuration.
func NewClient(cfg config.SearchConfig) *Client {
	return &Client{
		endpoint:    cfg.Endpoint,
		engineID:    cfg.EngineID,
		apiKey:      cfg.APIKey,
		resultCount: cfg.Results,
		http:        &http.Client{Timeout: 15 * time.Second},
	}
}

// Search runs the query and returns raw result items in ranking order.
func (c *Client) Search(ctx context.Context, query domain.ProfileQuery) ([]domain.SearchItem, error) {
	items, err := c.search(ctx, query, true)
	if errors.Is(err, ErrRateLimited) {
		items, err = c.search(ctx, query, false)
	}
	return items, err
}

func (c *Client) search(ctx context.Context, query domain.ProfileQuery, restricted bool) ([]domain.SearchItem, error) {
	if c.http == nil || c.endpoint == "" {
		return nil, fmt.Errorf("websearch client misconfigured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildURL(query, restricted), nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search API returned %s", resp.Status)
	}

	var payload response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	items := make([]domain.SearchItem, 0, len(payload.Items))
	for _, item := range payload.Items {
		meta := map[string]string{}
		if len(item.Pagemap.Metatags) > 0 {
			meta = item.Pagemap.Metatags[0]
		}
		items = append(items, domain.SearchItem{
			Heading: meta["twitter:title"],
			Snippet: meta["og:description"],
			Link:    item.Link,
		})
	}
	return items, nil
}

// buildURL assembles the query string. The profile pronoun terms bias the
// search toward pages mentioning the target gender.
func (c *Client) buildURL(query domain.ProfileQuery, restricted bool) string {
	endpoint := c.endpoint
	if restricted {
		endpoint += "/siterestrict"
	}

	terms := query.JobTitle
	if query.Location != "" {
		terms += " AND " + query.Location
	}
	switch query.Minority {
	case domain.Female:
		terms += " (she OR her)"
	case domain.Male:
		terms += " (he OR him)"
	}

	values := url.Values{}
	values.Set("key", c.apiKey)
	values.Set("cx", c.engineID)
	values.Set("q", terms)
	values.Set("num", strconv.Itoa(c.resultCount))

	return endpoint + "?" + values.Encode()
}

type response struct {
	Items []struct {
		Link    string `json:"link"`
		Pagemap struct {
			Metatags []map[string]string `json:"metatags"`
		} `json:"pagemap"`
	} `json:"items"`
}
