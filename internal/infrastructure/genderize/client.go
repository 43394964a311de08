// Package genderize calls an external name→gender probability service.
package genderize

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"QuoteBalance/internal/domain"
	"QuoteBalance/internal/ports"
)

// Client talks to a genderize.io compatible endpoint.
type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

var _ ports.GenderLookup = (*Client)(nil)

// NewClient creates a reusable HTTP client.
func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

// Lookup queries the service for a single forename. A null gender in the
// answer maps to an empty guess; deciding on a sentinel is left to the
// classifier.
func (c *Client) Lookup(ctx context.Context, forename string) (domain.GenderGuess, error) {
	if c.http == nil || c.endpoint == "" {
		return domain.GenderGuess{}, fmt.Errorf("genderize client misconfigured")
	}

	u, err := url.Parse(c.endpoint)
	if err != nil {
		return domain.GenderGuess{}, fmt.Errorf("parse endpoint: %w", err)
	}
	q := u.Query()
	q.Set("name", forename)
	if c.apiKey != "" {
		q.Set("apikey", c.apiKey)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return domain.GenderGuess{}, fmt.Errorf("new request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.GenderGuess{}, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.GenderGuess{}, fmt.Errorf("genderize returned %s", resp.Status)
	}

	var payload struct {
		Gender      *string `json:"gender"`
		Probability float64 `json:"probability"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.GenderGuess{}, fmt.Errorf("decode response: %w", err)
	}

	guess := domain.GenderGuess{Probability: payload.Probability}
	if payload.Gender != nil {
		guess.Gender = domain.Gender(strings.ToLower(*payload.Gender))
	}
	return guess, nil
}
