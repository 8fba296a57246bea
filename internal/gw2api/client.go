package gw2api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/fenwick-labs/craftgraph/internal/logger"
)

const (
	// DefaultBaseURL is the public endpoint of the game-data service.
	DefaultBaseURL = "https://api.guildwars2.com"

	// pageSize is the maximum number of ids the service accepts per request.
	pageSize = 200

	defaultTimeout = 30 * time.Second
)

// Client fetches recipe records from the game-data service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given base URL. An empty baseURL uses
// the public service endpoint.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// Recipes fetches every recipe the service knows: first the full id list,
// then the records in pages.
func (c *Client) Recipes(ctx context.Context) ([]Recipe, error) {
	log := logger.FromContext(ctx)

	var ids []int
	if err := c.getJSON(ctx, "/v2/recipes", &ids); err != nil {
		return nil, fmt.Errorf("failed to list recipe ids: %w", err)
	}
	log.Info("Fetching recipes from game-data service", "count", len(ids))

	recipes := make([]Recipe, 0, len(ids))
	for start := 0; start < len(ids); start += pageSize {
		end := start + pageSize
		if end > len(ids) {
			end = len(ids)
		}

		var page []Recipe
		path := "/v2/recipes?ids=" + joinIDs(ids[start:end])
		if err := c.getJSON(ctx, path, &page); err != nil {
			return nil, fmt.Errorf("failed to fetch recipe page at offset %d: %w", start, err)
		}
		recipes = append(recipes, page...)
	}

	return recipes, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
