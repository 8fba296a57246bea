package gw2efficiency

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/fenwick-labs/craftgraph/internal/logger"
)

// DefaultRecipesURL is the community-maintained custom recipe dataset.
const DefaultRecipesURL = "https://api.gw2efficiency.com/crafting/custom-recipes"

const defaultTimeout = 30 * time.Second

// Client fetches the community recipe dataset.
type Client struct {
	recipesURL string
	httpClient *http.Client
}

// NewClient creates a client for the given dataset URL. An empty URL uses
// the public dataset.
func NewClient(recipesURL string) *Client {
	if recipesURL == "" {
		recipesURL = DefaultRecipesURL
	}
	return &Client{
		recipesURL: recipesURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// Recipes fetches the full community recipe list.
func (c *Client) Recipes(ctx context.Context) ([]Recipe, error) {
	log := logger.FromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.recipesURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from community dataset", resp.StatusCode)
	}

	var recipes []Recipe
	if err := json.NewDecoder(resp.Body).Decode(&recipes); err != nil {
		return nil, fmt.Errorf("failed to decode community recipes: %w", err)
	}

	log.Info("Fetched community recipes", "count", len(recipes))
	return recipes, nil
}
