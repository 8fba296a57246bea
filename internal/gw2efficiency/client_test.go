package gw2efficiency

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientRecipes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"name": "Gift of Blood", "output_item_id": 19678, "output_item_count": 1,
			 "disciplines": ["Mystic Forge"],
			 "ingredients": [{"item_id": 24295, "count": 100}]},
			{"name": "Bad Quantity", "output_item_id": 1, "output_item_count": "lots",
			 "disciplines": [], "ingredients": []}
		]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	recipes, err := client.Recipes(context.Background())

	require.NoError(t, err)
	require.Len(t, recipes, 2)

	count, valid := recipes[0].OutputItemCount.Value()
	assert.True(t, valid)
	assert.Equal(t, 1, count)

	_, valid = recipes[1].OutputItemCount.Value()
	assert.False(t, valid, "bad quantities decode as invalid, not as errors")
}

func TestClientRecipesUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Recipes(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 502")
}
