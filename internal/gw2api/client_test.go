package gw2api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientRecipes(t *testing.T) {
	// 450 ids forces three pages at the 200-id page size.
	ids := make([]int, 450)
	for i := range ids {
		ids[i] = i + 1
	}

	var pageRequests []int
	mux := http.NewServeMux()
	mux.HandleFunc("/v2/recipes", func(w http.ResponseWriter, r *http.Request) {
		rawIDs := r.URL.Query().Get("ids")
		if rawIDs == "" {
			json.NewEncoder(w).Encode(ids)
			return
		}

		parts := strings.Split(rawIDs, ",")
		pageRequests = append(pageRequests, len(parts))

		page := make([]Recipe, len(parts))
		for i, part := range parts {
			id, err := strconv.Atoi(part)
			require.NoError(t, err)
			page[i] = Recipe{ID: id, OutputItemID: id * 10, OutputItemCount: 1}
		}
		json.NewEncoder(w).Encode(page)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := NewClient(srv.URL)
	recipes, err := client.Recipes(context.Background())

	require.NoError(t, err)
	assert.Len(t, recipes, 450)
	assert.Equal(t, []int{200, 200, 50}, pageRequests)
	assert.Equal(t, 1, recipes[0].ID)
	assert.Equal(t, 10, recipes[0].OutputItemID)
}

func TestClientRecipesUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down for maintenance", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Recipes(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list recipe ids")
}

func TestRecipeFlags(t *testing.T) {
	t.Run("Purchased", func(t *testing.T) {
		r := Recipe{Flags: []string{FlagLearnedFromItem}}
		assert.True(t, r.IsPurchased())
		assert.False(t, r.IsAutomatic())
	})

	t.Run("Automatic", func(t *testing.T) {
		r := Recipe{Flags: []string{FlagAutoLearned}}
		assert.False(t, r.IsPurchased())
		assert.True(t, r.IsAutomatic())
	})

	t.Run("NoFlags", func(t *testing.T) {
		r := Recipe{}
		assert.False(t, r.IsPurchased())
		assert.False(t, r.IsAutomatic())
	})
}
