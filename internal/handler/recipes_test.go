package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fenwick-labs/craftgraph/internal/analysis"
	"github.com/fenwick-labs/craftgraph/internal/domain"
)

// mockAnalysisService records the arguments of the last call so handlers can
// be checked for correct parameter plumbing.
type mockAnalysisService struct {
	recipeInfo *analysis.RecipeInfo
	itemIDs    []domain.ItemID
	recipeIDs  []domain.RecipeID
	err        error

	lastItemID domain.ItemID
	lastKnown  domain.KnownRecipes
}

func (m *mockAnalysisService) Recipe(ctx context.Context, itemID domain.ItemID) (*analysis.RecipeInfo, error) {
	m.lastItemID = itemID
	return m.recipeInfo, m.err
}

func (m *mockAnalysisService) Ingredients(ctx context.Context, itemID domain.ItemID) ([]domain.ItemID, error) {
	m.lastItemID = itemID
	return m.itemIDs, m.err
}

func (m *mockAnalysisService) UnknownRecipes(ctx context.Context, itemID domain.ItemID, known domain.KnownRecipes) ([]domain.RecipeID, error) {
	m.lastItemID = itemID
	m.lastKnown = known
	return m.recipeIDs, m.err
}

func (m *mockAnalysisService) RecursiveRecipes(ctx context.Context) ([]domain.ItemID, error) {
	return m.itemIDs, m.err
}

func newRecipesRouter(svc analysis.Service) http.Handler {
	r := chi.NewRouter()
	r.Get("/recipes/recursive", HandleGetRecursiveRecipes(svc))
	r.Get("/recipes/{itemID}", HandleGetRecipe(svc))
	r.Get("/recipes/{itemID}/ingredients", HandleGetIngredients(svc))
	r.Get("/recipes/{itemID}/unknown", HandleGetUnknownRecipes(svc))
	return r
}

func TestHandleGetRecipe(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		recipeID := domain.RecipeID(7)
		svc := &mockAnalysisService{recipeInfo: &analysis.RecipeInfo{
			ItemID:          10,
			RecipeID:        &recipeID,
			OutputItemCount: 1,
			Source:          domain.SourcePurchasable,
		}}

		req := httptest.NewRequest("GET", "/recipes/10", nil)
		w := httptest.NewRecorder()
		newRecipesRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, domain.ItemID(10), svc.lastItemID)
		assert.Contains(t, w.Body.String(), `"item_id":10`)
		assert.Contains(t, w.Body.String(), `"recipe_id":7`)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc := &mockAnalysisService{err: domain.ErrRecipeNotFound}

		req := httptest.NewRequest("GET", "/recipes/10", nil)
		w := httptest.NewRecorder()
		newRecipesRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgRecipeNotFoundError)
	})

	t.Run("NonNumericItemID", func(t *testing.T) {
		svc := &mockAnalysisService{}

		req := httptest.NewRequest("GET", "/recipes/abc", nil)
		w := httptest.NewRecorder()
		newRecipesRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("NonPositiveItemID", func(t *testing.T) {
		svc := &mockAnalysisService{}

		req := httptest.NewRequest("GET", "/recipes/0", nil)
		w := httptest.NewRecorder()
		newRecipesRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Validation failed")
	})
}

func TestHandleGetIngredients(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &mockAnalysisService{itemIDs: []domain.ItemID{20, 30}}

		req := httptest.NewRequest("GET", "/recipes/10/ingredients", nil)
		w := httptest.NewRecorder()
		newRecipesRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"ingredients":[20,30]`)
	})

	t.Run("EmptyChainYieldsEmptyArray", func(t *testing.T) {
		svc := &mockAnalysisService{}

		req := httptest.NewRequest("GET", "/recipes/10/ingredients", nil)
		w := httptest.NewRecorder()
		newRecipesRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"ingredients":[]`)
	})
}

func TestHandleGetUnknownRecipes(t *testing.T) {
	t.Run("NoKnownParamPassesAbsentSet", func(t *testing.T) {
		svc := &mockAnalysisService{recipeIDs: []domain.RecipeID{1, 2}}

		req := httptest.NewRequest("GET", "/recipes/10/unknown", nil)
		w := httptest.NewRecorder()
		newRecipesRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.False(t, svc.lastKnown.Present(), "absent query parameter must map to an absent set")
		assert.Contains(t, w.Body.String(), `"unknown_recipes":[1,2]`)
	})

	t.Run("KnownParamParsedIntoSet", func(t *testing.T) {
		svc := &mockAnalysisService{recipeIDs: []domain.RecipeID{}}

		req := httptest.NewRequest("GET", "/recipes/10/unknown?known=1,2,3", nil)
		w := httptest.NewRecorder()
		newRecipesRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.True(t, svc.lastKnown.Present())
		assert.True(t, svc.lastKnown.Contains(1))
		assert.True(t, svc.lastKnown.Contains(3))
		assert.False(t, svc.lastKnown.Contains(4))
	})

	t.Run("EmptyKnownParamIsPresentEmptySet", func(t *testing.T) {
		svc := &mockAnalysisService{}

		req := httptest.NewRequest("GET", "/recipes/10/unknown?known=", nil)
		w := httptest.NewRecorder()
		newRecipesRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.True(t, svc.lastKnown.Present())
		assert.Len(t, svc.lastKnown, 0)
	})

	t.Run("MalformedKnownParam", func(t *testing.T) {
		svc := &mockAnalysisService{}

		req := httptest.NewRequest("GET", "/recipes/10/unknown?known=1,x", nil)
		w := httptest.NewRecorder()
		newRecipesRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleGetRecursiveRecipes(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &mockAnalysisService{itemIDs: []domain.ItemID{10, 20}}

		req := httptest.NewRequest("GET", "/recipes/recursive", nil)
		w := httptest.NewRecorder()
		newRecipesRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"items":[10,20]`)
	})

	t.Run("EmptyResult", func(t *testing.T) {
		svc := &mockAnalysisService{}

		req := httptest.NewRequest("GET", "/recipes/recursive", nil)
		w := httptest.NewRecorder()
		newRecipesRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"items":[]`)
	})
}
