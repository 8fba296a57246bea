package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/fenwick-labs/craftgraph/internal/analysis"
	"github.com/fenwick-labs/craftgraph/internal/domain"
	"github.com/fenwick-labs/craftgraph/internal/logger"
)

// RecipeLookupRequest carries the parsed path parameter for recipe endpoints
type RecipeLookupRequest struct {
	ItemID int `validate:"required,min=1"`
}

// IngredientsResponse lists every item in a recipe's production chain
type IngredientsResponse struct {
	ItemID      domain.ItemID   `json:"item_id"`
	Ingredients []domain.ItemID `json:"ingredients"`
}

// UnknownRecipesResponse lists the recipes still missing for a production chain
type UnknownRecipesResponse struct {
	ItemID         domain.ItemID     `json:"item_id"`
	UnknownRecipes []domain.RecipeID `json:"unknown_recipes"`
}

// RecursiveRecipesResponse lists items whose production chain requires themselves
type RecursiveRecipesResponse struct {
	Items []domain.ItemID `json:"items"`
}

// parseItemID extracts and validates the itemID path parameter
func parseItemID(w http.ResponseWriter, r *http.Request) (domain.ItemID, bool) {
	log := logger.FromContext(r.Context())

	raw := chi.URLParam(r, "itemID")
	id, err := strconv.Atoi(raw)
	if err != nil {
		log.Warn("Invalid item ID", "item_id", raw, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
		return 0, false
	}

	req := RecipeLookupRequest{ItemID: id}
	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Warn("Invalid request", "error", err)
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":   "Validation failed",
			"details": FormatValidationError(err),
		})
		return 0, false
	}

	return domain.ItemID(id), true
}

// parseKnownRecipes parses the optional known query parameter. An absent
// parameter means the caller's recipe book is unknown, which is distinct from
// an empty one.
func parseKnownRecipes(r *http.Request) (domain.KnownRecipes, error) {
	if !r.URL.Query().Has("known") {
		return nil, nil
	}

	known := domain.NewKnownRecipes()
	raw := r.URL.Query().Get("known")
	if raw == "" {
		return known, nil
	}

	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		known[domain.RecipeID(id)] = struct{}{}
	}
	return known, nil
}

// HandleGetRecipe returns the recipe producing an item
// @Summary Get a recipe
// @Description Returns the recipe producing the item, with ingredients in display order
// @Tags recipes
// @Produce json
// @Param itemID path int true "Output item ID"
// @Success 200 {object} analysis.RecipeInfo
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /recipes/{itemID} [get]
func HandleGetRecipe(svc analysis.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		itemID, ok := parseItemID(w, r)
		if !ok {
			return
		}

		info, err := svc.Recipe(r.Context(), itemID)
		if err != nil {
			log.Warn("Failed to get recipe", "error", err, "item_id", itemID)
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		respondJSON(w, http.StatusOK, info)
	}
}

// HandleGetIngredients returns the transitive ingredients of an item's recipe
// @Summary Get transitive ingredients
// @Description Returns every item required anywhere in the production chain
// @Tags recipes
// @Produce json
// @Param itemID path int true "Output item ID"
// @Success 200 {object} IngredientsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /recipes/{itemID}/ingredients [get]
func HandleGetIngredients(svc analysis.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		itemID, ok := parseItemID(w, r)
		if !ok {
			return
		}

		ingredients, err := svc.Ingredients(r.Context(), itemID)
		if err != nil {
			log.Warn("Failed to collect ingredients", "error", err, "item_id", itemID)
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		if ingredients == nil {
			ingredients = []domain.ItemID{}
		}
		respondJSON(w, http.StatusOK, IngredientsResponse{
			ItemID:      itemID,
			Ingredients: ingredients,
		})
	}
}

// HandleGetUnknownRecipes returns the recipes missing from a production chain
// @Summary Get unknown recipes
// @Description Returns every recipe required in the production chain that is neither automatic nor in the caller's known set
// @Tags recipes
// @Produce json
// @Param itemID path int true "Output item ID"
// @Param known query string false "Comma-separated known recipe IDs; omit to treat all recipes as unknown"
// @Success 200 {object} UnknownRecipesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /recipes/{itemID}/unknown [get]
func HandleGetUnknownRecipes(svc analysis.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		itemID, ok := parseItemID(w, r)
		if !ok {
			return
		}

		known, err := parseKnownRecipes(r)
		if err != nil {
			log.Warn("Invalid known parameter", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		unknown, err := svc.UnknownRecipes(r.Context(), itemID, known)
		if err != nil {
			log.Warn("Failed to collect unknown recipes", "error", err, "item_id", itemID)
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		if unknown == nil {
			unknown = []domain.RecipeID{}
		}
		respondJSON(w, http.StatusOK, UnknownRecipesResponse{
			ItemID:         itemID,
			UnknownRecipes: unknown,
		})
	}
}

// HandleGetRecursiveRecipes returns items whose production chain requires themselves
// @Summary Get recursive recipes
// @Description Returns every item whose recipe transitively requires its own output
// @Tags recipes
// @Produce json
// @Success 200 {object} RecursiveRecipesResponse
// @Failure 500 {object} ErrorResponse
// @Router /recipes/recursive [get]
func HandleGetRecursiveRecipes(svc analysis.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		items, err := svc.RecursiveRecipes(r.Context())
		if err != nil {
			log.Error("Failed to mark recursive recipes", "error", err)
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		if items == nil {
			items = []domain.ItemID{}
		}
		respondJSON(w, http.StatusOK, RecursiveRecipesResponse{Items: items})
	}
}
