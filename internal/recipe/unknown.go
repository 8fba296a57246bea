package recipe

import "github.com/fenwick-labs/craftgraph/internal/domain"

// CollectUnknownRecipeIDs adds to unknown the identifier of every recipe in
// r's production chain that the caller neither knows nor can obtain
// automatically, and returns the set. An absent (nil) known set means
// "assume none are known". Recipes without an identifier can never be added
// but their ingredients are still explored.
//
// Ingredient recursion is unconditional, so the full chain is always
// explored and descendants may be revisited on other paths; that is harmless
// because insertion is idempotent. Nothing bounds the walk on a cyclic item
// graph, so callers hand this operation acyclic data.
func CollectUnknownRecipeIDs(r domain.Recipe, db *Database, known domain.KnownRecipes, unknown map[domain.RecipeID]struct{}) map[domain.RecipeID]struct{} {
	if unknown == nil {
		unknown = make(map[domain.RecipeID]struct{})
	}
	if id := r.ID; id != nil {
		if _, seen := unknown[*id]; !seen && !IsAutomatic(r) && !known.Contains(*id) {
			unknown[*id] = struct{}{}
		}
	}

	for _, ingredient := range r.Ingredients {
		if sub, ok := db.Get(ingredient.ItemID); ok {
			unknown = CollectUnknownRecipeIDs(sub, db, known, unknown)
		}
	}
	return unknown
}
