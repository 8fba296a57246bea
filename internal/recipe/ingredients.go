package recipe

import "github.com/fenwick-labs/craftgraph/internal/domain"

// CollectIngredientIDs appends every item identifier that appears anywhere
// in r's production chain to ids and returns the extended slice. The slice
// doubles as the visited set: an identifier already present is skipped
// entirely, which bounds the walk on cyclic item graphs and guarantees each
// identifier appears at most once, in first-discovery depth-first order.
// Items with no recipe in the database are leaves.
func CollectIngredientIDs(r domain.Recipe, db *Database, ids []domain.ItemID) []domain.ItemID {
	for _, ingredient := range r.Ingredients {
		if containsItem(ids, ingredient.ItemID) {
			continue
		}
		ids = append(ids, ingredient.ItemID)
		if sub, ok := db.Get(ingredient.ItemID); ok {
			ids = CollectIngredientIDs(sub, db, ids)
		}
	}
	return ids
}

func containsItem(ids []domain.ItemID, id domain.ItemID) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}
