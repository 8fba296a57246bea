package recipe

import "github.com/fenwick-labs/craftgraph/internal/domain"

// MarkRecursiveRecipes scans the whole database for items whose own
// production chain would, directly or transitively, require that same item
// as an ingredient. Such items cannot be crafted "from scratch" without
// hitting their own supply chain.
func MarkRecursiveRecipes(db *Database) map[domain.ItemID]struct{} {
	recursive := make(map[domain.ItemID]struct{})
	for itemID, r := range db.byOutput {
		markRecursive(itemID, r.OutputItemID, db, nil, recursive)
	}
	return recursive
}

// markRecursive walks the production graph below itemID looking for an
// ingredient equal to searchOutputItemID. The stack guard skips ingredients
// already on the current path so cycles unrelated to the search target
// cannot unbound the recursion. Searches share no state beyond the write-only
// result set, so the outer scan order cannot change the outcome.
func markRecursive(itemID, searchOutputItemID domain.ItemID, db *Database, stack []domain.ItemID, recursive map[domain.ItemID]struct{}) {
	r, ok := db.Get(itemID)
	if !ok {
		return
	}
	for _, ingredient := range r.Ingredients {
		if ingredient.ItemID == searchOutputItemID {
			recursive[r.OutputItemID] = struct{}{}
			return
		}
		// skip unnecessary recursion
		if containsItem(stack, ingredient.ItemID) {
			continue
		}
		markRecursive(ingredient.ItemID, searchOutputItemID, db, append(stack, ingredient.ItemID), recursive)
	}
}
