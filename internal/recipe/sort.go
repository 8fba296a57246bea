package recipe

import (
	"sort"

	"github.com/fenwick-labs/craftgraph/internal/domain"
)

// SortedIngredients returns the recipe's ingredients ordered by count
// descending, then by item ID descending on ties. The recipe's own storage
// order is never mutated. The two-key rule makes repeated calls agree
// exactly; downstream display and processing rely on that stability.
func SortedIngredients(r domain.Recipe) []domain.Ingredient {
	ingredients := make([]domain.Ingredient, len(r.Ingredients))
	copy(ingredients, r.Ingredients)
	sort.Slice(ingredients, func(i, j int) bool {
		if ingredients[i].Count != ingredients[j].Count {
			return ingredients[i].Count > ingredients[j].Count
		}
		return ingredients[i].ItemID > ingredients[j].ItemID
	})
	return ingredients
}
