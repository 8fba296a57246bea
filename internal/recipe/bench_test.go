package recipe

import (
	"testing"

	"github.com/fenwick-labs/craftgraph/internal/domain"
)

// benchDatabase builds a synthetic production graph: long acyclic chains
// feeding into a handful of cycles, roughly the shape of the real data set.
func benchDatabase(size int) *Database {
	recipes := make([]domain.Recipe, 0, size)
	for i := 1; i <= size; i++ {
		ingredients := []domain.Ingredient{ing(domain.ItemID(i+1), 2)}
		if i%37 == 0 {
			// Close a cycle back into the chain.
			ingredients = append(ingredients, ing(domain.ItemID(i-20), 1))
		}
		recipes = append(recipes, testRecipe(domain.ItemID(i), ingredients...))
	}
	return NewDatabase(recipes)
}

func BenchmarkMarkRecursiveRecipes(b *testing.B) {
	db := benchDatabase(500)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		MarkRecursiveRecipes(db)
	}
}

func BenchmarkCollectIngredientIDs(b *testing.B) {
	db := benchDatabase(500)
	root, _ := db.Get(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		CollectIngredientIDs(root, db, nil)
	}
}
