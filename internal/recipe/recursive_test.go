package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fenwick-labs/craftgraph/internal/domain"
)

func TestMarkRecursiveRecipes(t *testing.T) {
	t.Run("TwoItemCycleFlagsBoth", func(t *testing.T) {
		db := NewDatabase([]domain.Recipe{
			testRecipe(10, ing(20, 1)),
			testRecipe(20, ing(10, 1)),
		})

		got := MarkRecursiveRecipes(db)

		assert.Equal(t, unknownItemSet(10, 20), got)
	})

	t.Run("SelfReferencingRecipe", func(t *testing.T) {
		db := NewDatabase([]domain.Recipe{
			testRecipe(5, ing(5, 1)),
		})

		got := MarkRecursiveRecipes(db)

		assert.Equal(t, unknownItemSet(5), got)
	})

	t.Run("ThreeItemCycleFlagsAll", func(t *testing.T) {
		db := NewDatabase([]domain.Recipe{
			testRecipe(1, ing(2, 1)),
			testRecipe(2, ing(3, 1)),
			testRecipe(3, ing(1, 1)),
		})

		got := MarkRecursiveRecipes(db)

		assert.Equal(t, unknownItemSet(1, 2, 3), got)
	})

	t.Run("AcyclicDatabaseFlagsNothing", func(t *testing.T) {
		db := NewDatabase([]domain.Recipe{
			testRecipe(1, ing(2, 1), ing(3, 1)),
			testRecipe(2, ing(3, 1)),
			testRecipe(3, ing(4, 1)),
		})

		got := MarkRecursiveRecipes(db)

		assert.Empty(t, got)
	})

	t.Run("EmptyDatabase", func(t *testing.T) {
		db := NewDatabase(nil)

		got := MarkRecursiveRecipes(db)

		assert.Empty(t, got)
	})

	t.Run("CycleBehindAcyclicEntryPoint", func(t *testing.T) {
		// 100 depends on the 10<->20 cycle but is not part of it.
		db := NewDatabase([]domain.Recipe{
			testRecipe(100, ing(10, 1)),
			testRecipe(10, ing(20, 1)),
			testRecipe(20, ing(10, 1)),
		})

		got := MarkRecursiveRecipes(db)

		assert.Equal(t, unknownItemSet(10, 20), got)
	})
}

// TestMarkRecursiveRecipesOrderIndependence runs the scan repeatedly over a
// graph with several overlapping cycles. Map iteration order varies between
// runs, so consistent results show the outer scan order cannot influence
// what gets flagged.
func TestMarkRecursiveRecipesOrderIndependence(t *testing.T) {
	recipes := []domain.Recipe{
		testRecipe(1, ing(2, 1)),
		testRecipe(2, ing(1, 1), ing(3, 1)),
		testRecipe(3, ing(4, 1)),
		testRecipe(4, ing(3, 1), ing(5, 1)),
		testRecipe(5, ing(6, 1)),
		testRecipe(6, ing(7, 1)),
		testRecipe(7, ing(5, 1)),
		testRecipe(8, ing(1, 1), ing(5, 1)),
	}

	first := MarkRecursiveRecipes(NewDatabase(recipes))
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, MarkRecursiveRecipes(NewDatabase(recipes)), "run %d", i)
	}

	assert.Equal(t, unknownItemSet(1, 2, 3, 4, 5, 6, 7), first)
}

func unknownItemSet(ids ...domain.ItemID) map[domain.ItemID]struct{} {
	set := make(map[domain.ItemID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
