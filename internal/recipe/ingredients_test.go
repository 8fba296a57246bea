package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fenwick-labs/craftgraph/internal/domain"
)

func TestCollectIngredientIDs(t *testing.T) {
	t.Run("TwoLevelChain", func(t *testing.T) {
		db := NewDatabase([]domain.Recipe{
			testRecipe(10, ing(20, 2)),
			testRecipe(20, ing(30, 1)),
		})
		root, ok := db.Get(10)
		require.True(t, ok)

		ids := CollectIngredientIDs(root, db, nil)

		assert.Equal(t, []domain.ItemID{20, 30}, ids)
	})

	t.Run("SharedIngredientAppearsOnce", func(t *testing.T) {
		db := NewDatabase([]domain.Recipe{
			testRecipe(1, ing(2, 2), ing(3, 1)),
			testRecipe(2, ing(3, 1), ing(4, 1)),
		})
		root, _ := db.Get(1)

		ids := CollectIngredientIDs(root, db, nil)

		assert.Equal(t, []domain.ItemID{2, 3, 4}, ids)
	})

	t.Run("TerminatesOnCyclicGraph", func(t *testing.T) {
		db := NewDatabase([]domain.Recipe{
			testRecipe(10, ing(20, 1)),
			testRecipe(20, ing(10, 1)),
		})
		root, _ := db.Get(10)

		ids := CollectIngredientIDs(root, db, nil)

		assert.Equal(t, []domain.ItemID{20, 10}, ids)
	})

	t.Run("LeafRecipeYieldsOnlyDirectIngredients", func(t *testing.T) {
		db := NewDatabase([]domain.Recipe{
			testRecipe(1, ing(2, 1), ing(3, 1)),
		})
		root, _ := db.Get(1)

		ids := CollectIngredientIDs(root, db, nil)

		assert.Equal(t, []domain.ItemID{2, 3}, ids)
	})

	t.Run("PreSeededAccumulatorActsAsSeenSet", func(t *testing.T) {
		db := NewDatabase([]domain.Recipe{
			testRecipe(1, ing(2, 1), ing(3, 1)),
			testRecipe(2, ing(4, 1)),
		})
		root, _ := db.Get(1)

		ids := CollectIngredientIDs(root, db, []domain.ItemID{2})

		// 2 is skipped entirely, including its sub-recipe.
		assert.Equal(t, []domain.ItemID{2, 3}, ids)
	})

	t.Run("NoDuplicatesOnDiamondGraph", func(t *testing.T) {
		db := NewDatabase([]domain.Recipe{
			testRecipe(1, ing(2, 1), ing(3, 1)),
			testRecipe(2, ing(4, 1)),
			testRecipe(3, ing(4, 1)),
		})
		root, _ := db.Get(1)

		ids := CollectIngredientIDs(root, db, nil)

		seen := make(map[domain.ItemID]int)
		for _, id := range ids {
			seen[id]++
		}
		for id, count := range seen {
			assert.Equal(t, 1, count, "item %d appears %d times", id, count)
		}
		assert.ElementsMatch(t, []domain.ItemID{2, 3, 4}, ids)
	})
}
