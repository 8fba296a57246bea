package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fenwick-labs/craftgraph/internal/domain"
)

func TestSeedRecipes(t *testing.T) {
	recipes := SeedRecipes()

	require.Len(t, recipes, 11)

	t.Run("NoSeedRecipeHasIdentifier", func(t *testing.T) {
		for _, r := range recipes {
			assert.Nil(t, r.ID, "item %d", r.OutputItemID)
		}
	})

	t.Run("OutputItemsAreUnique", func(t *testing.T) {
		seen := make(map[domain.ItemID]struct{})
		for _, r := range recipes {
			_, dup := seen[r.OutputItemID]
			assert.False(t, dup, "duplicate output %d", r.OutputItemID)
			seen[r.OutputItemID] = struct{}{}
		}
	})

	t.Run("DragonJadeIsAutomatic", func(t *testing.T) {
		jade := recipes[0]
		assert.Equal(t, domain.ItemID(97487), jade.OutputItemID)
		assert.Equal(t, domain.SourceAutomatic, jade.Source)
		assert.Len(t, jade.Disciplines, 7)
	})

	t.Run("CoreTiersChainThroughPreviousTier", func(t *testing.T) {
		// Tiers 2+ each consume exactly one of the previous tier's core.
		for i := 2; i < len(recipes); i++ {
			previous := recipes[i-1].OutputItemID
			found := false
			for _, ingredient := range recipes[i].Ingredients {
				if ingredient.ItemID == previous {
					assert.Equal(t, 1, ingredient.Count)
					found = true
				}
			}
			assert.True(t, found, "tier producing %d does not consume %d",
				recipes[i].OutputItemID, previous)
		}
	})

	t.Run("CoreTiersArePurchasable", func(t *testing.T) {
		for _, r := range recipes[1:] {
			assert.Equal(t, domain.SourcePurchasable, r.Source, "item %d", r.OutputItemID)
			assert.Equal(t, []domain.Discipline{domain.DisciplineJeweler}, r.Disciplines)
		}
	})

	t.Run("EveryTierRequiresDragonJade", func(t *testing.T) {
		for _, r := range recipes[1:] {
			found := false
			for _, ingredient := range r.Ingredients {
				if ingredient.ItemID == 97487 {
					found = true
				}
			}
			assert.True(t, found, "item %d", r.OutputItemID)
		}
	})
}
