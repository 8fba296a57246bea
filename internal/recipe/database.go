package recipe

import (
	"sort"

	"github.com/fenwick-labs/craftgraph/internal/domain"
)

// Database is a read-only mapping from a producible item's identifier to the
// recipe that produces it. It is built once by the import collaborator and
// shared between traversals afterwards; read-only sharing is safe across
// goroutines.
//
// At most one recipe is stored per producible item. When the input slice
// claims the same output item more than once the first recipe wins; callers
// that need a different precedence must resolve conflicts before building.
type Database struct {
	byOutput map[domain.ItemID]domain.Recipe
}

// NewDatabase builds a frozen database from the given recipes.
func NewDatabase(recipes []domain.Recipe) *Database {
	byOutput := make(map[domain.ItemID]domain.Recipe, len(recipes))
	for _, r := range recipes {
		if _, exists := byOutput[r.OutputItemID]; exists {
			continue
		}
		byOutput[r.OutputItemID] = r
	}
	return &Database{byOutput: byOutput}
}

// Get returns the recipe producing the given item, if one is known.
func (d *Database) Get(itemID domain.ItemID) (domain.Recipe, bool) {
	r, ok := d.byOutput[itemID]
	return r, ok
}

// Len returns the number of producible items.
func (d *Database) Len() int {
	return len(d.byOutput)
}

// OutputItems returns every producible item identifier in ascending order.
func (d *Database) OutputItems() []domain.ItemID {
	items := make([]domain.ItemID, 0, len(d.byOutput))
	for id := range d.byOutput {
		items = append(items, id)
	}
	sort.Slice(items, func(i, j int) bool { return items[i] < items[j] })
	return items
}

// Recipes returns every stored recipe keyed by the item it produces.
// The returned map is a copy; mutating it does not affect the database.
func (d *Database) Recipes() map[domain.ItemID]domain.Recipe {
	recipes := make(map[domain.ItemID]domain.Recipe, len(d.byOutput))
	for id, r := range d.byOutput {
		recipes[id] = r
	}
	return recipes
}
