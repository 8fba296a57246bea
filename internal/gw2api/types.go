package gw2api

// Recipe is a recipe record as returned by the authoritative game-data
// service (/v2/recipes). Field names follow the wire format.
type Recipe struct {
	ID              int          `json:"id"`
	Type            string       `json:"type"`
	OutputItemID    int          `json:"output_item_id"`
	OutputItemCount int          `json:"output_item_count"`
	TimeToCraftMS   int          `json:"time_to_craft_ms"`
	Disciplines     []string     `json:"disciplines"`
	MinRating       int          `json:"min_rating"`
	Flags           []string     `json:"flags"`
	Ingredients     []Ingredient `json:"ingredients"`
}

// Ingredient is one input of a service recipe.
type Ingredient struct {
	ItemID int `json:"item_id"`
	Count  int `json:"count"`
}

// Recipe flags defined by the service.
const (
	FlagAutoLearned     = "AutoLearned"
	FlagLearnedFromItem = "LearnedFromItem"
)

// IsPurchased reports whether the recipe is unlocked by consuming a
// purchasable recipe sheet.
func (r Recipe) IsPurchased() bool {
	return r.hasFlag(FlagLearnedFromItem)
}

// IsAutomatic reports whether the recipe is known as soon as the discipline
// reaches the required rating.
func (r Recipe) IsAutomatic() bool {
	return r.hasFlag(FlagAutoLearned)
}

func (r Recipe) hasFlag(flag string) bool {
	for _, f := range r.Flags {
		if f == flag {
			return true
		}
	}
	return false
}
