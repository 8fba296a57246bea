package domain

// ItemID uniquely names an in-economy item. It is the join key between
// recipes and ingredients.
type ItemID int

// RecipeID identifies a recipe in the authoritative game-data service.
// Recipes synthesized from community data or the seed list have none.
type RecipeID int

// Discipline is a crafting profession that can execute a recipe.
type Discipline string

// Crafting disciplines as they appear in upstream data.
const (
	DisciplineArmorsmith    Discipline = "Armorsmith"
	DisciplineArtificer     Discipline = "Artificer"
	DisciplineChef          Discipline = "Chef"
	DisciplineHuntsman      Discipline = "Huntsman"
	DisciplineJeweler       Discipline = "Jeweler"
	DisciplineLeatherworker Discipline = "Leatherworker"
	DisciplineScribe        Discipline = "Scribe"
	DisciplineTailor        Discipline = "Tailor"
	DisciplineWeaponsmith   Discipline = "Weaponsmith"
	DisciplineAchievement   Discipline = "Achievement"
)

// RecipeSource classifies how a crafter comes to know a recipe.
type RecipeSource string

const (
	// SourceAutomatic recipes are known to every crafter with the discipline.
	SourceAutomatic RecipeSource = "Automatic"
	// SourceDiscoverable recipes are learnable through in-game discovery and
	// treated as effectively known.
	SourceDiscoverable RecipeSource = "Discoverable"
	// SourcePurchasable recipes must be bought or unlocked from a vendor.
	SourcePurchasable RecipeSource = "Purchasable"
	// SourceAchievement recipes are unlocked by a special requirement that is
	// neither a purchase nor a craft.
	SourceAchievement RecipeSource = "Achievement"
)

// Ingredient is the quantity of one item consumed by one execution of a recipe.
type Ingredient struct {
	ItemID ItemID `json:"item_id"`
	Count  int    `json:"count"`
}

// Recipe is a rule producing a fixed quantity of one item from a fixed
// multiset of ingredient items. Recipes are constructed once at import time
// and never mutated afterwards.
type Recipe struct {
	ID              *RecipeID    `json:"id,omitempty"`
	OutputItemID    ItemID       `json:"output_item_id"`
	OutputItemCount int          `json:"output_item_count"`
	Disciplines     []Discipline `json:"disciplines"`
	Ingredients     []Ingredient `json:"ingredients"`
	Source          RecipeSource `json:"source"`
}

// KnownRecipes is the set of recipes a specific caller has personally
// unlocked. A nil KnownRecipes is a distinct condition meaning "assume none
// are known", as opposed to a non-nil empty set meaning "confirmed none are
// known". Both produce the same traversal results today; the distinction is
// kept explicit for future extension.
type KnownRecipes map[RecipeID]struct{}

// NewKnownRecipes builds a present (possibly empty) known-recipe set.
func NewKnownRecipes(ids ...RecipeID) KnownRecipes {
	known := make(KnownRecipes, len(ids))
	for _, id := range ids {
		known[id] = struct{}{}
	}
	return known
}

// Present reports whether the caller supplied a known-recipe set at all.
func (k KnownRecipes) Present() bool {
	return k != nil
}

// Contains reports whether the recipe is known. An absent set knows nothing.
func (k KnownRecipes) Contains(id RecipeID) bool {
	_, ok := k[id]
	return ok
}
