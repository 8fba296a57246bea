package recipe

import (
	"fmt"

	"github.com/fenwick-labs/craftgraph/internal/domain"
	"github.com/fenwick-labs/craftgraph/internal/gw2api"
	"github.com/fenwick-labs/craftgraph/internal/gw2efficiency"
)

// FromAPI converts an authoritative service record. It cannot fail: the
// service is trusted to deliver well-formed records. Purchase unlocks beat
// automatic eligibility; everything else is discoverable.
func FromAPI(r gw2api.Recipe) domain.Recipe {
	source := domain.SourceDiscoverable
	if r.IsPurchased() {
		source = domain.SourcePurchasable
	} else if r.IsAutomatic() {
		source = domain.SourceAutomatic
	}

	id := domain.RecipeID(r.ID)
	return domain.Recipe{
		ID:              &id,
		OutputItemID:    domain.ItemID(r.OutputItemID),
		OutputItemCount: r.OutputItemCount,
		Disciplines:     toDisciplines(r.Disciplines),
		Ingredients:     toIngredients(r.Ingredients),
		Source:          source,
	}
}

// FromCommunity converts a community record. It fails, naming the record,
// when the declared output quantity cannot be parsed as a positive integer;
// the caller drops such records rather than defaulting them.
//
// Any disciplines _except_ Achievement can be counted as known. While some
// regular discipline precursor recipes must be learned, the outputs appear
// to be account bound anyway, so won't be on the trading post. There are
// some useful Scribe WvW blueprints in the data, so ignoring all normal
// discipline recipes would catch those too.
func FromCommunity(r gw2efficiency.Recipe) (domain.Recipe, error) {
	count, ok := r.OutputItemCount.Value()
	if !ok || count < 1 {
		return domain.Recipe{}, fmt.Errorf("ignoring %q: %w", r.Name, domain.ErrUnparsableQuantity)
	}

	disciplines := toDisciplines(r.Disciplines)
	source := domain.SourceAutomatic
	for _, d := range disciplines {
		if d == domain.DisciplineAchievement {
			source = domain.SourceAchievement
			break
		}
	}

	ingredients := make([]domain.Ingredient, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		ingredients[i] = domain.Ingredient{
			ItemID: domain.ItemID(ing.ItemID),
			Count:  ing.Count,
		}
	}

	return domain.Recipe{
		OutputItemID:    domain.ItemID(r.OutputItemID),
		OutputItemCount: count,
		Disciplines:     disciplines,
		Ingredients:     ingredients,
		Source:          source,
	}, nil
}

func toDisciplines(names []string) []domain.Discipline {
	disciplines := make([]domain.Discipline, len(names))
	for i, name := range names {
		disciplines[i] = domain.Discipline(name)
	}
	return disciplines
}

func toIngredients(ingredients []gw2api.Ingredient) []domain.Ingredient {
	converted := make([]domain.Ingredient, len(ingredients))
	for i, ing := range ingredients {
		converted[i] = domain.Ingredient{
			ItemID: domain.ItemID(ing.ItemID),
			Count:  ing.Count,
		}
	}
	return converted
}
