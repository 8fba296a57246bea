package recipe

import "github.com/fenwick-labs/craftgraph/internal/domain"

// Time gated outputs, manually curated from
// https://wiki.guildwars2.com/wiki/Category:Time_gated_recipes
var timegatedOutputs = map[domain.ItemID]struct{}{
	43772: {}, // Charged Quartz Crystal
	46740: {}, // Spool of Silk Weaving Thread
	46742: {}, // Lump of Mithrillium
	46744: {}, // Glob of Elder Spirit Residue
	46745: {}, // Spool of Thick Elonian Cord
	66913: {}, // Clay Pot
	66917: {}, // Plate of Meaty Plant Food
	66923: {}, // Plate of Piquant Plan Food
	67015: {}, // Heat Stone
	67377: {}, // Vial of Maize Balm
	79726: {}, // Dragon Hatchling Doll Eye
	79763: {}, // Gossamer Stuffing
	79790: {}, // Dragon Hatchling Doll Hide
	79795: {}, // Dragon Hatchling Doll Adornments
	79817: {}, // Dragon Hatchling Doll Frame
}

// IsTimegated reports whether the recipe's output can only be crafted a
// limited number of times per day.
func IsTimegated(r domain.Recipe) bool {
	_, ok := timegatedOutputs[r.OutputItemID]
	return ok
}

// TimegatedOutputs returns the curated set of time-gated output items.
func TimegatedOutputs() []domain.ItemID {
	items := make([]domain.ItemID, 0, len(timegatedOutputs))
	for id := range timegatedOutputs {
		items = append(items, id)
	}
	return items
}
