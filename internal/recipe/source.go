package recipe

import "github.com/fenwick-labs/craftgraph/internal/domain"

// IsAutomatic reports whether the recipe needs no separate unlock step
// beyond possessing the right discipline. Discoverable recipes are not
// included in the authoritative API's unlock data, so they are assumed
// known. This is the single predicate all "do I need to separately obtain
// this recipe" logic relies on.
func IsAutomatic(r domain.Recipe) bool {
	switch r.Source {
	case domain.SourcePurchasable, domain.SourceAchievement:
		return false
	default:
		return true
	}
}
