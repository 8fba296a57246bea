package recipe

import "github.com/fenwick-labs/craftgraph/internal/domain"

// SeedRecipes returns the manually curated recipes that neither upstream
// source carries: the Piece of Dragon Jade and the Jade Bot Core tiers.
// Seed recipes have no identifier, so they can never be tracked as known or
// unknown; they are assumed always usable.
func SeedRecipes() []domain.Recipe {
	allJadeDisciplines := []domain.Discipline{
		domain.DisciplineArmorsmith,
		domain.DisciplineArtificer,
		domain.DisciplineHuntsman,
		domain.DisciplineJeweler,
		domain.DisciplineLeatherworker,
		domain.DisciplineTailor,
		domain.DisciplineWeaponsmith,
	}
	jeweler := []domain.Discipline{domain.DisciplineJeweler}

	recipes := []domain.Recipe{
		// Piece of Dragon Jade
		{
			OutputItemID:    97487,
			OutputItemCount: 1,
			Disciplines:     allJadeDisciplines,
			Ingredients: []domain.Ingredient{
				{ItemID: 97102, Count: 4},
				{ItemID: 96052, Count: 30},
				{ItemID: 19721, Count: 2},
				{ItemID: 19685, Count: 5},
			},
			Source: domain.SourceAutomatic,
		},
		// Jade Bot Core: Tier 1
		{
			OutputItemID:    97339,
			OutputItemCount: 1,
			Disciplines:     jeweler,
			Ingredients: []domain.Ingredient{
				{ItemID: 96052, Count: 3},
				{ItemID: 19679, Count: 5},
				{ItemID: 97487, Count: 1},
			},
			Source: domain.SourcePurchasable,
		},
	}

	// Jade Bot Core tiers 2-10 each consume the previous tier's core.
	type coreTier struct {
		outputItemID domain.ItemID
		jade         int
		extraItemID  domain.ItemID
		extraCount   int
		pieces       int
	}
	tiers := []coreTier{
		{outputItemID: 97041, jade: 10, extraItemID: 19680, extraCount: 10, pieces: 1},
		{outputItemID: 97284, jade: 20, extraItemID: 19683, extraCount: 25, pieces: 1},
		{outputItemID: 96628, jade: 30, extraItemID: 19687, extraCount: 25, pieces: 1},
		{outputItemID: 95864, jade: 50, extraItemID: 19688, extraCount: 25, pieces: 1},
		{outputItemID: 96467, jade: 80, extraItemID: 19682, extraCount: 25, pieces: 1},
		{outputItemID: 97020, jade: 130, extraItemID: 19686, extraCount: 25, pieces: 1},
		{outputItemID: 96299, jade: 210, extraItemID: 19684, extraCount: 50, pieces: 1},
		{outputItemID: 96070, jade: 340, extraItemID: 19685, extraCount: 15, pieces: 1},
		{outputItemID: 96613, jade: 550, extraItemID: 46743, extraCount: 1, pieces: 2},
	}

	previousCore := recipes[len(recipes)-1].OutputItemID
	for _, tier := range tiers {
		recipes = append(recipes, domain.Recipe{
			OutputItemID:    tier.outputItemID,
			OutputItemCount: 1,
			Disciplines:     jeweler,
			Ingredients: []domain.Ingredient{
				{ItemID: previousCore, Count: 1},
				{ItemID: 96052, Count: tier.jade},
				{ItemID: tier.extraItemID, Count: tier.extraCount},
				{ItemID: 97487, Count: tier.pieces},
			},
			Source: domain.SourcePurchasable,
		})
		previousCore = tier.outputItemID
	}

	return recipes
}
