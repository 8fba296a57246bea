package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fenwick-labs/craftgraph/internal/domain"
)

// RecipeRepository implements recipe persistence for PostgreSQL
type RecipeRepository struct {
	db *pgxpool.Pool
}

// NewRecipeRepository creates a new RecipeRepository
func NewRecipeRepository(db *pgxpool.Pool) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// ReplaceAll atomically replaces the stored recipe set
func (r *RecipeRepository) ReplaceAll(ctx context.Context, recipes []domain.Recipe) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM recipes`); err != nil {
		return fmt.Errorf("failed to clear recipes: %w", err)
	}

	for _, recipe := range recipes {
		disciplines := make([]string, len(recipe.Disciplines))
		for i, d := range recipe.Disciplines {
			disciplines[i] = string(d)
		}

		var recipeID *int
		if recipe.ID != nil {
			id := int(*recipe.ID)
			recipeID = &id
		}

		_, err := tx.Exec(ctx,
			`INSERT INTO recipes (output_item_id, recipe_id, output_item_count, source, disciplines)
			 VALUES ($1, $2, $3, $4, $5)`,
			int(recipe.OutputItemID), recipeID, recipe.OutputItemCount, string(recipe.Source), disciplines,
		)
		if err != nil {
			return fmt.Errorf("failed to insert recipe for item %d: %w", recipe.OutputItemID, err)
		}

		for position, ingredient := range recipe.Ingredients {
			_, err := tx.Exec(ctx,
				`INSERT INTO recipe_ingredients (output_item_id, position, item_id, count)
				 VALUES ($1, $2, $3, $4)`,
				int(recipe.OutputItemID), position, int(ingredient.ItemID), ingredient.Count,
			)
			if err != nil {
				return fmt.Errorf("failed to insert ingredient for item %d: %w", recipe.OutputItemID, err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetAll returns every stored recipe with ingredients in stored order
func (r *RecipeRepository) GetAll(ctx context.Context) ([]domain.Recipe, error) {
	rows, err := r.db.Query(ctx,
		`SELECT output_item_id, recipe_id, output_item_count, source, disciplines
		 FROM recipes ORDER BY output_item_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipes: %w", err)
	}
	defer rows.Close()

	recipesByOutput := make(map[domain.ItemID]*domain.Recipe)
	var order []domain.ItemID
	for rows.Next() {
		var (
			outputItemID int
			recipeID     *int
			outputCount  int
			source       string
			disciplines  []string
		)
		if err := rows.Scan(&outputItemID, &recipeID, &outputCount, &source, &disciplines); err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}

		recipe := &domain.Recipe{
			OutputItemID:    domain.ItemID(outputItemID),
			OutputItemCount: outputCount,
			Source:          domain.RecipeSource(source),
			Disciplines:     toDisciplines(disciplines),
		}
		if recipeID != nil {
			id := domain.RecipeID(*recipeID)
			recipe.ID = &id
		}

		recipesByOutput[recipe.OutputItemID] = recipe
		order = append(order, recipe.OutputItemID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recipes: %w", err)
	}

	if err := r.loadIngredients(ctx, recipesByOutput); err != nil {
		return nil, err
	}

	recipes := make([]domain.Recipe, 0, len(order))
	for _, outputItemID := range order {
		recipes = append(recipes, *recipesByOutput[outputItemID])
	}
	return recipes, nil
}

func (r *RecipeRepository) loadIngredients(ctx context.Context, recipes map[domain.ItemID]*domain.Recipe) error {
	rows, err := r.db.Query(ctx,
		`SELECT output_item_id, item_id, count
		 FROM recipe_ingredients ORDER BY output_item_id, position`)
	if err != nil {
		return fmt.Errorf("failed to query ingredients: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var outputItemID, itemID, count int
		if err := rows.Scan(&outputItemID, &itemID, &count); err != nil {
			return fmt.Errorf("failed to scan ingredient: %w", err)
		}
		recipe, ok := recipes[domain.ItemID(outputItemID)]
		if !ok {
			continue
		}
		recipe.Ingredients = append(recipe.Ingredients, domain.Ingredient{
			ItemID: domain.ItemID(itemID),
			Count:  count,
		})
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read ingredients: %w", err)
	}
	return nil
}

func toDisciplines(names []string) []domain.Discipline {
	if len(names) == 0 {
		return nil
	}
	disciplines := make([]domain.Discipline, len(names))
	for i, name := range names {
		disciplines[i] = domain.Discipline(name)
	}
	return disciplines
}
