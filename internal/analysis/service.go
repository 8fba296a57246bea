package analysis

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/fenwick-labs/craftgraph/internal/domain"
	"github.com/fenwick-labs/craftgraph/internal/logger"
	"github.com/fenwick-labs/craftgraph/internal/metrics"
	"github.com/fenwick-labs/craftgraph/internal/recipe"
)

// Operation labels for analysis metrics.
const (
	OperationRecipe      = "recipe"
	OperationIngredients = "ingredients"
	OperationUnknown     = "unknown_recipes"
	OperationRecursive   = "recursive_recipes"
)

// RecipeInfo is the outward view of one recipe.
type RecipeInfo struct {
	ItemID          domain.ItemID       `json:"item_id"`
	RecipeID        *domain.RecipeID    `json:"recipe_id,omitempty"`
	OutputItemCount int                 `json:"output_item_count"`
	Disciplines     []domain.Discipline `json:"disciplines"`
	Ingredients     []domain.Ingredient `json:"ingredients"`
	Source          domain.RecipeSource `json:"source"`
	Automatic       bool                `json:"automatic"`
	Timegated       bool                `json:"timegated"`
}

// Service defines the interface for recipe-graph analysis operations
type Service interface {
	Recipe(ctx context.Context, itemID domain.ItemID) (*RecipeInfo, error)
	Ingredients(ctx context.Context, itemID domain.ItemID) ([]domain.ItemID, error)
	UnknownRecipes(ctx context.Context, itemID domain.ItemID, known domain.KnownRecipes) ([]domain.RecipeID, error)
	RecursiveRecipes(ctx context.Context) ([]domain.ItemID, error)
}

type service struct {
	db    *recipe.Database
	cache *ingredientCache

	recursiveOnce sync.Once
	recursive     []domain.ItemID
}

// NewService creates a new analysis service over a frozen recipe database.
func NewService(db *recipe.Database, cacheSize int, cacheTTL time.Duration) Service {
	return &service{
		db:    db,
		cache: newIngredientCache(cacheSize, cacheTTL),
	}
}

func (s *service) lookup(itemID domain.ItemID) (domain.Recipe, error) {
	r, ok := s.db.Get(itemID)
	if !ok {
		return domain.Recipe{}, fmt.Errorf("no recipe produces item %d | %w", itemID, domain.ErrRecipeNotFound)
	}
	return r, nil
}

// Recipe returns the recipe producing the item, with ingredients in display
// order and the derived classification flags.
func (s *service) Recipe(ctx context.Context, itemID domain.ItemID) (*RecipeInfo, error) {
	r, err := s.lookup(itemID)
	if err != nil {
		return nil, err
	}
	metrics.AnalysesPerformed.WithLabelValues(OperationRecipe).Inc()

	return &RecipeInfo{
		ItemID:          r.OutputItemID,
		RecipeID:        r.ID,
		OutputItemCount: r.OutputItemCount,
		Disciplines:     r.Disciplines,
		Ingredients:     recipe.SortedIngredients(r),
		Source:          r.Source,
		Automatic:       recipe.IsAutomatic(r),
		Timegated:       recipe.IsTimegated(r),
	}, nil
}

// Ingredients returns every item anywhere in the production chain of the
// item's recipe, in first-discovery order.
func (s *service) Ingredients(ctx context.Context, itemID domain.ItemID) ([]domain.ItemID, error) {
	log := logger.FromContext(ctx)

	r, err := s.lookup(itemID)
	if err != nil {
		return nil, err
	}

	if ids, found := s.cache.Get(itemID); found {
		return ids, nil
	}

	ids := recipe.CollectIngredientIDs(r, s.db, make([]domain.ItemID, 0, len(r.Ingredients)))
	s.cache.Set(itemID, ids)
	metrics.AnalysesPerformed.WithLabelValues(OperationIngredients).Inc()

	log.Info("Collected transitive ingredients", "item_id", itemID, "count", len(ids))
	return ids, nil
}

// UnknownRecipes returns, in ascending order, the identifier of every recipe
// required somewhere in the chain that is neither automatic nor already known.
func (s *service) UnknownRecipes(ctx context.Context, itemID domain.ItemID, known domain.KnownRecipes) ([]domain.RecipeID, error) {
	log := logger.FromContext(ctx)

	r, err := s.lookup(itemID)
	if err != nil {
		return nil, err
	}

	unknown := recipe.CollectUnknownRecipeIDs(r, s.db, known, nil)
	metrics.AnalysesPerformed.WithLabelValues(OperationUnknown).Inc()

	ids := make([]domain.RecipeID, 0, len(unknown))
	for id := range unknown {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	log.Info("Collected unknown recipes",
		"item_id", itemID,
		"known_present", known.Present(),
		"count", len(ids))
	return ids, nil
}

// RecursiveRecipes returns, in ascending order, every item whose production
// chain requires itself. The scan covers the whole database and the database
// is frozen, so the result is computed once.
func (s *service) RecursiveRecipes(ctx context.Context) ([]domain.ItemID, error) {
	s.recursiveOnce.Do(func() {
		marked := recipe.MarkRecursiveRecipes(s.db)
		ids := make([]domain.ItemID, 0, len(marked))
		for id := range marked {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		s.recursive = ids

		metrics.AnalysesPerformed.WithLabelValues(OperationRecursive).Inc()
		logger.FromContext(ctx).Info("Marked recursive recipes", "count", len(ids))
	})
	return s.recursive, nil
}
