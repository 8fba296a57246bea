package importer

import (
	"context"
	"fmt"

	"github.com/fenwick-labs/craftgraph/internal/domain"
	"github.com/fenwick-labs/craftgraph/internal/gw2api"
	"github.com/fenwick-labs/craftgraph/internal/gw2efficiency"
	"github.com/fenwick-labs/craftgraph/internal/logger"
	"github.com/fenwick-labs/craftgraph/internal/metrics"
	"github.com/fenwick-labs/craftgraph/internal/recipe"
	"github.com/fenwick-labs/craftgraph/internal/repository"
)

// Source labels for import metrics and logs.
const (
	SourceAPI       = "api"
	SourceCommunity = "community"
	SourceSeed      = "seed"
)

// APIClient fetches recipe records from the authoritative game-data service.
type APIClient interface {
	Recipes(ctx context.Context) ([]gw2api.Recipe, error)
}

// CommunityClient fetches the community recipe dataset.
type CommunityClient interface {
	Recipes(ctx context.Context) ([]gw2efficiency.Recipe, error)
}

// Service builds the recipe database consumed by the analysis layer.
type Service interface {
	// Import fetches both upstream sources, merges in the seed recipes and
	// returns the frozen database. When a repository is configured the
	// merged set is persisted for later LoadStored calls.
	Import(ctx context.Context) (*recipe.Database, error)
	// LoadStored rebuilds the database from the last persisted import.
	LoadStored(ctx context.Context) (*recipe.Database, error)
}

type service struct {
	api       APIClient
	community CommunityClient
	repo      repository.Recipes
}

// NewService creates a new importer service. repo may be nil; imports are
// then kept in memory only.
func NewService(api APIClient, community CommunityClient, repo repository.Recipes) Service {
	return &service{
		api:       api,
		community: community,
		repo:      repo,
	}
}

func (s *service) Import(ctx context.Context) (*recipe.Database, error) {
	log := logger.FromContext(ctx)

	apiRecipes, err := s.api.Recipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrImportFailed, err)
	}

	communityRecipes, err := s.community.Recipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrImportFailed, err)
	}

	// One recipe per producible item. Earlier sources win: the authoritative
	// service over community data, community data over the seed list.
	merged := make([]domain.Recipe, 0, len(apiRecipes)+len(communityRecipes))
	taken := make(map[domain.ItemID]struct{})

	add := func(r domain.Recipe, source string) {
		if _, exists := taken[r.OutputItemID]; exists {
			return
		}
		taken[r.OutputItemID] = struct{}{}
		merged = append(merged, r)
		metrics.RecipesImported.WithLabelValues(source).Inc()
	}

	for _, apiRecipe := range apiRecipes {
		add(recipe.FromAPI(apiRecipe), SourceAPI)
	}

	for _, communityRecipe := range communityRecipes {
		converted, err := recipe.FromCommunity(communityRecipe)
		if err != nil {
			// Unparseable records are dropped, not defaulted.
			log.Warn("Dropping community recipe", "error", err)
			metrics.ImportFailures.WithLabelValues(SourceCommunity).Inc()
			continue
		}
		add(converted, SourceCommunity)
	}

	for _, seedRecipe := range recipe.SeedRecipes() {
		add(seedRecipe, SourceSeed)
	}

	log.Info("Recipe import completed",
		"api", len(apiRecipes),
		"community", len(communityRecipes),
		"merged", len(merged))

	if s.repo != nil {
		if err := s.repo.ReplaceAll(ctx, merged); err != nil {
			return nil, fmt.Errorf("failed to persist imported recipes: %w", err)
		}
	}

	return recipe.NewDatabase(merged), nil
}

func (s *service) LoadStored(ctx context.Context) (*recipe.Database, error) {
	if s.repo == nil {
		return nil, fmt.Errorf("%w: no repository configured", domain.ErrImportFailed)
	}

	stored, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load stored recipes: %w", err)
	}

	logger.FromContext(ctx).Info("Loaded stored recipes", "count", len(stored))
	return recipe.NewDatabase(stored), nil
}
