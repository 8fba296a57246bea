package repository

import (
	"context"

	"github.com/fenwick-labs/craftgraph/internal/domain"
)

// Recipes defines the interface for recipe persistence. The stored set is
// the last successfully imported merge; it lets the service boot without
// hitting the upstream data sources.
type Recipes interface {
	// ReplaceAll atomically replaces the stored recipe set.
	ReplaceAll(ctx context.Context, recipes []domain.Recipe) error
	// GetAll returns every stored recipe with ingredients in stored order.
	GetAll(ctx context.Context) ([]domain.Recipe, error)
}
