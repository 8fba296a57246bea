package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fenwick-labs/craftgraph/internal/domain"
)

func TestIsTimegated(t *testing.T) {
	t.Run("CuratedOutputIsTimegated", func(t *testing.T) {
		// Spool of Silk Weaving Thread
		r := domain.Recipe{OutputItemID: 46740}
		assert.True(t, IsTimegated(r))
	})

	t.Run("OtherOutputIsNot", func(t *testing.T) {
		r := domain.Recipe{OutputItemID: 19721}
		assert.False(t, IsTimegated(r))
	})
}

func TestTimegatedOutputs(t *testing.T) {
	outputs := TimegatedOutputs()

	assert.Len(t, outputs, 15)
	for _, id := range outputs {
		assert.True(t, IsTimegated(domain.Recipe{OutputItemID: id}))
	}
}
