package recipes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutriveg/nutriveg-cli/cli/listing"
)

func TestTranslateDiets(t *testing.T) {
	t.Run("Should translate the CLI diet names to stored values", func(t *testing.T) {
		assert.Equal(t, []string{"vegano", "vegetariano"}, translateDiets([]string{"vegan", "vegetarian"}))
	})

	t.Run("Should pass through already-translated values", func(t *testing.T) {
		assert.Equal(t, []string{"vegano"}, translateDiets([]string{"vegano"}))
	})
}

func TestFacetsFromFlags(t *testing.T) {
	t.Run("Should group flags into facet groups", func(t *testing.T) {
		c := listCmd()
		require.NoError(t, c.Flags().Set("category", "almoco"))
		require.NoError(t, c.Flags().Set("diet", "vegan"))
		require.NoError(t, c.Flags().Set("publisher", "nutricionista"))
		facets, err := facetsFromFlags(c)
		require.NoError(t, err)
		assert.Equal(t, listing.Facets{
			"categoria":    {"almoco"},
			"alimentacao":  {"vegano"},
			"publicadoPor": {"nutricionista"},
		}, facets)
	})

	t.Run("Should be empty without filter flags", func(t *testing.T) {
		facets, err := facetsFromFlags(listCmd())
		require.NoError(t, err)
		assert.True(t, facets.IsEmpty())
	})
}
