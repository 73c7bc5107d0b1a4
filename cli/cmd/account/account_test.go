package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslateFocus(t *testing.T) {
	t.Run("Should translate the CLI focus names to stored values", func(t *testing.T) {
		assert.Equal(t, "vegana", translateFocus("vegan"))
		assert.Equal(t, "vegetariana", translateFocus("vegetarian"))
		assert.Equal(t, "vegana_e_vegetariana", translateFocus("veganAndVegetarian"))
	})

	t.Run("Should pass through unknown values", func(t *testing.T) {
		assert.Equal(t, "vegana", translateFocus("vegana"))
	})
}
