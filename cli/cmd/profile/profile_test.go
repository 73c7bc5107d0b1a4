package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartialFailureMessage(t *testing.T) {
	t.Run("Should name both collections when both fetches fail", func(t *testing.T) {
		assert.Equal(t,
			"Não foi possível carregar as receitas e artigos do perfil.",
			partialFailureMessage(true, true))
	})

	t.Run("Should name only the recipes when only they fail", func(t *testing.T) {
		assert.Equal(t,
			"Não foi possível carregar as receitas do perfil.",
			partialFailureMessage(true, false))
	})

	t.Run("Should name only the articles when only they fail", func(t *testing.T) {
		assert.Equal(t,
			"Não foi possível carregar os artigos do perfil.",
			partialFailureMessage(false, true))
	})

	t.Run("Should be empty when everything loads", func(t *testing.T) {
		assert.Empty(t, partialFailureMessage(false, false))
	})
}
