package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagination(t *testing.T) {
	t.Run("Should render nothing for a single page", func(t *testing.T) {
		assert.Empty(t, Pagination(0, 12, 10))
	})

	t.Run("Should render nothing for an empty collection", func(t *testing.T) {
		assert.Empty(t, Pagination(0, 12, 0))
	})

	t.Run("Should render arrows and the page window", func(t *testing.T) {
		footer := Pagination(12, 12, 30)
		assert.Contains(t, footer, "‹")
		assert.Contains(t, footer, "›")
		for _, page := range []string{"1", "2", "3"} {
			assert.Contains(t, footer, page)
		}
	})

	t.Run("Should cap the window at five pages", func(t *testing.T) {
		footer := Pagination(0, 12, 1200)
		assert.Contains(t, footer, "5")
		assert.NotContains(t, footer, "6")
	})
}
