package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrentPage(t *testing.T) {
	t.Run("Should derive page number from offset", func(t *testing.T) {
		assert.Equal(t, 1, CurrentPage(0, 12))
		assert.Equal(t, 2, CurrentPage(12, 12))
		assert.Equal(t, 5, CurrentPage(48, 12))
	})

	t.Run("Should default to the first page for degenerate input", func(t *testing.T) {
		assert.Equal(t, 1, CurrentPage(0, 0))
		assert.Equal(t, 1, CurrentPage(-6, 6))
	})
}

func TestTotalPages(t *testing.T) {
	t.Run("Should round partial pages up", func(t *testing.T) {
		assert.Equal(t, 3, TotalPages(13, 6))
		assert.Equal(t, 2, TotalPages(12, 6))
		assert.Equal(t, 1, TotalPages(1, 6))
	})

	t.Run("Should be zero for empty collections", func(t *testing.T) {
		assert.Equal(t, 0, TotalPages(0, 6))
	})
}

func TestWindow(t *testing.T) {
	t.Run("Should show every page when fewer than five exist", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, 3}, Window(0, 6, 13))
	})

	t.Run("Should center the window on the current page", func(t *testing.T) {
		// page 5 of 10
		assert.Equal(t, []int{3, 4, 5, 6, 7}, Window(48, 12, 120))
	})

	t.Run("Should clamp the window at the start of the collection", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, 3, 4, 5}, Window(0, 12, 120))
		assert.Equal(t, []int{1, 2, 3, 4, 5}, Window(12, 12, 120))
	})

	t.Run("Should clamp the window at the end of the collection", func(t *testing.T) {
		// page 10 of 10
		assert.Equal(t, []int{6, 7, 8, 9, 10}, Window(108, 12, 120))
		// page 9 of 10
		assert.Equal(t, []int{6, 7, 8, 9, 10}, Window(96, 12, 120))
	})

	t.Run("Should be empty for an empty collection", func(t *testing.T) {
		assert.Nil(t, Window(0, 12, 0))
	})

	t.Run("Should never exceed five buttons", func(t *testing.T) {
		for total := 0; total <= 200; total += 7 {
			for offset := 0; offset < total; offset += 12 {
				pages := Window(offset, 12, total)
				assert.LessOrEqual(t, len(pages), 5)
				if len(pages) > 0 {
					assert.GreaterOrEqual(t, pages[0], 1)
					assert.LessOrEqual(t, pages[len(pages)-1], TotalPages(total, 12))
				}
			}
		}
	})
}

func TestPrevNext(t *testing.T) {
	t.Run("Should disable prev on the first page and next on the last", func(t *testing.T) {
		assert.False(t, HasPrev(0, 6))
		assert.True(t, HasNext(0, 6, 13))
		assert.True(t, HasPrev(12, 6))
		assert.False(t, HasNext(12, 6, 13))
	})
}
