package listing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	kind   string
	term   string
	order  string
	facets Facets
	offset int
	limit  int
}

// fakeSource records every call and serves canned pages or errors.
type fakeSource struct {
	calls []call
	page  Page[string]
	err   error
}

func (f *fakeSource) List(_ context.Context, offset, limit int) (Page[string], error) {
	f.calls = append(f.calls, call{kind: "list", offset: offset, limit: limit})
	return f.page, f.err
}

func (f *fakeSource) Search(_ context.Context, term string, offset, limit int) (Page[string], error) {
	f.calls = append(f.calls, call{kind: "search", term: term, offset: offset, limit: limit})
	return f.page, f.err
}

func (f *fakeSource) Sort(_ context.Context, order string, offset, limit int) (Page[string], error) {
	f.calls = append(f.calls, call{kind: "sort", order: order, offset: offset, limit: limit})
	return f.page, f.err
}

func (f *fakeSource) Filter(_ context.Context, facets Facets, offset, limit int) (Page[string], error) {
	f.calls = append(f.calls, call{kind: "filter", facets: facets, offset: offset, limit: limit})
	return f.page, f.err
}

func pageOf(items []string, total, offset, limit int) Page[string] {
	return Page[string]{Items: items, TotalCount: total, Offset: offset, Limit: limit}
}

func TestControllerSetMode(t *testing.T) {
	t.Run("Should reject blank search terms without issuing a call", func(t *testing.T) {
		src := &fakeSource{}
		c := New[string](src, 12)
		for _, term := range []string{"", "   "} {
			_, err := c.SetMode(Search{Term: term})
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
			assert.Equal(t, MsgEmptySearchTerm, err.Error())
		}
		assert.Empty(t, src.calls)
		assert.Equal(t, StateIdle, c.State())
	})

	t.Run("Should reject empty facet selections without issuing a call", func(t *testing.T) {
		src := &fakeSource{}
		c := New[string](src, 12)
		_, err := c.SetMode(Filter{Facets: Facets{"categoria": nil, "alimentacao": {}}})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
		assert.Equal(t, MsgNoFilters, err.Error())
		assert.Empty(t, src.calls)
	})

	t.Run("Should reject the sort placeholder without issuing a call", func(t *testing.T) {
		src := &fakeSource{}
		c := New[string](src, 12)
		_, err := c.SetMode(Sort{Order: ""})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
		assert.Equal(t, MsgNoSortOption, err.Error())
		assert.Empty(t, src.calls)
	})

	t.Run("Should reset the offset when switching modes", func(t *testing.T) {
		src := &fakeSource{page: pageOf([]string{"a"}, 40, 0, 12)}
		c := New[string](src, 12)
		_, err := c.Load(context.Background(), List{})
		require.NoError(t, err)
		_, err = c.LoadPage(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, 24, c.Offset())

		req, err := c.SetMode(Sort{Order: "recent"})
		require.NoError(t, err)
		assert.Equal(t, 0, req.Offset())
		assert.Equal(t, 0, c.Offset())
		assert.Equal(t, StateLoading, c.State())
	})

	t.Run("Should trim the search term before use", func(t *testing.T) {
		src := &fakeSource{page: pageOf(nil, 0, 0, 12)}
		c := New[string](src, 12)
		req, err := c.SetMode(Search{Term: "  lasanha vegana "})
		require.NoError(t, err)
		c.Apply(c.Fetch(context.Background(), req))
		require.Len(t, src.calls, 1)
		assert.Equal(t, "lasanha vegana", src.calls[0].term)
	})
}

func TestControllerPagination(t *testing.T) {
	t.Run("Should compute the offset from the page number", func(t *testing.T) {
		src := &fakeSource{page: pageOf(nil, 100, 0, 12)}
		c := New[string](src, 12)
		_, err := c.Load(context.Background(), List{})
		require.NoError(t, err)
		_, err = c.LoadPage(context.Background(), 4)
		require.NoError(t, err)
		require.Len(t, src.calls, 2)
		assert.Equal(t, 36, src.calls[1].offset)
		assert.Equal(t, 12, src.calls[1].limit)
	})

	t.Run("Should paginate under the active mode", func(t *testing.T) {
		src := &fakeSource{page: pageOf(nil, 100, 0, 12)}
		c := New[string](src, 12)
		_, err := c.Load(context.Background(), Search{Term: "tofu"})
		require.NoError(t, err)
		_, err = c.LoadPage(context.Background(), 2)
		require.NoError(t, err)
		require.Len(t, src.calls, 2)
		assert.Equal(t, "search", src.calls[1].kind)
		assert.Equal(t, "tofu", src.calls[1].term)
		assert.Equal(t, 12, src.calls[1].offset)
	})

	t.Run("Should reject page numbers below one", func(t *testing.T) {
		c := New[string](&fakeSource{}, 12)
		_, err := c.PageTo(0)
		assert.Error(t, err)
	})
}

func TestControllerApply(t *testing.T) {
	t.Run("Should treat no-results as a valid empty page", func(t *testing.T) {
		src := &fakeSource{err: ErrNoResults}
		c := New[string](src, 12)
		_, err := c.Load(context.Background(), Search{Term: "unicórnio"})
		require.NoError(t, err)
		assert.Equal(t, StateLoaded, c.State())
		assert.True(t, c.NoMatches())
		assert.Zero(t, c.Page().TotalCount)
		assert.Empty(t, c.Page().Items)
	})

	t.Run("Should keep the previous page on transient failure", func(t *testing.T) {
		src := &fakeSource{page: pageOf([]string{"a", "b"}, 2, 0, 12)}
		c := New[string](src, 12)
		_, err := c.Load(context.Background(), List{})
		require.NoError(t, err)

		src.err = errors.New("boom")
		_, err = c.LoadPage(context.Background(), 2)
		require.Error(t, err)
		assert.Equal(t, StateFailed, c.State())
		assert.Equal(t, []string{"a", "b"}, c.Page().Items)
	})

	t.Run("Should leave an empty page when the initial load fails", func(t *testing.T) {
		src := &fakeSource{err: errors.New("boom")}
		c := New[string](src, 12)
		_, err := c.Load(context.Background(), List{})
		require.Error(t, err)
		assert.Equal(t, StateFailed, c.State())
		assert.Empty(t, c.Page().Items)
		assert.Zero(t, c.Page().TotalCount)
	})

	t.Run("Should discard responses issued for an abandoned request", func(t *testing.T) {
		src := &fakeSource{page: pageOf([]string{"stale"}, 1, 0, 12)}
		c := New[string](src, 12)
		staleReq, err := c.SetMode(List{})
		require.NoError(t, err)
		staleRes := c.Fetch(context.Background(), staleReq)

		src.page = pageOf([]string{"fresh"}, 1, 0, 12)
		freshReq, err := c.SetMode(Sort{Order: "recent"})
		require.NoError(t, err)
		freshRes := c.Fetch(context.Background(), freshReq)

		assert.True(t, c.Apply(freshRes))
		assert.False(t, c.Apply(staleRes))
		assert.Equal(t, []string{"fresh"}, c.Page().Items)
	})

	t.Run("Should report in-flight state between issue and apply", func(t *testing.T) {
		src := &fakeSource{page: pageOf(nil, 0, 0, 12)}
		c := New[string](src, 12)
		req, err := c.SetMode(List{})
		require.NoError(t, err)
		assert.True(t, c.InFlight())
		c.Apply(c.Fetch(context.Background(), req))
		assert.False(t, c.InFlight())
	})
}
