package listing

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoResults marks a search or filter that matched nothing. It is a valid
// empty state, surfaced as a notice rather than a failure.
var ErrNoResults = errors.New("no results for the requested query")

// ErrFilterUnsupported is returned by sources whose collection has no
// filter endpoint.
var ErrFilterUnsupported = errors.New("filtering is not supported for this collection")

// Page is one page's worth of entities under the active query mode.
// TotalCount reflects the full result set for that mode, not the global
// collection.
type Page[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"totalCount"`
	Offset     int `json:"offset"`
	Limit      int `json:"limit"`
}

// Source fetches collection pages from the remote API. Implementations live
// next to the API client, one per entity type.
type Source[T any] interface {
	List(ctx context.Context, offset, limit int) (Page[T], error)
	Search(ctx context.Context, term string, offset, limit int) (Page[T], error)
	Sort(ctx context.Context, order string, offset, limit int) (Page[T], error)
	Filter(ctx context.Context, facets Facets, offset, limit int) (Page[T], error)
}

// State is the controller's fetch lifecycle. Loaded and Failed are stable
// until the next SetMode/PageTo call; there is no automatic retry.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Request is a tagged fetch issued by the controller. The tag lets Apply
// discard responses that resolve after the controller has moved on.
type Request struct {
	seq    uint64
	mode   Mode
	offset int
	limit  int
}

// Mode returns the query mode the request was issued for.
func (r Request) Mode() Mode { return r.mode }

// Offset returns the page offset the request was issued for.
func (r Request) Offset() int { return r.offset }

// Limit returns the page size the request was issued for.
func (r Request) Limit() int { return r.limit }

// Result pairs a request with its resolution.
type Result[T any] struct {
	Request Request
	Page    Page[T]
	Err     error
}

// Controller coordinates page offset, active query mode and the fetched
// page for one collection view. State transitions are synchronous and
// effect-free; the network call happens in Fetch so callers decide where it
// runs (inline for JSON output, inside a bubbletea command for the TUI).
type Controller[T any] struct {
	source Source[T]
	limit  int

	mode   Mode
	offset int
	seq    uint64

	state     State
	page      Page[T]
	loaded    bool
	noMatches bool
	err       error
}

// New creates a controller over source with the given page size.
func New[T any](source Source[T], limit int) *Controller[T] {
	if limit <= 0 {
		limit = 1
	}
	return &Controller[T]{
		source: source,
		limit:  limit,
		mode:   List{},
		state:  StateIdle,
	}
}

// SetMode activates m, resetting the offset to 0 and entering Loading.
// Invalid modes (blank search term, empty facet selection, placeholder sort
// option) are rejected locally with a ValidationError and no state change.
func (c *Controller[T]) SetMode(m Mode) (Request, error) {
	valid, err := validateMode(m)
	if err != nil {
		return Request{}, err
	}
	c.mode = valid
	c.offset = 0
	return c.issue(), nil
}

// PageTo moves to 1-based page n under the active mode.
func (c *Controller[T]) PageTo(n int) (Request, error) {
	if n < 1 {
		return Request{}, fmt.Errorf("page number must be >= 1, got %d", n)
	}
	c.offset = (n - 1) * c.limit
	return c.issue(), nil
}

func (c *Controller[T]) issue() Request {
	c.seq++
	c.state = StateLoading
	return Request{seq: c.seq, mode: c.mode, offset: c.offset, limit: c.limit}
}

// Fetch performs the one network call described by req.
func (c *Controller[T]) Fetch(ctx context.Context, req Request) Result[T] {
	var (
		page Page[T]
		err  error
	)
	switch m := req.mode.(type) {
	case Search:
		page, err = c.source.Search(ctx, m.Term, req.offset, req.limit)
	case Sort:
		page, err = c.source.Sort(ctx, m.Order, req.offset, req.limit)
	case Filter:
		page, err = c.source.Filter(ctx, m.Facets, req.offset, req.limit)
	default:
		page, err = c.source.List(ctx, req.offset, req.limit)
	}
	return Result[T]{Request: req, Page: page, Err: err}
}

// Load is the synchronous convenience path: issue, fetch and apply in one
// call. TUI code uses the three steps separately.
func (c *Controller[T]) Load(ctx context.Context, m Mode) (Page[T], error) {
	req, err := c.SetMode(m)
	if err != nil {
		return Page[T]{}, err
	}
	c.Apply(c.Fetch(ctx, req))
	if c.state == StateFailed {
		return c.page, c.err
	}
	return c.page, nil
}

// LoadPage is the synchronous pagination path.
func (c *Controller[T]) LoadPage(ctx context.Context, n int) (Page[T], error) {
	req, err := c.PageTo(n)
	if err != nil {
		return Page[T]{}, err
	}
	c.Apply(c.Fetch(ctx, req))
	if c.state == StateFailed {
		return c.page, c.err
	}
	return c.page, nil
}

// Apply reconciles a resolved fetch into the controller. Stale results
// (issued before the most recent SetMode/PageTo) are discarded and Apply
// returns false. A no-results resolution becomes a valid empty Loaded page;
// any other failure keeps the previously loaded page visible.
func (c *Controller[T]) Apply(res Result[T]) bool {
	if res.Request.seq != c.seq {
		return false
	}
	switch {
	case res.Err == nil:
		c.page = res.Page
		c.loaded = true
		c.noMatches = false
		c.err = nil
		c.state = StateLoaded
	case errors.Is(res.Err, ErrNoResults):
		c.page = Page[T]{Offset: res.Request.offset, Limit: res.Request.limit}
		c.loaded = true
		c.noMatches = true
		c.err = nil
		c.state = StateLoaded
	default:
		c.err = res.Err
		c.state = StateFailed
		if !c.loaded {
			c.page = Page[T]{}
		}
	}
	return true
}

// Mode returns the active query mode.
func (c *Controller[T]) Mode() Mode { return c.mode }

// Offset returns the active page offset.
func (c *Controller[T]) Offset() int { return c.offset }

// Limit returns the configured page size.
func (c *Controller[T]) Limit() int { return c.limit }

// State returns the fetch lifecycle state.
func (c *Controller[T]) State() State { return c.state }

// InFlight reports whether a request is pending. Callers disable the
// controls that would issue an overlapping request while this is true.
func (c *Controller[T]) InFlight() bool { return c.state == StateLoading }

// Page returns the last loaded page.
func (c *Controller[T]) Page() Page[T] { return c.page }

// NoMatches reports whether the last resolution was a valid empty result.
func (c *Controller[T]) NoMatches() bool { return c.noMatches }

// Err returns the failure recorded by the last Apply, if any.
func (c *Controller[T]) Err() error { return c.err }

// CurrentPage returns the 1-based page number for the active offset.
func (c *Controller[T]) CurrentPage() int {
	return CurrentPage(c.offset, c.limit)
}

// TotalPages returns the page count under the active mode.
func (c *Controller[T]) TotalPages() int {
	return TotalPages(c.page.TotalCount, c.limit)
}
