package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nutriveg/nutriveg-cli/cli/listing"
	"github.com/nutriveg/nutriveg-cli/pkg/config"
)

// AddListFlags registers the flags shared by every collection listing
// command. Filter facets are collection-specific and registered by the
// command itself.
func AddListFlags(cmd *cobra.Command) {
	cmd.Flags().String("search", "", "Search the collection by a free-text term")
	cmd.Flags().String("sort", "", "Sort order for the collection")
	cmd.Flags().Int("page", 1, "Page number to fetch")
	cmd.Flags().Int("limit", config.DefaultPageLimit, "Page size")
}

// ListModeFromFlags resolves the query mode from the listing flags. Search
// wins over sort, sort over filter facets. Validation of the chosen mode
// (blank term, empty facets) happens in the controller.
func ListModeFromFlags(cmd *cobra.Command, facets listing.Facets) (listing.Mode, error) {
	search, err := cmd.Flags().GetString("search")
	if err != nil {
		return nil, fmt.Errorf("failed to get search flag: %w", err)
	}
	sort, err := cmd.Flags().GetString("sort")
	if err != nil {
		return nil, fmt.Errorf("failed to get sort flag: %w", err)
	}
	switch {
	case cmd.Flags().Changed("search"):
		return listing.Search{Term: search}, nil
	case cmd.Flags().Changed("sort"):
		return listing.Sort{Order: sort}, nil
	case facets != nil && !facets.IsEmpty():
		return listing.Filter{Facets: facets}, nil
	default:
		return listing.List{}, nil
	}
}

// PageFlags returns the page number and limit flags.
func PageFlags(cmd *cobra.Command) (page, limit int, err error) {
	page, err = cmd.Flags().GetInt("page")
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get page flag: %w", err)
	}
	limit, err = cmd.Flags().GetInt("limit")
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get limit flag: %w", err)
	}
	return page, limit, nil
}

// PageOutput is the JSON shape printed by listing commands.
type PageOutput[T any] struct {
	Items      []T  `json:"items"`
	TotalCount int  `json:"totalCount"`
	Page       int  `json:"page"`
	TotalPages int  `json:"totalPages"`
	NoMatches  bool `json:"noMatches,omitempty"`
}

// NewPageOutput captures the controller's loaded page for JSON output.
func NewPageOutput[T any](c *listing.Controller[T]) PageOutput[T] {
	page := c.Page()
	items := page.Items
	if items == nil {
		items = []T{}
	}
	return PageOutput[T]{
		Items:      items,
		TotalCount: page.TotalCount,
		Page:       c.CurrentPage(),
		TotalPages: c.TotalPages(),
		NoMatches:  c.NoMatches(),
	}
}

// LoadList runs the synchronous listing path used by JSON handlers: set the
// mode, jump to the requested page and return the controller for output.
func LoadList[T any](ctx context.Context, cmd *cobra.Command, source listing.Source[T], facets listing.Facets) (*listing.Controller[T], error) {
	mode, err := ListModeFromFlags(cmd, facets)
	if err != nil {
		return nil, err
	}
	page, limit, err := PageFlags(cmd)
	if err != nil {
		return nil, err
	}
	controller := listing.New(source, limit)
	if _, err := controller.SetMode(mode); err != nil {
		return nil, err
	}
	if _, err := controller.LoadPage(ctx, page); err != nil {
		return nil, err
	}
	return controller, nil
}
