package recipes

import (
	"context"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/nutriveg/nutriveg-cli/cli/api"
	"github.com/nutriveg/nutriveg-cli/cli/cmd"
	"github.com/nutriveg/nutriveg-cli/cli/helpers"
	"github.com/nutriveg/nutriveg-cli/cli/listing"
	"github.com/nutriveg/nutriveg-cli/cli/tui/components"
	"github.com/nutriveg/nutriveg-cli/pkg/config"
	"github.com/nutriveg/nutriveg-cli/pkg/logger"
)

func listCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Browse recipes with search, sort and filters",
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return cmd.ExecuteCommand(cobraCmd, cmd.ExecutorOptions{}, cmd.ModeHandlers{
				JSON: listJSON,
				TUI:  listTUI,
			}, args)
		},
	}
	cmd.AddListFlags(listCmd)
	listCmd.Flags().StringSlice("category", nil, "Filter by category (e.g. almoco, sobremesa)")
	listCmd.Flags().StringSlice("diet", nil, "Filter by diet: vegan or vegetarian")
	listCmd.Flags().StringSlice("publisher", nil, "Filter by publisher type: membro or nutricionista")
	return listCmd
}

func listJSON(ctx context.Context, cobraCmd *cobra.Command, executor *cmd.CommandExecutor, _ []string) error {
	facets, err := facetsFromFlags(cobraCmd)
	if err != nil {
		return err
	}
	controller, err := cmd.LoadList(ctx, cobraCmd, executor.Client().Recipes(), facets)
	if err != nil {
		return err
	}
	return helpers.WriteJSON(cmd.NewPageOutput(controller))
}

func listTUI(ctx context.Context, cobraCmd *cobra.Command, executor *cmd.CommandExecutor, _ []string) error {
	log := logger.FromContext(ctx)
	log.Debug("browsing recipes in TUI mode")
	_, limit, err := cmd.PageFlags(cobraCmd)
	if err != nil {
		return err
	}
	if limit <= 0 {
		limit = config.DefaultPageLimit
	}
	return components.RunBrowse(ctx, executor.Client().Recipes(), limit, components.BrowseConfig[api.Recipe]{
		Title: "Receitas",
		Columns: []table.Column{
			{Title: "ID", Width: 6},
			{Title: "Receita", Width: 32},
			{Title: "Introdução", Width: 48},
		},
		Row: func(r api.Recipe) table.Row {
			return table.Row{r.ID.String(), r.Title, r.Summary}
		},
		Sorts: []components.SortChoice{
			{Label: "mais recentes", Order: "recent"},
			{Label: "mais antigas", Order: "oldest"},
			{Label: "melhor avaliadas", Order: "bestRated"},
		},
		Filters: []components.FilterChoice{
			{Label: "veganas", Facets: listing.Facets{"alimentacao": {"vegano"}}},
			{Label: "vegetarianas", Facets: listing.Facets{"alimentacao": {"vegetariano"}}},
			{Label: "de nutricionistas", Facets: listing.Facets{"publicadoPor": {"nutricionista"}}},
		},
	})
}
