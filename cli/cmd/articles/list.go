package articles

import (
	"context"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/nutriveg/nutriveg-cli/cli/api"
	"github.com/nutriveg/nutriveg-cli/cli/cmd"
	"github.com/nutriveg/nutriveg-cli/cli/helpers"
	"github.com/nutriveg/nutriveg-cli/cli/tui/components"
	"github.com/nutriveg/nutriveg-cli/pkg/config"
)

func listCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Browse articles with search and sort",
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return cmd.ExecuteCommand(cobraCmd, cmd.ExecutorOptions{}, cmd.ModeHandlers{
				JSON: listJSON,
				TUI:  listTUI,
			}, args)
		},
	}
	cmd.AddListFlags(listCmd)
	return listCmd
}

func listJSON(ctx context.Context, cobraCmd *cobra.Command, executor *cmd.CommandExecutor, _ []string) error {
	controller, err := cmd.LoadList(ctx, cobraCmd, executor.Client().Articles(), nil)
	if err != nil {
		return err
	}
	return helpers.WriteJSON(cmd.NewPageOutput(controller))
}

func listTUI(ctx context.Context, cobraCmd *cobra.Command, executor *cmd.CommandExecutor, _ []string) error {
	_, limit, err := cmd.PageFlags(cobraCmd)
	if err != nil {
		return err
	}
	if limit <= 0 {
		limit = config.DefaultPageLimit
	}
	return components.RunBrowse(ctx, executor.Client().Articles(), limit, components.BrowseConfig[api.Article]{
		Title: "Artigos",
		Columns: []table.Column{
			{Title: "ID", Width: 6},
			{Title: "Artigo", Width: 40},
			{Title: "Nutricionista", Width: 24},
			{Title: "Publicado em", Width: 14},
		},
		Row: func(a api.Article) table.Row {
			return table.Row{a.ID.String(), a.Title, a.NutritionistName, a.PublicationDate}
		},
		Sorts: []components.SortChoice{
			{Label: "mais recentes", Order: "recent"},
			{Label: "mais antigos", Order: "oldest"},
			{Label: "mais vistos", Order: "mostViewed"},
		},
	})
}
