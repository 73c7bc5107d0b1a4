package nutritionists

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/nutriveg/nutriveg-cli/cli/api"
	"github.com/nutriveg/nutriveg-cli/cli/cmd"
	"github.com/nutriveg/nutriveg-cli/cli/helpers"
	"github.com/nutriveg/nutriveg-cli/cli/tui/components"
	"github.com/nutriveg/nutriveg-cli/pkg/config"
)

// Cmd returns the nutritionists command group.
func Cmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "nutritionists",
		Short: "Browse nutritionist profiles",
	}
	root.AddCommand(listCmd())
	return root
}

func listCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Browse nutritionists with search and focus-based sort",
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
	controller, err := cmd.LoadList(ctx, cobraCmd, executor.Client().Nutritionists(), nil)
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
	return components.RunBrowse(ctx, executor.Client().Nutritionists(), limit, components.BrowseConfig[api.Nutritionist]{
		Title: "Nutricionistas",
		Columns: []table.Column{
			{Title: "ID", Width: 6},
			{Title: "Nome", Width: 26},
			{Title: "Foco", Width: 22},
			{Title: "Cidade", Width: 20},
			{Title: "Receitas", Width: 8},
		},
		Row: func(n api.Nutritionist) table.Row {
			city := n.City
			if n.State != "" {
				city = fmt.Sprintf("%s/%s", n.City, n.State)
			}
			return table.Row{n.ID.String(), n.Name, n.Focus, city, fmt.Sprintf("%d", n.NumberOfPublishedRecipes)}
		},
		Sorts: []components.SortChoice{
			{Label: "foco vegano", Order: "vegan"},
			{Label: "foco vegetariano", Order: "vegetarian"},
			{Label: "foco vegano e vegetariano", Order: "veganAndVegetarian"},
		},
	})
}
