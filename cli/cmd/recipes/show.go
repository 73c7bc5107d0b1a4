package recipes

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nutriveg/nutriveg-cli/cli/api"
	"github.com/nutriveg/nutriveg-cli/cli/cmd"
	"github.com/nutriveg/nutriveg-cli/cli/helpers"
	"github.com/nutriveg/nutriveg-cli/cli/tui/components"
)

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a recipe with its ingredients, steps and rating",
		Args:  cobra.ExactArgs(1),
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return cmd.ExecuteCommand(cobraCmd, cmd.ExecutorOptions{}, cmd.ModeHandlers{
				JSON: showJSON,
				TUI:  showTUI,
			}, args)
		},
	}
}

func showJSON(ctx context.Context, _ *cobra.Command, executor *cmd.CommandExecutor, args []string) error {
	details, err := executor.Client().Recipes().Details(ctx, args[0])
	if err != nil {
		return err
	}
	return helpers.WriteJSON(struct {
		*api.RecipeDetails
		AverageRating float64 `json:"averageRating"`
	}{details, details.Ratings.Average()})
}

func showTUI(ctx context.Context, _ *cobra.Command, executor *cmd.CommandExecutor, args []string) error {
	details, err := executor.Client().Recipes().Details(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Println(renderRecipe(details))
	return nil
}

func renderRecipe(details *api.RecipeDetails) string {
	var b strings.Builder
	b.WriteString(components.TitleStyle.Render(details.Title) + "\n")
	b.WriteString(components.SubtitleStyle.Render(fmt.Sprintf(
		"por %s (%s) • %s", details.AuthorName, details.AuthorRole, details.PublishedAt)) + "\n\n")
	b.WriteString(details.Summary + "\n\n")
	b.WriteString(fmt.Sprintf("Preparo: %s • Rendimento: %s • Alimentação: %s\n",
		details.PreparationTime, details.Servings, details.Diet))
	if details.Ratings.Count > 0 {
		b.WriteString(fmt.Sprintf("Avaliação: %.1f (%d avaliações)\n",
			details.Ratings.Average(), details.Ratings.Count))
	} else {
		b.WriteString(components.SubtitleStyle.Render("Esta receita ainda não tem avaliações.") + "\n")
	}
	b.WriteString("\n" + components.TitleStyle.Render("Ingredientes") + "\n")
	for _, ingredient := range details.Ingredients {
		b.WriteString("  • " + ingredient + "\n")
	}
	b.WriteString("\n" + components.TitleStyle.Render("Modo de preparo") + "\n")
	for i, step := range details.PreparationSteps {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, step))
	}
	return b.String()
}
