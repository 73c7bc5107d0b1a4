package home

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nutriveg/nutriveg-cli/cli/api"
	"github.com/nutriveg/nutriveg-cli/cli/cmd"
	"github.com/nutriveg/nutriveg-cli/cli/helpers"
	"github.com/nutriveg/nutriveg-cli/cli/tui/components"
	"github.com/nutriveg/nutriveg-cli/pkg/logger"
)

// Rail sizes of the home page.
const (
	recentByNutritionistsLimit = 4
	bestRatedLimit             = 6
	mostViewedLimit            = 3
)

// Cmd returns the home command: the platform's landing-page rails.
func Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Show highlighted recipes and articles",
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return cmd.ExecuteCommand(cobraCmd, cmd.ExecutorOptions{}, cmd.ModeHandlers{
				JSON: homeJSON,
				TUI:  homeTUI,
			}, args)
		},
	}
}

type homeView struct {
	RecentByNutritionists []api.HighlightRecipe `json:"recentByNutritionists,omitempty"`
	BestRated             []api.Recipe          `json:"bestRated,omitempty"`
	MostViewed            []api.Article         `json:"mostViewed,omitempty"`
}

// loadHome assembles the three rails. Each rail fails independently; an
// empty rail is simply omitted.
func loadHome(ctx context.Context, executor *cmd.CommandExecutor) *homeView {
	log := logger.FromContext(ctx)
	client := executor.Client()
	view := &homeView{}
	recent, err := client.Recipes().RecentByNutritionists(ctx, recentByNutritionistsLimit)
	if err != nil {
		log.Debug("recent-by-nutritionists rail failed", "error", err)
	} else {
		view.RecentByNutritionists = recent
	}
	bestRated, err := client.Recipes().Sort(ctx, "bestRated", 0, bestRatedLimit)
	if err != nil {
		log.Debug("best-rated rail failed", "error", err)
	} else {
		view.BestRated = bestRated.Items
	}
	mostViewed, err := client.Articles().Sort(ctx, "mostViewed", 0, mostViewedLimit)
	if err != nil {
		log.Debug("most-viewed rail failed", "error", err)
	} else {
		view.MostViewed = mostViewed.Items
	}
	return view
}

func homeJSON(ctx context.Context, _ *cobra.Command, executor *cmd.CommandExecutor, _ []string) error {
	return helpers.WriteJSON(loadHome(ctx, executor))
}

func homeTUI(ctx context.Context, _ *cobra.Command, executor *cmd.CommandExecutor, _ []string) error {
	view := loadHome(ctx, executor)
	var b strings.Builder
	b.WriteString(components.TitleStyle.Render("NutriVeg") + "\n")
	if len(view.RecentByNutritionists) > 0 {
		b.WriteString("\n" + components.TitleStyle.Render("Novas receitas de nutricionistas") + "\n")
		for _, recipe := range view.RecentByNutritionists {
			b.WriteString(fmt.Sprintf("  %s  %s\n", recipe.ID.String(), recipe.Title))
		}
	}
	if len(view.BestRated) > 0 {
		b.WriteString("\n" + components.TitleStyle.Render("Receitas melhor avaliadas") + "\n")
		for _, recipe := range view.BestRated {
			b.WriteString(fmt.Sprintf("  %s  %s\n", recipe.ID.String(), recipe.Title))
		}
	}
	if len(view.MostViewed) > 0 {
		b.WriteString("\n" + components.TitleStyle.Render("Artigos mais vistos") + "\n")
		for _, article := range view.MostViewed {
			b.WriteString(fmt.Sprintf("  %s  %s por %s\n", article.ID.String(), article.Title, article.NutritionistName))
		}
	}
	fmt.Println(b.String())
	return nil
}
