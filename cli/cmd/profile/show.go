package profile

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nutriveg/nutriveg-cli/cli/api"
	"github.com/nutriveg/nutriveg-cli/cli/cmd"
	"github.com/nutriveg/nutriveg-cli/cli/helpers"
	"github.com/nutriveg/nutriveg-cli/cli/listing"
	"github.com/nutriveg/nutriveg-cli/cli/tui/components"
	"github.com/nutriveg/nutriveg-cli/pkg/logger"
)

func showCmd() *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show a profile with its published recipes and articles",
		Long:  "Shows a user profile. Without an id, shows your own profile (requires login).",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return cmd.ExecuteCommand(cobraCmd, cmd.ExecutorOptions{}, cmd.ModeHandlers{
				JSON: showJSON,
				TUI:  showTUI,
			}, args)
		},
	}
	showCmd.Flags().Int("recipes-page", 1, "Page of published recipes")
	showCmd.Flags().Int("articles-page", 1, "Page of published articles")
	return showCmd
}

// profileView is the assembled profile page. Recipes and articles may be
// absent when their fetches failed; Warning carries the combined message.
type profileView struct {
	User     *api.UserDetails                  `json:"user"`
	Recipes  *listing.Page[api.ProfileRecipe]  `json:"recipes,omitempty"`
	Articles *listing.Page[api.ProfileArticle] `json:"articles,omitempty"`
	Warning  string                            `json:"warning,omitempty"`
}

func resolveUserID(executor *cmd.CommandExecutor, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	user, ok := executor.Session().Current()
	if !ok {
		return "", helpers.NewCliError("NOT_LOGGED_IN", "Pass a profile id or log in to see your own profile.")
	}
	return user.ID, nil
}

func loadProfile(ctx context.Context, cobraCmd *cobra.Command, executor *cmd.CommandExecutor, args []string) (*profileView, error) {
	log := logger.FromContext(ctx)
	userID, err := resolveUserID(executor, args)
	if err != nil {
		return nil, err
	}
	users := executor.Client().Users()
	details, err := users.Details(ctx, userID)
	if err != nil {
		log.Debug("profile details fetch failed", "user", userID, "error", err)
		return nil, helpers.NewCliError("PROFILE_UNAVAILABLE", msgProfileFailed)
	}
	recipesPage, _ := cobraCmd.Flags().GetInt("recipes-page")
	articlesPage, _ := cobraCmd.Flags().GetInt("articles-page")
	if recipesPage < 1 {
		recipesPage = 1
	}
	if articlesPage < 1 {
		articlesPage = 1
	}
	view := &profileView{User: details}
	var recipesFailed, articlesFailed bool
	recipes, err := users.PublishedRecipes(ctx, userID, (recipesPage-1)*recipesPageLimit, recipesPageLimit)
	if err != nil {
		log.Debug("published recipes fetch failed", "user", userID, "error", err)
		recipesFailed = true
	} else {
		view.Recipes = &recipes
	}
	if details.IsNutritionist() {
		articles, err := users.PublishedArticles(ctx, userID, (articlesPage-1)*articlesPageLimit, articlesPageLimit)
		if err != nil {
			log.Debug("published articles fetch failed", "user", userID, "error", err)
			articlesFailed = true
		} else {
			view.Articles = &articles
		}
	}
	view.Warning = partialFailureMessage(recipesFailed, articlesFailed)
	return view, nil
}

func showJSON(ctx context.Context, cobraCmd *cobra.Command, executor *cmd.CommandExecutor, args []string) error {
	view, err := loadProfile(ctx, cobraCmd, executor, args)
	if err != nil {
		return err
	}
	return helpers.WriteJSON(view)
}

func showTUI(ctx context.Context, cobraCmd *cobra.Command, executor *cmd.CommandExecutor, args []string) error {
	view, err := loadProfile(ctx, cobraCmd, executor, args)
	if err != nil {
		return err
	}
	fmt.Println(renderProfile(view))
	if view.Warning != "" {
		helpers.OutputWarning(view.Warning, executor.Mode())
	}
	return nil
}

func renderProfile(view *profileView) string {
	user := view.User
	var b strings.Builder
	b.WriteString(components.TitleStyle.Render(user.Name) + "\n")
	meta := user.Type
	if user.City != "" {
		meta = fmt.Sprintf("%s • %s/%s", meta, user.City, user.State)
	}
	b.WriteString(components.SubtitleStyle.Render(meta) + "\n")
	if user.IsNutritionist() {
		b.WriteString(components.SubtitleStyle.Render(
			fmt.Sprintf("CRN %s • %s • foco: %s", user.CRN, user.Education, user.Focus)) + "\n")
	}
	if user.About != "" {
		b.WriteString("\n" + user.About + "\n")
	}
	if view.Recipes != nil {
		b.WriteString("\n" + components.TitleStyle.Render("Receitas publicadas") + "\n")
		if len(view.Recipes.Items) == 0 {
			b.WriteString(components.SubtitleStyle.Render("Nenhuma receita publicada.") + "\n")
		}
		for _, recipe := range view.Recipes.Items {
			b.WriteString(fmt.Sprintf("  %s  %s\n", recipe.ID.String(), recipe.Title))
		}
		if footer := components.Pagination(view.Recipes.Offset, view.Recipes.Limit, view.Recipes.TotalCount); footer != "" {
			b.WriteString(footer + "\n")
		}
	}
	if view.Articles != nil {
		b.WriteString("\n" + components.TitleStyle.Render("Artigos publicados") + "\n")
		if len(view.Articles.Items) == 0 {
			b.WriteString(components.SubtitleStyle.Render("Nenhum artigo publicado.") + "\n")
		}
		for _, article := range view.Articles.Items {
			b.WriteString(fmt.Sprintf("  %s  %s (%s)\n", article.ID.String(), article.Title, article.PublicationDate))
		}
		if footer := components.Pagination(view.Articles.Offset, view.Articles.Limit, view.Articles.TotalCount); footer != "" {
			b.WriteString(footer + "\n")
		}
	}
	return b.String()
}
