package profile

import (
	"github.com/spf13/cobra"
)

// Recipes and articles on a profile page use smaller page sizes than the
// collection views.
const (
	recipesPageLimit  = 6
	articlesPageLimit = 4
)

// Combined failure messages for the profile page, keyed by which of the
// published-content fetches failed. A user-details failure aborts instead.
const (
	msgProfileFailed  = "Não foi possível carregar o perfil."
	msgBothFailed     = "Não foi possível carregar as receitas e artigos do perfil."
	msgRecipesFailed  = "Não foi possível carregar as receitas do perfil."
	msgArticlesFailed = "Não foi possível carregar os artigos do perfil."
)

// Cmd returns the profile command group.
func Cmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "profile",
		Short: "Show and edit user profiles",
	}
	root.AddCommand(
		showCmd(),
		editCmd(),
	)
	return root
}

func partialFailureMessage(recipesFailed, articlesFailed bool) string {
	switch {
	case recipesFailed && articlesFailed:
		return msgBothFailed
	case recipesFailed:
		return msgRecipesFailed
	case articlesFailed:
		return msgArticlesFailed
	}
	return ""
}
