package recipes

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/nutriveg/nutriveg-cli/cli/api"
	"github.com/nutriveg/nutriveg-cli/cli/cmd"
	"github.com/nutriveg/nutriveg-cli/cli/helpers"
	"github.com/nutriveg/nutriveg-cli/cli/tui/components"
	"github.com/nutriveg/nutriveg-cli/pkg/logger"
)

func createCmd() *cobra.Command {
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Publish a new recipe",
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return cmd.ExecuteCommand(cobraCmd, cmd.ExecutorOptions{RequireAuth: true}, cmd.ModeHandlers{
				JSON: createJSON,
				TUI:  createTUI,
			}, args)
		},
	}
	createCmd.Flags().String("title", "", "Recipe name")
	createCmd.Flags().String("summary", "", "Short introduction")
	createCmd.Flags().String("diet", "", "Diet: vegan or vegetarian")
	createCmd.Flags().String("time", "", "Preparation time (e.g. '40 minutos')")
	createCmd.Flags().String("servings", "", "Yield (e.g. '4 porções')")
	createCmd.Flags().String("image", "", "Path to the recipe image")
	createCmd.Flags().StringSlice("category", nil, "Categories (e.g. almoco, sobremesa)")
	createCmd.Flags().StringSlice("ingredient", nil, "Ingredients, one per flag")
	createCmd.Flags().StringSlice("step", nil, "Preparation steps, one per flag")
	return createCmd
}

func createJSON(ctx context.Context, cobraCmd *cobra.Command, executor *cmd.CommandExecutor, _ []string) error {
	if err := cmd.ValidateRequiredFlags(cobraCmd, []string{"title", "summary", "diet", "time", "servings", "image"}); err != nil {
		return err
	}
	recipe, err := recipeFromFlags(cobraCmd, executor)
	if err != nil {
		return err
	}
	id, err := executor.Client().Recipes().Create(ctx, recipe)
	if err != nil {
		return err
	}
	return helpers.WriteJSON(map[string]string{"id": id, "status": "published"})
}

func recipeFromFlags(cobraCmd *cobra.Command, executor *cmd.CommandExecutor) (api.NewRecipe, error) {
	user, _ := executor.Session().Current()
	flags := cobraCmd.Flags()
	title, _ := flags.GetString("title")
	summary, _ := flags.GetString("summary")
	diet, _ := flags.GetString("diet")
	prepTime, _ := flags.GetString("time")
	servings, _ := flags.GetString("servings")
	image, _ := flags.GetString("image")
	categories, _ := flags.GetStringSlice("category")
	ingredients, _ := flags.GetStringSlice("ingredient")
	steps, _ := flags.GetStringSlice("step")
	if len(ingredients) == 0 || len(steps) == 0 {
		return api.NewRecipe{}, helpers.NewCliError("MISSING_FLAG", "at least one --ingredient and one --step are required")
	}
	if _, err := os.Stat(image); err != nil {
		return api.NewRecipe{}, helpers.NewCliError("INVALID_IMAGE", fmt.Sprintf("cannot read image file %q", image))
	}
	return api.NewRecipe{
		UserID:           user.ID,
		ImagePath:        image,
		Categories:       categories,
		Diet:             translateDiets([]string{diet})[0],
		PreparationTime:  prepTime,
		Servings:         servings,
		Title:            title,
		Summary:          summary,
		Ingredients:      ingredients,
		PreparationSteps: steps,
	}, nil
}

func createTUI(ctx context.Context, _ *cobra.Command, executor *cmd.CommandExecutor, _ []string) error {
	log := logger.FromContext(ctx)
	user, _ := executor.Session().Current()

	var (
		title       string
		summary     string
		diet        string
		prepTime    string
		servings    string
		image       string
		categories  string
		ingredients string
		steps       string
	)
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Nome da receita").Value(&title).
				Validate(required("informe o nome da receita")),
			huh.NewText().Title("Introdução").Value(&summary).
				Validate(required("informe a introdução")),
			huh.NewSelect[string]().Title("Alimentação").
				Options(
					huh.NewOption("Vegana", "vegano"),
					huh.NewOption("Vegetariana", "vegetariano"),
				).Value(&diet),
		),
		huh.NewGroup(
			huh.NewInput().Title("Tempo de preparo").Value(&prepTime),
			huh.NewInput().Title("Rendimento").Value(&servings),
			huh.NewInput().Title("Categorias (separadas por vírgula)").Value(&categories),
			huh.NewInput().Title("Imagem (caminho do arquivo)").Value(&image).
				Validate(func(path string) error {
					if _, err := os.Stat(path); err != nil {
						return fmt.Errorf("arquivo não encontrado")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewText().Title("Ingredientes (um por linha)").Value(&ingredients).
				Validate(required("informe ao menos um ingrediente")),
			huh.NewText().Title("Modo de preparo (um passo por linha)").Value(&steps).
				Validate(required("informe ao menos um passo")),
		),
	)
	completed, err := components.RunForm(ctx, form)
	if err != nil {
		return err
	}
	if !completed {
		log.Debug("recipe form canceled")
		return nil
	}
	id, err := executor.Client().Recipes().Create(ctx, api.NewRecipe{
		UserID:           user.ID,
		ImagePath:        image,
		Categories:       splitList(categories, ","),
		Diet:             diet,
		PreparationTime:  prepTime,
		Servings:         servings,
		Title:            title,
		Summary:          summary,
		Ingredients:      splitList(ingredients, "\n"),
		PreparationSteps: splitList(steps, "\n"),
	})
	if err != nil {
		return err
	}
	fmt.Println(components.TitleStyle.Render("Receita publicada!") + " id: " + id)
	return nil
}

func required(message string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s", message)
		}
		return nil
	}
}

func splitList(value, sep string) []string {
	var out []string
	for _, part := range strings.Split(value, sep) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
