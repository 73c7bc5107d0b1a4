package articles

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/microcosm-cc/bluemonday"
	"github.com/spf13/cobra"

	"github.com/nutriveg/nutriveg-cli/cli/api"
	"github.com/nutriveg/nutriveg-cli/cli/cmd"
	"github.com/nutriveg/nutriveg-cli/cli/helpers"
	"github.com/nutriveg/nutriveg-cli/cli/tui/components"
)

// bodyPolicy keeps the formatting tags the platform's article editor
// produces and drops everything else before upload.
var bodyPolicy = bluemonday.UGCPolicy()

func createCmd() *cobra.Command {
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Publish a new article (nutritionists only)",
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return cmd.ExecuteCommand(cobraCmd, cmd.ExecutorOptions{RequireNutritionist: true}, cmd.ModeHandlers{
				JSON: createJSON,
				TUI:  createTUI,
			}, args)
		},
	}
	createCmd.Flags().String("title", "", "Article title")
	createCmd.Flags().String("image", "", "Path to the cover image")
	createCmd.Flags().String("body-file", "", "Path to a file with the article body (HTML or plain text)")
	return createCmd
}

func createJSON(ctx context.Context, cobraCmd *cobra.Command, executor *cmd.CommandExecutor, _ []string) error {
	if err := cmd.ValidateRequiredFlags(cobraCmd, []string{"title", "image", "body-file"}); err != nil {
		return err
	}
	flags := cobraCmd.Flags()
	title, _ := flags.GetString("title")
	image, _ := flags.GetString("image")
	bodyFile, _ := flags.GetString("body-file")
	body, err := os.ReadFile(bodyFile)
	if err != nil {
		return helpers.NewCliError("INVALID_BODY", fmt.Sprintf("cannot read body file %q", bodyFile))
	}
	id, err := publish(ctx, executor, title, image, string(body))
	if err != nil {
		return err
	}
	return helpers.WriteJSON(map[string]string{"id": id, "status": "published"})
}

func createTUI(ctx context.Context, _ *cobra.Command, executor *cmd.CommandExecutor, _ []string) error {
	var (
		title string
		image string
		body  string
	)
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Título do artigo").Value(&title).
				Validate(func(value string) error {
					if strings.TrimSpace(value) == "" {
						return fmt.Errorf("informe o título")
					}
					return nil
				}),
			huh.NewInput().Title("Imagem de capa (caminho do arquivo)").Value(&image).
				Validate(func(path string) error {
					if _, err := os.Stat(path); err != nil {
						return fmt.Errorf("arquivo não encontrado")
					}
					return nil
				}),
			huh.NewText().Title("Texto do artigo").Value(&body).
				Validate(func(value string) error {
					if strings.TrimSpace(value) == "" {
						return fmt.Errorf("informe o texto do artigo")
					}
					return nil
				}),
		),
	)
	completed, err := components.RunForm(ctx, form)
	if err != nil {
		return err
	}
	if !completed {
		return nil
	}
	id, err := publish(ctx, executor, title, image, body)
	if err != nil {
		return err
	}
	fmt.Println(components.TitleStyle.Render("Artigo publicado!") + " id: " + id)
	return nil
}

func publish(ctx context.Context, executor *cmd.CommandExecutor, title, image, body string) (string, error) {
	user, _ := executor.Session().Current()
	return executor.Client().Articles().Create(ctx, api.NewArticle{
		NutritionistID: user.ID,
		ImagePath:      image,
		Title:          title,
		Text:           bodyPolicy.Sanitize(body),
	})
}
