package articles

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/microcosm-cc/bluemonday"
	"github.com/spf13/cobra"

	"github.com/nutriveg/nutriveg-cli/cli/api"
	"github.com/nutriveg/nutriveg-cli/cli/cmd"
	"github.com/nutriveg/nutriveg-cli/cli/helpers"
	"github.com/nutriveg/nutriveg-cli/cli/tui/components"
)

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show an article",
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
	details, err := executor.Client().Articles().Details(ctx, args[0])
	if err != nil {
		return err
	}
	return helpers.WriteJSON(details)
}

func showTUI(ctx context.Context, _ *cobra.Command, executor *cmd.CommandExecutor, args []string) error {
	details, err := executor.Client().Articles().Details(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Println(renderArticle(details))
	return nil
}

// plainText strips the article's rich-text markup down to terminal-safe
// text.
var plainText = bluemonday.StrictPolicy()

func renderArticle(details *api.ArticleDetails) string {
	var b strings.Builder
	b.WriteString(components.TitleStyle.Render(details.Title) + "\n")
	b.WriteString(components.SubtitleStyle.Render(fmt.Sprintf(
		"por %s • %s • %s", details.NutritionistName, details.NutritionistFocus, details.PublicationDate)) + "\n\n")
	body := html.UnescapeString(plainText.Sanitize(details.Text))
	b.WriteString(lipgloss.NewStyle().Width(components.TerminalWidth(100)).Render(body) + "\n")
	return b.String()
}
