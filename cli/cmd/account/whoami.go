package account

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nutriveg/nutriveg-cli/cli/cmd"
	"github.com/nutriveg/nutriveg-cli/cli/helpers"
	"github.com/nutriveg/nutriveg-cli/cli/tui/components"
)

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return cmd.ExecuteCommand(cobraCmd, cmd.ExecutorOptions{}, cmd.ModeHandlers{
				JSON: whoamiJSON,
				TUI:  whoamiTUI,
			}, args)
		},
	}
}

func whoamiJSON(_ context.Context, _ *cobra.Command, executor *cmd.CommandExecutor, _ []string) error {
	user, ok := executor.Session().Current()
	if !ok {
		return helpers.WriteJSON(map[string]any{"loggedIn": false})
	}
	return helpers.WriteJSON(struct {
		LoggedIn bool   `json:"loggedIn"`
		ID       string `json:"id"`
		Name     string `json:"name"`
		Role     string `json:"role"`
	}{true, user.ID, user.Name, string(user.Role)})
}

func whoamiTUI(_ context.Context, _ *cobra.Command, executor *cmd.CommandExecutor, _ []string) error {
	user, ok := executor.Session().Current()
	if !ok {
		fmt.Println(components.SubtitleStyle.Render("Você não está logado."))
		return nil
	}
	fmt.Println(components.TitleStyle.Render(user.Name))
	fmt.Println(components.SubtitleStyle.Render(fmt.Sprintf("id %s • %s", user.ID, user.Role)))
	return nil
}
