package account

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nutriveg/nutriveg-cli/cli/cmd"
	"github.com/nutriveg/nutriveg-cli/cli/helpers"
	"github.com/nutriveg/nutriveg-cli/cli/tui/components"
)

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return cmd.ExecuteCommand(cobraCmd, cmd.ExecutorOptions{}, cmd.ModeHandlers{
				JSON: logoutJSON,
				TUI:  logoutTUI,
			}, args)
		},
	}
}

func logoutJSON(_ context.Context, _ *cobra.Command, executor *cmd.CommandExecutor, _ []string) error {
	if err := executor.Session().Logout(); err != nil {
		return err
	}
	return helpers.WriteJSON(map[string]string{"status": "logged out"})
}

func logoutTUI(_ context.Context, _ *cobra.Command, executor *cmd.CommandExecutor, _ []string) error {
	if err := executor.Session().Logout(); err != nil {
		return err
	}
	fmt.Println(components.TitleStyle.Render("Sessão encerrada."))
	return nil
}
