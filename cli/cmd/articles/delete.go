package articles

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/nutriveg/nutriveg-cli/cli/cmd"
	"github.com/nutriveg/nutriveg-cli/cli/helpers"
	"github.com/nutriveg/nutriveg-cli/cli/tui/components"
)

func deleteCmd() *cobra.Command {
	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an article you published",
		Args:  cobra.ExactArgs(1),
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return cmd.ExecuteCommand(cobraCmd, cmd.ExecutorOptions{RequireNutritionist: true}, cmd.ModeHandlers{
				JSON: deleteJSON,
				TUI:  deleteTUI,
			}, args)
		},
	}
	deleteCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
	return deleteCmd
}

func deleteJSON(ctx context.Context, _ *cobra.Command, executor *cmd.CommandExecutor, args []string) error {
	user, _ := executor.Session().Current()
	if err := executor.Client().Articles().Delete(ctx, args[0], user.ID); err != nil {
		return err
	}
	return helpers.WriteJSON(map[string]string{"id": args[0], "status": "deleted"})
}

func deleteTUI(ctx context.Context, cobraCmd *cobra.Command, executor *cmd.CommandExecutor, args []string) error {
	skipConfirm, err := cobraCmd.Flags().GetBool("yes")
	if err != nil {
		return err
	}
	if !skipConfirm {
		var confirmed bool
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("Excluir este artigo?").
				Description("Esta ação não pode ser desfeita.").
				Value(&confirmed),
		))
		completed, err := components.RunForm(ctx, form)
		if err != nil {
			return err
		}
		if !completed || !confirmed {
			return nil
		}
	}
	user, _ := executor.Session().Current()
	if err := executor.Client().Articles().Delete(ctx, args[0], user.ID); err != nil {
		return err
	}
	fmt.Println(components.TitleStyle.Render("Artigo excluído."))
	return nil
}
