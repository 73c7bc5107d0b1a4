package recipes

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nutriveg/nutriveg-cli/cli/cmd"
	"github.com/nutriveg/nutriveg-cli/cli/helpers"
	"github.com/nutriveg/nutriveg-cli/cli/tui/components"
)

func rateCmd() *cobra.Command {
	rateCmd := &cobra.Command{
		Use:   "rate <id>",
		Short: "Rate a recipe from 1 to 5",
		Args:  cobra.ExactArgs(1),
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return cmd.ExecuteCommand(cobraCmd, cmd.ExecutorOptions{RequireAuth: true}, cmd.ModeHandlers{
				JSON: rateJSON,
				TUI:  rateTUI,
			}, args)
		},
	}
	rateCmd.Flags().Int("score", 0, "Rating from 1 to 5")
	return rateCmd
}

func rate(ctx context.Context, cobraCmd *cobra.Command, executor *cmd.CommandExecutor, recipeID string) error {
	score, err := cobraCmd.Flags().GetInt("score")
	if err != nil {
		return fmt.Errorf("failed to get score flag: %w", err)
	}
	if score < 1 || score > 5 {
		return helpers.NewCliError("INVALID_SCORE", "score must be between 1 and 5")
	}
	user, _ := executor.Session().Current()
	return executor.Client().Recipes().Rate(ctx, recipeID, user.ID, score)
}

func rateJSON(ctx context.Context, cobraCmd *cobra.Command, executor *cmd.CommandExecutor, args []string) error {
	if err := rate(ctx, cobraCmd, executor, args[0]); err != nil {
		return err
	}
	return helpers.WriteJSON(map[string]string{"id": args[0], "status": "rated"})
}

func rateTUI(ctx context.Context, cobraCmd *cobra.Command, executor *cmd.CommandExecutor, args []string) error {
	if err := rate(ctx, cobraCmd, executor, args[0]); err != nil {
		return err
	}
	fmt.Println(components.TitleStyle.Render("Avaliação registrada!"))
	return nil
}
