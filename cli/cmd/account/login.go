package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/nutriveg/nutriveg-cli/cli/cmd"
	"github.com/nutriveg/nutriveg-cli/cli/helpers"
	"github.com/nutriveg/nutriveg-cli/cli/session"
	"github.com/nutriveg/nutriveg-cli/cli/tui/components"
	"github.com/nutriveg/nutriveg-cli/pkg/logger"
)

func loginCmd() *cobra.Command {
	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return cmd.ExecuteCommand(cobraCmd, cmd.ExecutorOptions{}, cmd.ModeHandlers{
				JSON: loginJSON,
				TUI:  loginTUI,
			}, args)
		},
	}
	loginCmd.Flags().String("email", "", "Account email")
	loginCmd.Flags().String("password", "", "Account password")
	return loginCmd
}

func login(ctx context.Context, executor *cmd.CommandExecutor, email, password string) (session.User, error) {
	token, err := executor.Client().Users().Login(ctx, email, password)
	if err != nil {
		return session.User{}, err
	}
	user, err := executor.Session().Login(token)
	if err != nil {
		return session.User{}, err
	}
	logger.FromContext(ctx).Debug("session stored", "user", user.ID, "role", user.Role)
	return user, nil
}

func loginJSON(ctx context.Context, cobraCmd *cobra.Command, executor *cmd.CommandExecutor, _ []string) error {
	if err := cmd.ValidateRequiredFlags(cobraCmd, []string{"email", "password"}); err != nil {
		return err
	}
	email, _ := cobraCmd.Flags().GetString("email")
	password, _ := cobraCmd.Flags().GetString("password")
	user, err := login(ctx, executor, email, password)
	if err != nil {
		return err
	}
	return helpers.WriteJSON(user)
}

func loginTUI(ctx context.Context, cobraCmd *cobra.Command, executor *cmd.CommandExecutor, _ []string) error {
	email, _ := cobraCmd.Flags().GetString("email")
	password, _ := cobraCmd.Flags().GetString("password")
	if email == "" || password == "" {
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Email").Value(&email).
				Validate(func(value string) error {
					if !strings.Contains(value, "@") {
						return fmt.Errorf("informe um email válido")
					}
					return nil
				}),
			huh.NewInput().Title("Senha").Value(&password).EchoMode(huh.EchoModePassword).
				Validate(func(value string) error {
					if value == "" {
						return fmt.Errorf("informe a senha")
					}
					return nil
				}),
		))
		completed, err := components.RunForm(ctx, form)
		if err != nil {
			return err
		}
		if !completed {
			return nil
		}
	}
	user, err := login(ctx, executor, email, password)
	if err != nil {
		return err
	}
	fmt.Println(components.TitleStyle.Render("Bem-vindo(a), " + user.Name + "!"))
	return nil
}
