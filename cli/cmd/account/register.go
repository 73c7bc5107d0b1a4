package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/nutriveg/nutriveg-cli/cli/api"
	"github.com/nutriveg/nutriveg-cli/cli/cmd"
	"github.com/nutriveg/nutriveg-cli/cli/helpers"
	"github.com/nutriveg/nutriveg-cli/cli/tui/components"
)

func registerCmd() *cobra.Command {
	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "Create a member or nutritionist account",
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return cmd.ExecuteCommand(cobraCmd, cmd.ExecutorOptions{}, cmd.ModeHandlers{
				JSON: registerJSON,
				TUI:  registerTUI,
			}, args)
		},
	}
	registerCmd.Flags().String("name", "", "Full name")
	registerCmd.Flags().String("email", "", "Account email")
	registerCmd.Flags().String("password", "", "Account password")
	registerCmd.Flags().Bool("nutritionist", false, "Register as a nutritionist")
	registerCmd.Flags().String("crn", "", "Professional registration number (nutritionists)")
	registerCmd.Flags().String("education", "", "Education background (nutritionists)")
	registerCmd.Flags().String("focus", "", "Focus: vegan, vegetarian or veganAndVegetarian (nutritionists)")
	return registerCmd
}

func registerJSON(ctx context.Context, cobraCmd *cobra.Command, executor *cmd.CommandExecutor, _ []string) error {
	if err := cmd.ValidateRequiredFlags(cobraCmd, []string{"name", "email", "password"}); err != nil {
		return err
	}
	flags := cobraCmd.Flags()
	reg := api.Registration{Type: "membro"}
	reg.Name, _ = flags.GetString("name")
	reg.Email, _ = flags.GetString("email")
	reg.Password, _ = flags.GetString("password")
	if nutritionist, _ := flags.GetBool("nutritionist"); nutritionist {
		if err := cmd.ValidateRequiredFlags(cobraCmd, []string{"crn", "education", "focus"}); err != nil {
			return err
		}
		reg.Type = "nutricionista"
		reg.CRN, _ = flags.GetString("crn")
		reg.Education, _ = flags.GetString("education")
		focus, _ := flags.GetString("focus")
		reg.Focus = translateFocus(focus)
	}
	if err := executor.Client().Users().Register(ctx, reg); err != nil {
		return err
	}
	return helpers.WriteJSON(map[string]string{"status": "registered", "type": reg.Type})
}

func registerTUI(ctx context.Context, _ *cobra.Command, executor *cmd.CommandExecutor, _ []string) error {
	var (
		reg          api.Registration
		nutritionist bool
		focus        string
	)
	identity := huh.NewGroup(
		huh.NewInput().Title("Nome completo").Value(&reg.Name).
			Validate(notBlank("informe o nome")),
		huh.NewInput().Title("Email").Value(&reg.Email).
			Validate(func(value string) error {
				if !strings.Contains(value, "@") {
					return fmt.Errorf("informe um email válido")
				}
				return nil
			}),
		huh.NewInput().Title("Senha").Value(&reg.Password).EchoMode(huh.EchoModePassword).
			Validate(func(value string) error {
				if len(value) < 6 {
					return fmt.Errorf("a senha deve ter ao menos 6 caracteres")
				}
				return nil
			}),
		huh.NewConfirm().Title("Você é nutricionista?").Value(&nutritionist),
	)
	professional := huh.NewGroup(
		huh.NewInput().Title("CRN").Value(&reg.CRN).
			Validate(notBlank("informe o CRN")),
		huh.NewInput().Title("Formação").Value(&reg.Education).
			Validate(notBlank("informe a formação")),
		huh.NewSelect[string]().Title("Foco de atuação").
			Options(
				huh.NewOption("Vegano", "vegan"),
				huh.NewOption("Vegetariano", "vegetarian"),
				huh.NewOption("Vegano e vegetariano", "veganAndVegetarian"),
			).Value(&focus),
	).WithHideFunc(func() bool { return !nutritionist })

	completed, err := components.RunForm(ctx, huh.NewForm(identity, professional))
	if err != nil {
		return err
	}
	if !completed {
		return nil
	}
	reg.Type = "membro"
	if nutritionist {
		reg.Type = "nutricionista"
		reg.Focus = translateFocus(focus)
	}
	if err := executor.Client().Users().Register(ctx, reg); err != nil {
		return err
	}
	fmt.Println(components.TitleStyle.Render("Conta criada!") + " Faça login com 'nutriveg account login'.")
	return nil
}

func notBlank(message string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s", message)
		}
		return nil
	}
}
