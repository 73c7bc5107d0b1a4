package profile

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/nutriveg/nutriveg-cli/cli/api"
	"github.com/nutriveg/nutriveg-cli/cli/cmd"
	"github.com/nutriveg/nutriveg-cli/cli/helpers"
	"github.com/nutriveg/nutriveg-cli/cli/tui/components"
	"github.com/nutriveg/nutriveg-cli/pkg/logger"
)

func editCmd() *cobra.Command {
	editCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit your profile",
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return cmd.ExecuteCommand(cobraCmd, cmd.ExecutorOptions{RequireAuth: true}, cmd.ModeHandlers{
				JSON: editJSON,
				TUI:  editTUI,
			}, args)
		},
	}
	editCmd.Flags().String("name", "", "Full name")
	editCmd.Flags().String("email", "", "Account email")
	editCmd.Flags().String("about", "", "About text")
	editCmd.Flags().String("phone", "", "Phone number")
	editCmd.Flags().String("city", "", "City")
	editCmd.Flags().String("state", "", "State")
	editCmd.Flags().String("crn", "", "Professional registration number (nutritionists)")
	editCmd.Flags().String("education", "", "Education background (nutritionists)")
	editCmd.Flags().String("focus", "", "Focus of practice (nutritionists)")
	editCmd.Flags().String("website", "", "Website URL (nutritionists)")
	editCmd.Flags().String("instagram", "", "Instagram handle (nutritionists)")
	editCmd.Flags().String("linkedin", "", "LinkedIn URL (nutritionists)")
	editCmd.Flags().String("profile-picture", "", "Path to a new profile picture")
	editCmd.Flags().String("cover-picture", "", "Path to a new cover picture")
	return editCmd
}

// applyFlag keeps the stored value unless the flag was set on the command
// line, so edits are incremental.
func applyFlag(cobraCmd *cobra.Command, name, current string) string {
	if cobraCmd.Flags().Changed(name) {
		value, _ := cobraCmd.Flags().GetString(name)
		return value
	}
	return current
}

func editJSON(ctx context.Context, cobraCmd *cobra.Command, executor *cmd.CommandExecutor, _ []string) error {
	user, _ := executor.Session().Current()
	users := executor.Client().Users()
	details, err := users.Details(ctx, user.ID)
	if err != nil {
		return err
	}
	update := updateFromFlags(cobraCmd, details)
	if details.IsNutritionist() {
		err = users.UpdateNutritionist(ctx, user.ID, user.ID, update)
	} else {
		err = users.UpdateMember(ctx, user.ID, user.ID, update.MemberUpdate)
	}
	if err != nil {
		return err
	}
	if err := updatePictures(ctx, cobraCmd, executor); err != nil {
		return err
	}
	return helpers.WriteJSON(map[string]string{"status": "updated"})
}

func updateFromFlags(cobraCmd *cobra.Command, details *api.UserDetails) api.NutritionistUpdate {
	return api.NutritionistUpdate{
		MemberUpdate: api.MemberUpdate{
			Name:  applyFlag(cobraCmd, "name", details.Name),
			Email: applyFlag(cobraCmd, "email", details.Email),
			About: applyFlag(cobraCmd, "about", details.About),
			Phone: applyFlag(cobraCmd, "phone", details.Phone),
			City:  applyFlag(cobraCmd, "city", details.City),
			State: applyFlag(cobraCmd, "state", details.State),
		},
		CRN:       applyFlag(cobraCmd, "crn", details.CRN),
		Education: applyFlag(cobraCmd, "education", details.Education),
		Focus:     applyFlag(cobraCmd, "focus", details.Focus),
		Website:   applyFlag(cobraCmd, "website", details.Website),
		Instagram: applyFlag(cobraCmd, "instagram", details.Instagram),
		LinkedIn:  applyFlag(cobraCmd, "linkedin", details.LinkedIn),
	}
}

// updatePictures uploads any picture flags and refreshes the stored avatar
// override so the new picture shows up without a new token.
func updatePictures(ctx context.Context, cobraCmd *cobra.Command, executor *cmd.CommandExecutor) error {
	log := logger.FromContext(ctx)
	user, _ := executor.Session().Current()
	users := executor.Client().Users()
	for flag, kind := range map[string]string{
		"profile-picture": "profilePicture",
		"cover-picture":   "coverPicture",
	} {
		if !cobraCmd.Flags().Changed(flag) {
			continue
		}
		path, _ := cobraCmd.Flags().GetString(flag)
		if _, err := os.Stat(path); err != nil {
			return helpers.NewCliError("INVALID_IMAGE", fmt.Sprintf("cannot read image file %q", path))
		}
		refreshed, err := users.UpdatePicture(ctx, user.ID, user.ID, kind, path)
		if err != nil {
			return err
		}
		if kind == "profilePicture" && refreshed.ProfilePicture != "" {
			if err := executor.Session().SetProfilePicture(refreshed.ProfilePicture); err != nil {
				return err
			}
			log.Debug("avatar override refreshed", "picture", refreshed.ProfilePicture)
		}
	}
	return nil
}

func editTUI(ctx context.Context, cobraCmd *cobra.Command, executor *cmd.CommandExecutor, _ []string) error {
	user, _ := executor.Session().Current()
	users := executor.Client().Users()
	details, err := users.Details(ctx, user.ID)
	if err != nil {
		return err
	}
	update := updateFromFlags(cobraCmd, details)
	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewInput().Title("Nome").Value(&update.Name),
			huh.NewInput().Title("Email").Value(&update.Email),
			huh.NewText().Title("Sobre").Value(&update.About),
			huh.NewInput().Title("Telefone").Value(&update.Phone),
			huh.NewInput().Title("Cidade").Value(&update.City),
			huh.NewInput().Title("Estado").Value(&update.State),
		),
	}
	if details.IsNutritionist() {
		groups = append(groups, huh.NewGroup(
			huh.NewInput().Title("CRN").Value(&update.CRN),
			huh.NewInput().Title("Formação").Value(&update.Education),
			huh.NewInput().Title("Foco").Value(&update.Focus),
			huh.NewInput().Title("Website").Value(&update.Website),
			huh.NewInput().Title("Instagram").Value(&update.Instagram),
			huh.NewInput().Title("LinkedIn").Value(&update.LinkedIn),
		))
	}
	completed, err := components.RunForm(ctx, huh.NewForm(groups...))
	if err != nil {
		return err
	}
	if !completed {
		return nil
	}
	if details.IsNutritionist() {
		err = users.UpdateNutritionist(ctx, user.ID, user.ID, update)
	} else {
		err = users.UpdateMember(ctx, user.ID, user.ID, update.MemberUpdate)
	}
	if err != nil {
		return err
	}
	if err := updatePictures(ctx, cobraCmd, executor); err != nil {
		return err
	}
	fmt.Println(components.TitleStyle.Render("Perfil atualizado!"))
	return nil
}
