package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nutriveg/nutriveg-cli/cli/cmd/account"
	"github.com/nutriveg/nutriveg-cli/cli/cmd/articles"
	"github.com/nutriveg/nutriveg-cli/cli/cmd/home"
	"github.com/nutriveg/nutriveg-cli/cli/cmd/nutritionists"
	"github.com/nutriveg/nutriveg-cli/cli/cmd/profile"
	"github.com/nutriveg/nutriveg-cli/cli/cmd/recipes"
	"github.com/nutriveg/nutriveg-cli/pkg/config"
	"github.com/nutriveg/nutriveg-cli/pkg/logger"
)

// RootCmd builds the nutriveg command tree. Configuration and logger are
// resolved once in the persistent pre-run and carried in the command
// context.
func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "nutriveg",
		Short:         "Terminal client for the NutriVeg nutrition platform",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cobraCmd *cobra.Command, _ []string) error {
			return setupContext(cobraCmd)
		},
	}

	root.PersistentFlags().String("output", "", "Output format: json, tui or auto")
	root.PersistentFlags().Bool("json", false, "Shorthand for --output json")
	root.PersistentFlags().Bool("tui", false, "Shorthand for --output tui")
	root.PersistentFlags().Bool("interactive", false, "Force interactive mode even without a terminal")
	root.PersistentFlags().Bool("no-color", false, "Disable colored output")
	root.PersistentFlags().String("base-url", "", "NutriVeg API base URL")
	root.PersistentFlags().String("credentials-file", "", "Path of the stored session credentials")
	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	root.PersistentFlags().Bool("log-json", false, "Emit logs as JSON")
	root.MarkFlagsMutuallyExclusive("output", "json")
	root.MarkFlagsMutuallyExclusive("output", "tui")
	root.MarkFlagsMutuallyExclusive("json", "tui")

	root.AddCommand(
		home.Cmd(),
		recipes.Cmd(),
		articles.Cmd(),
		nutritionists.Cmd(),
		account.Cmd(),
		profile.Cmd(),
	)
	return root
}

// setupContext loads the configuration, applies flag overrides and attaches
// configuration and logger to the command context.
func setupContext(cobraCmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := applyFlags(cobraCmd, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	log, err := logger.Setup(cfg.Runtime.LogLevel, cfg.Runtime.LogJSON)
	if err != nil {
		return err
	}
	ctx := cobraCmd.Context()
	ctx = config.ContextWithConfig(ctx, cfg)
	ctx = logger.ContextWithLogger(ctx, log)
	cobraCmd.SetContext(ctx)
	return nil
}

func applyFlags(cobraCmd *cobra.Command, cfg *config.Config) error {
	flags := cobraCmd.Flags()
	if flags.Changed("output") {
		output, err := flags.GetString("output")
		if err != nil {
			return fmt.Errorf("failed to get output flag: %w", err)
		}
		cfg.CLI.DefaultFormat = output
	}
	if jsonFlag, err := flags.GetBool("json"); err == nil && jsonFlag {
		cfg.CLI.DefaultFormat = "json"
	}
	if tuiFlag, err := flags.GetBool("tui"); err == nil && tuiFlag {
		cfg.CLI.DefaultFormat = "tui"
	}
	if interactive, err := flags.GetBool("interactive"); err == nil && interactive {
		cfg.CLI.Interactive = true
	}
	if noColor, err := flags.GetBool("no-color"); err == nil && noColor {
		cfg.CLI.NoColor = true
	}
	if flags.Changed("base-url") {
		baseURL, err := flags.GetString("base-url")
		if err != nil {
			return fmt.Errorf("failed to get base-url flag: %w", err)
		}
		cfg.API.BaseURL = baseURL
	}
	if flags.Changed("credentials-file") {
		credentials, err := flags.GetString("credentials-file")
		if err != nil {
			return fmt.Errorf("failed to get credentials-file flag: %w", err)
		}
		cfg.CLI.CredentialsFile = credentials
	}
	if flags.Changed("log-level") {
		level, err := flags.GetString("log-level")
		if err != nil {
			return fmt.Errorf("failed to get log-level flag: %w", err)
		}
		cfg.Runtime.LogLevel = level
	}
	if logJSON, err := flags.GetBool("log-json"); err == nil && logJSON {
		cfg.Runtime.LogJSON = true
	}
	return nil
}
