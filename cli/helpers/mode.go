package helpers

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/nutriveg/nutriveg-cli/cli/tui/models"
	"github.com/nutriveg/nutriveg-cli/pkg/config"
)

// isRunningInCI checks if we're running in a CI/CD environment
func isRunningInCI() bool {
	if os.Getenv("CI") != "" {
		return true
	}
	ciVars := []string{
		"JENKINS_HOME",
		"GITHUB_ACTIONS",
		"GITLAB_CI",
		"CIRCLECI",
		"TRAVIS",
		"BUILDKITE",
		"DRONE",
		"TEAMCITY_VERSION",
		"CONTINUOUS_INTEGRATION",
	}
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}

// checkExplicitFormat resolves the mode when the configuration pins one.
// "auto" falls through to environment detection.
func checkExplicitFormat(cfg *config.Config) (models.Mode, bool) {
	switch cfg.CLI.DefaultFormat {
	case string(models.ModeJSON):
		return models.ModeJSON, true
	case string(models.ModeTUI):
		return models.ModeTUI, true
	default:
		return models.ModeJSON, false
	}
}

// isInteractiveEnvironment checks if we're in an interactive environment
func isInteractiveEnvironment(cfg *config.Config) bool {
	// Allow user to override auto-detection
	if cfg.CLI.Interactive {
		return true
	}
	if isRunningInCI() {
		return false
	}
	stdinIsTerminal := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	stdoutIsTerminal := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if !stdinIsTerminal || !stdoutIsTerminal {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	term := os.Getenv("TERM")
	if term == "dumb" || term == "" {
		return false
	}
	return true
}

// DetectMode resolves the output mode from configuration and environment.
// Without a configuration in context it falls back to JSON, the safe mode
// for scripted use.
func DetectMode(cmd *cobra.Command) models.Mode {
	cfg := config.FromContext(cmd.Context())
	if cfg == nil {
		return models.ModeJSON
	}
	if mode, found := checkExplicitFormat(cfg); found {
		return mode
	}
	if isInteractiveEnvironment(cfg) {
		return models.ModeTUI
	}
	return models.ModeJSON
}

// ShouldUseColor determines if colored output should be used
func ShouldUseColor(cmd *cobra.Command) bool {
	cfg := config.FromContext(cmd.Context())
	if cfg != nil && cfg.CLI.NoColor {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return false
	}
	if isRunningInCI() {
		return false
	}
	term := os.Getenv("TERM")
	if term == "dumb" || term == "" {
		return false
	}
	return true
}
