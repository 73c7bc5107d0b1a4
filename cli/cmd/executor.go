package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nutriveg/nutriveg-cli/cli/api"
	"github.com/nutriveg/nutriveg-cli/cli/helpers"
	"github.com/nutriveg/nutriveg-cli/cli/listing"
	"github.com/nutriveg/nutriveg-cli/cli/session"
	"github.com/nutriveg/nutriveg-cli/cli/tui/models"
	"github.com/nutriveg/nutriveg-cli/pkg/config"
	"github.com/nutriveg/nutriveg-cli/pkg/logger"
)

// CommandExecutor handles common setup and execution patterns for CLI
// commands: mode detection, session resolution, client creation, context
// cancellation and error handling.
type CommandExecutor struct {
	mode    models.Mode
	config  *config.Config
	session *session.Store
	client  *api.Client
}

// HandlerFunc defines the signature for command handlers.
type HandlerFunc func(ctx context.Context, cmd *cobra.Command, executor *CommandExecutor, args []string) error

// ModeHandlers contains handlers for different execution modes.
type ModeHandlers struct {
	JSON HandlerFunc
	TUI  HandlerFunc
}

// ExecutorOptions allows customization of the command executor.
type ExecutorOptions struct {
	// RequireAuth fails fast when no session is stored.
	RequireAuth bool
	// RequireNutritionist additionally checks the session role. The server
	// enforces this too; checking locally saves a doomed upload.
	RequireNutritionist bool
}

// NewCommandExecutor creates a new command executor with all necessary setup.
func NewCommandExecutor(cmd *cobra.Command, opts ExecutorOptions) (*CommandExecutor, error) {
	ctx := cmd.Context()
	log := logger.FromContext(ctx)
	cfg := config.FromContext(ctx)
	if cfg == nil {
		return nil, fmt.Errorf("configuration not found in context")
	}
	mode := helpers.DetectMode(cmd)
	log.Debug("detected execution mode", "mode", mode)

	store := session.NewStore(cfg.CLI.CredentialsFile)
	if err := store.Load(); err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if opts.RequireAuth || opts.RequireNutritionist {
		user, ok := store.Current()
		if !ok {
			return nil, helpers.NewCliError("NOT_LOGGED_IN", "You are not logged in. Run 'nutriveg account login' first.")
		}
		if opts.RequireNutritionist && !user.IsNutritionist() {
			return nil, helpers.NewCliError("PERMISSION_DENIED", "This action is available to nutritionist accounts only.")
		}
	}
	client, err := api.NewClient(cfg, store)
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}
	return &CommandExecutor{
		mode:    mode,
		config:  cfg,
		session: store,
		client:  client,
	}, nil
}

// Execute runs the appropriate handler based on the detected mode.
func (e *CommandExecutor) Execute(ctx context.Context, cmd *cobra.Command, handlers ModeHandlers, args []string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	switch e.mode {
	case models.ModeJSON:
		if handlers.JSON == nil {
			return fmt.Errorf("JSON mode handler not implemented")
		}
		return handlers.JSON(ctx, cmd, e, args)
	case models.ModeTUI:
		if handlers.TUI == nil {
			return fmt.Errorf("TUI mode handler not implemented")
		}
		return handlers.TUI(ctx, cmd, e, args)
	default:
		return fmt.Errorf("unsupported mode: %s", e.mode)
	}
}

// Client returns the configured API client.
func (e *CommandExecutor) Client() *api.Client {
	return e.client
}

// Session returns the resolved session store.
func (e *CommandExecutor) Session() *session.Store {
	return e.session
}

// Config returns the active configuration.
func (e *CommandExecutor) Config() *config.Config {
	return e.config
}

// Mode returns the detected execution mode.
func (e *CommandExecutor) Mode() models.Mode {
	return e.mode
}

// ExecuteCommand is a convenience function that combines executor creation
// and execution.
func ExecuteCommand(cmd *cobra.Command, opts ExecutorOptions, handlers ModeHandlers, args []string) error {
	executor, err := NewCommandExecutor(cmd, opts)
	if err != nil {
		return HandleCommonErrors(err, helpers.DetectMode(cmd))
	}
	return HandleCommonErrors(executor.Execute(cmd.Context(), cmd, handlers, args), executor.Mode())
}

// ValidateRequiredFlags checks that all required flags are present and valid.
func ValidateRequiredFlags(cmd *cobra.Command, required []string) error {
	for _, flag := range required {
		if !cmd.Flags().Changed(flag) {
			return helpers.NewCliError("MISSING_FLAG", fmt.Sprintf("required flag '%s' not specified", flag))
		}
		if value, err := cmd.Flags().GetString(flag); err == nil && value == "" {
			return helpers.NewCliError("EMPTY_FLAG", fmt.Sprintf("required flag '%s' cannot be empty", flag))
		}
	}
	return nil
}

// HandleCommonErrors provides consistent error handling across all commands.
func HandleCommonErrors(err error, mode models.Mode) error {
	if err == nil {
		return nil
	}
	if cliErr := categorizeError(err); cliErr != nil {
		helpers.OutputError(cliErr, mode)
		return cliErr
	}
	helpers.OutputError(err, mode)
	return err
}

// categorizeError converts errors to structured CLI errors.
func categorizeError(err error) *helpers.CliError {
	var cliErr *helpers.CliError
	if errors.As(err, &cliErr) {
		return cliErr
	}
	var validationErr *listing.ValidationError
	switch {
	case errors.Is(err, context.Canceled):
		return helpers.NewCliError("OPERATION_CANCELED", "Operation was canceled by user")
	case errors.Is(err, context.DeadlineExceeded):
		return helpers.NewCliError("OPERATION_TIMEOUT", "Operation timed out")
	case errors.As(err, &validationErr):
		return helpers.NewCliError("VALIDATION_ERROR", validationErr.Message)
	case errors.Is(err, api.ErrSessionExpired):
		return helpers.NewCliError("SESSION_EXPIRED", "Your session has expired. Please log in again.")
	case errors.Is(err, api.ErrPermissionDenied):
		return helpers.NewCliError("PERMISSION_DENIED", "This action is restricted to nutritionists. You have been logged out.")
	case errors.Is(err, api.ErrNotOwner):
		return helpers.NewCliError("NOT_OWNER", "You can only modify content you published yourself.")
	case errors.Is(err, api.ErrAlreadyRated):
		return helpers.NewCliError("ALREADY_RATED", "You already rated this recipe.")
	case errors.Is(err, api.ErrInvalidCredentials):
		return helpers.NewCliError("INVALID_CREDENTIALS", "Invalid email or password.")
	case errors.Is(err, api.ErrEmailInUse):
		return helpers.NewCliError("EMAIL_IN_USE", "This email address already has an account.")
	case helpers.IsNetworkError(err):
		return helpers.NewCliError("NETWORK_ERROR", "Network connection failed", err.Error())
	case helpers.IsAuthError(err):
		return helpers.NewCliError("AUTH_ERROR", "Authentication failed", err.Error())
	default:
		return nil
	}
}
