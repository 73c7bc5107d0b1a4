package helpers

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/nutriveg/nutriveg-cli/cli/tui/models"
)

// CliError is a structured error surfaced to the user. In JSON mode it is
// printed as a machine-readable object, in TUI mode as a styled banner.
type CliError struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *CliError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewCliError creates a structured CLI error.
func NewCliError(code, message string, details ...string) *CliError {
	err := &CliError{
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}

var errorBanner = lipgloss.NewStyle().
	Foreground(lipgloss.Color("196")).
	Bold(true)

var warnBanner = lipgloss.NewStyle().
	Foreground(lipgloss.Color("214")).
	Bold(true)

// OutputError prints err appropriately for the active mode.
func OutputError(err error, mode models.Mode) {
	if err == nil {
		return
	}
	if mode == models.ModeJSON {
		payload := err
		if _, ok := err.(*CliError); !ok {
			payload = NewCliError("ERROR", err.Error())
		}
		enc := json.NewEncoder(os.Stderr)
		enc.SetIndent("", "  ")
		_ = enc.Encode(payload)
		return
	}
	fmt.Fprintln(os.Stderr, errorBanner.Render("✗ ")+err.Error())
}

// OutputWarning prints a non-fatal notice for the active mode.
func OutputWarning(message string, mode models.Mode) {
	if mode == models.ModeJSON {
		_ = json.NewEncoder(os.Stderr).Encode(map[string]string{"warning": message})
		return
	}
	fmt.Fprintln(os.Stderr, warnBanner.Render("! ")+message)
}

// WriteJSON prints data as indented JSON on stdout.
func WriteJSON(data any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
