package models

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Mode represents the output mode for CLI commands.
type Mode string

const (
	// ModeTUI represents interactive terminal mode.
	ModeTUI Mode = "tui"
	// ModeJSON represents non-interactive JSON output mode.
	ModeJSON Mode = "json"
)

// BaseModel provides common state for all TUI models.
type BaseModel struct {
	ctx      context.Context
	width    int
	height   int
	ready    bool
	quitting bool
	err      error
}

// NewBaseModel creates a new base model.
func NewBaseModel(ctx context.Context) BaseModel {
	return BaseModel{ctx: ctx}
}

// Context returns the context the model was started with.
func (m BaseModel) Context() context.Context {
	return m.ctx
}

// Size returns the terminal size.
func (m BaseModel) Size() (width, height int) {
	return m.width, m.height
}

// IsReady reports whether a window size has been received.
func (m BaseModel) IsReady() bool {
	return m.ready
}

// IsQuitting reports whether the model is shutting down.
func (m BaseModel) IsQuitting() bool {
	return m.quitting
}

// Error returns the fatal error, if any.
func (m BaseModel) Error() error {
	return m.err
}

// SetSize records the terminal size.
func (m *BaseModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.ready = true
}

// SetError records a fatal error.
func (m *BaseModel) SetError(err error) {
	m.err = err
}

// Quit marks the model as quitting.
func (m *BaseModel) Quit() {
	m.quitting = true
}

// Update handles messages common to all models.
func (m *BaseModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.Quit()
			return tea.Quit
		}
	}
	return nil
}
