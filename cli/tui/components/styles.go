package components

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Palette used across the TUI. Greens mirror the NutriVeg brand colors.
var (
	ColorPrimary = lipgloss.Color("#219653")
	ColorAccent  = lipgloss.Color("#48BB78")
	ColorText    = lipgloss.Color("#212529")
	ColorMuted   = lipgloss.Color("243")
	ColorError   = lipgloss.Color("196")
	ColorWarning = lipgloss.Color("214")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NoticeStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)

	SelectedPageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("255")).
				Background(ColorPrimary).
				Padding(0, 1)

	PageStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Padding(0, 1)

	DisabledArrowStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	ArrowStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)
)

// TerminalWidth returns the terminal width for static rendering, capped at
// max. Falls back to 80 columns when stdout is not a terminal.
func TerminalWidth(max int) int {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}
	if max > 0 && width > max {
		return max
	}
	return width
}
