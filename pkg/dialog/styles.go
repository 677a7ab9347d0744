package dialog

import (
	"github.com/charmbracelet/lipgloss"
)

// Layout constants
const (
	// DefaultMinWidth is the dialog content width used when a spec does not
	// declare its own minimum.
	DefaultMinWidth = 60

	// frameOverhead is the horizontal space consumed by the dialog border
	// and padding.
	frameOverhead = 6
)

// Color palette
var (
	// Primary colors
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	WarningColor   = lipgloss.Color("#FFA500") // Orange
	ErrorColor     = lipgloss.Color("#FF0000") // Red

	// Neutral colors
	TextColor      = lipgloss.Color("#FFFFFF") // White
	SubtleColor    = lipgloss.Color("#626262") // Gray
	BorderColor    = lipgloss.Color("#7D56F4") // Purple (same as primary)
	HighlightColor = lipgloss.Color("#43BF6D") // Green (same as secondary)
)

// Common styles
var (
	// Title bar across the top of the dialog
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			MarginBottom(1)

	// Field label (unfocused)
	LabelStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// Field label (focused)
	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(HighlightColor).
				Bold(true)

	// Muted help text rendered after a label
	HelpTextStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	// Focused control (cyclers, checkboxes)
	FocusedInputStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	// Blurred control
	BlurredInputStyle = lipgloss.NewStyle().
				Foreground(SubtleColor)

	// Inline validation message under a field
	FieldErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// Inline warning message under a field
	FieldWarningStyle = lipgloss.NewStyle().
				Foreground(WarningColor)

	// Action bar button (unfocused)
	ButtonStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Padding(0, 1)

	// Action bar button (focused)
	FocusedButtonStyle = lipgloss.NewStyle().
				Foreground(HighlightColor).
				Bold(true).
				Padding(0, 1)

	// Separator between the fields and the action bar
	SeparatorStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// Help bar at the bottom of the dialog
	HelpBarStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			MarginTop(1)

	// Dialog frame
	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(1, 2)

	// Warning confirmation overlay
	WarningBoxStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(WarningColor).
			Padding(1, 2)
)

// RenderOverlay centers a modal box over the dialog, dimming the
// surrounding cells so attention lands on the box.
func RenderOverlay(content string, terminalWidth, terminalHeight int) string {
	if terminalWidth <= 0 || terminalHeight <= 0 {
		return content
	}
	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Center,
		lipgloss.Center,
		content,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("240")),
	)
}
