package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for the wizard UI
var (
	headerColor  = lipgloss.Color("#C792EA") // Magenta - titles
	cursorColor  = lipgloss.Color("#56C8D8") // Cyan - selected option
	successColor = lipgloss.Color("#43BF6D") // Green - success banners
	errorColor   = lipgloss.Color("#FF5555") // Red - failure banners
	warningColor = lipgloss.Color("#FFA500") // Orange - warnings
	mutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	textColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	// FallbackWidth and FallbackHeight are used when the terminal size
	// cannot be determined.
	FallbackWidth  = 80
	FallbackHeight = 24
)

// Palette is an immutable set of styles passed to the Screen. Callers share
// one value; nothing in the wizard mutates process-wide style state.
type Palette struct {
	Header   lipgloss.Style
	Subtitle lipgloss.Style
	Cursor   lipgloss.Style
	Option   lipgloss.Style
	Success  lipgloss.Style
	Fail     lipgloss.Style
	Warning  lipgloss.Style
	Muted    lipgloss.Style
	Text     lipgloss.Style

	// Box borders
	BoxBorder       lipgloss.Style
	DoubleBoxBorder lipgloss.Style
}

// DefaultPalette returns the standard wizard palette.
func DefaultPalette() Palette {
	return Palette{
		Header:   lipgloss.NewStyle().Foreground(headerColor).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(mutedColor),
		Cursor:   lipgloss.NewStyle().Foreground(cursorColor).Bold(true),
		Option:   lipgloss.NewStyle().Foreground(textColor),
		Success:  lipgloss.NewStyle().Foreground(successColor).Bold(true),
		Fail:     lipgloss.NewStyle().Foreground(errorColor).Bold(true),
		Warning:  lipgloss.NewStyle().Foreground(warningColor),
		Muted:    lipgloss.NewStyle().Foreground(mutedColor),
		Text:     lipgloss.NewStyle().Foreground(textColor),

		BoxBorder: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(mutedColor).
			Padding(0, 2),
		DoubleBoxBorder: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(warningColor).
			Padding(0, 2),
	}
}
