package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for frame titles
	ColorHighlight = "205" // Magenta - for the highlighted choice
	ColorDanger    = "196" // Red - for errors
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
)

// Styles contains all styles for the quickpick UI
type Styles struct {
	FrameTitle lipgloss.Style
	Border     lipgloss.Style
	Selected   lipgloss.Style
	Normal     lipgloss.Style
	Muted      lipgloss.Style
	Error      lipgloss.Style
}

// DefaultStyles returns the default quickpick styles
func DefaultStyles() Styles {
	return Styles{
		FrameTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorAccent)),
		Border: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorMuted)),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorHighlight)),
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorText)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorMuted)),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDanger)),
	}
}
