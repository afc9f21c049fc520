package ui

import "github.com/charmbracelet/lipgloss"

// Color palette - single violet accent
const (
	ColorViolet    = "135" // Primary accent - selection, prompt
	ColorVioletDim = "97"  // Dimmed violet for secondary accents
	ColorWhite     = "255" // Result labels
	ColorGray      = "245" // Scores, counts
	ColorDarkGray  = "238" // Hints, separators
	ColorRed       = "196" // Errors
)

// Styles holds the picker's rendering styles.
type Styles struct {
	Prompt   lipgloss.Style
	Query    lipgloss.Style
	Selected lipgloss.Style
	Cursor   lipgloss.Style
	Result   lipgloss.Style
	Score    lipgloss.Style
	Error    lipgloss.Style
	Hint     lipgloss.Style
}

// DefaultStyles returns styled components for terminal mode.
func DefaultStyles() Styles {
	return Styles{
		Prompt:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorViolet)),
		Query:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWhite)),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorViolet)),
		Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorViolet)),
		Result:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWhite)),
		Score:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray)),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed)),
		Hint:     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDarkGray)),
	}
}

// NoColorStyles returns unstyled components for plain mode.
func NoColorStyles() Styles {
	return Styles{
		Prompt:   lipgloss.NewStyle(),
		Query:    lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle(),
		Cursor:   lipgloss.NewStyle(),
		Result:   lipgloss.NewStyle(),
		Score:    lipgloss.NewStyle(),
		Error:    lipgloss.NewStyle(),
		Hint:     lipgloss.NewStyle(),
	}
}

// GetStyles returns the appropriate styles based on color preference.
func GetStyles(noColor bool) Styles {
	if noColor {
		return NoColorStyles()
	}
	return DefaultStyles()
}
