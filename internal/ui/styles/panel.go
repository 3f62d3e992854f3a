package styles

import "github.com/charmbracelet/lipgloss"

var (
	unfocusedPanelStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(defaultTheme.Border)

	focusedPanelStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(defaultTheme.BorderFocus)

	collapsedPanelStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(defaultTheme.FgSubtle)

	idleSplitterStyle = lipgloss.NewStyle().
				Foreground(defaultTheme.Border)

	focusedSplitterStyle = lipgloss.NewStyle().
				Foreground(defaultTheme.BorderFocus)

	activeSplitterStyle = lipgloss.NewStyle().
				Foreground(defaultTheme.Secondary).
				Background(defaultTheme.BgActive)
)

// PanelStyle returns the appropriate panel style based on focus and
// collapsed state.
func PanelStyle(focused, collapsed bool) lipgloss.Style {
	if collapsed {
		return collapsedPanelStyle
	}
	if focused {
		return focusedPanelStyle
	}
	return unfocusedPanelStyle
}

// SplitterStyle returns the style for a splitter bar. Active wins over
// focused: a splitter being dragged is always highlighted.
func SplitterStyle(focused, active bool) lipgloss.Style {
	if active {
		return activeSplitterStyle
	}
	if focused {
		return focusedSplitterStyle
	}
	return idleSplitterStyle
}
