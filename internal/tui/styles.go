package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/moodr/internal/mood"
)

// Color palette. Adaptive colors follow the resolved theme.
var (
	colorPrimary   = lipgloss.AdaptiveColor{Light: "#4F46E5", Dark: "#8B85FF"}
	colorAccent    = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FF6B6B"}
	colorMuted     = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#666666"}
	colorSuccess   = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#2ECC71"}
	colorWarning   = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#F39C12"}
	colorError     = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#E74C3C"}
	colorFg        = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#C0CAF5"}
	colorSubtle    = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#414868"}
	colorHighlight = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#7AA2F7"}
)

// Styles
var (
	// Tabs
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(colorPrimary).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Padding(0, 2)

	// Panels
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(1, 2)

	activePanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary).
				Padding(1, 2)

	// Text
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorFg)

	accentStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	highlightStyle = lipgloss.NewStyle().
			Foreground(colorHighlight)

	// Header/footer
	headerStyle = lipgloss.NewStyle().
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	// List items
	selectedItemStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	normalItemStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	// Calendar cells
	cellStyle = lipgloss.NewStyle().
			Width(6).
			Align(lipgloss.Center)

	selectedCellStyle = cellStyle.
				Reverse(true)

	outsideCellStyle = cellStyle.
				Foreground(colorSubtle)

	todayCellStyle = cellStyle.
			Foreground(colorHighlight).
			Bold(true)

	// Tooltip
	tooltipStyle = lipgloss.NewStyle().
			Foreground(colorFg).
			Background(colorSubtle)
)

// moodStyle colors text with the mood's own color.
func moodStyle(score int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(mood.Options[mood.ClampScore(score)-1].Color))
}
