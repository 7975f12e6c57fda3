package tui

import "github.com/charmbracelet/lipgloss"

// palette holds the colors a theme is built from.
type palette struct {
	primary   lipgloss.Color
	secondary lipgloss.Color
	muted     lipgloss.Color
	success   lipgloss.Color
	warning   lipgloss.Color
	danger    lipgloss.Color
	fg        lipgloss.Color
	subtle    lipgloss.Color
	highlight lipgloss.Color
}

var (
	lightPalette = palette{
		primary:   lipgloss.Color("#4A47D6"),
		secondary: lipgloss.Color("#1F8A80"),
		muted:     lipgloss.Color("#8A8A8A"),
		success:   lipgloss.Color("#1E9E55"),
		warning:   lipgloss.Color("#C77C02"),
		danger:    lipgloss.Color("#C0392B"),
		fg:        lipgloss.Color("#1F2335"),
		subtle:    lipgloss.Color("#C8CCE0"),
		highlight: lipgloss.Color("#2E5CC7"),
	}

	darkPalette = palette{
		primary:   lipgloss.Color("#6C63FF"),
		secondary: lipgloss.Color("#2EC4B6"),
		muted:     lipgloss.Color("#666666"),
		success:   lipgloss.Color("#2ECC71"),
		warning:   lipgloss.Color("#F39C12"),
		danger:    lipgloss.Color("#E74C3C"),
		fg:        lipgloss.Color("#C0CAF5"),
		subtle:    lipgloss.Color("#414868"),
		highlight: lipgloss.Color("#7AA2F7"),
	}
)

// Color palette
var (
	colorPrimary   lipgloss.Color
	colorSecondary lipgloss.Color
	colorMuted     lipgloss.Color
	colorSuccess   lipgloss.Color
	colorWarning   lipgloss.Color
	colorError     lipgloss.Color
	colorFg        lipgloss.Color
	colorSubtle    lipgloss.Color
	colorHighlight lipgloss.Color
)

// Styles
var (
	activeTabStyle   lipgloss.Style
	inactiveTabStyle lipgloss.Style
	dayTabStyle      lipgloss.Style
	activeDayStyle   lipgloss.Style

	panelStyle       lipgloss.Style
	activePanelStyle lipgloss.Style

	titleStyle     lipgloss.Style
	subtitleStyle  lipgloss.Style
	successStyle   lipgloss.Style
	warningStyle   lipgloss.Style
	errorStyle     lipgloss.Style
	mutedStyle     lipgloss.Style
	highlightStyle lipgloss.Style
	doneStyle      lipgloss.Style

	headerStyle lipgloss.Style
	footerStyle lipgloss.Style

	selectedItemStyle lipgloss.Style
	normalItemStyle   lipgloss.Style
)

func init() {
	applyTheme(false)
}

// applyTheme rebuilds every style from the dark or light palette.
func applyTheme(dark bool) {
	p := lightPalette
	if dark {
		p = darkPalette
	}

	colorPrimary = p.primary
	colorSecondary = p.secondary
	colorMuted = p.muted
	colorSuccess = p.success
	colorWarning = p.warning
	colorError = p.danger
	colorFg = p.fg
	colorSubtle = p.subtle
	colorHighlight = p.highlight

	activeTabStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorPrimary).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(colorPrimary).
		Padding(0, 2)
	inactiveTabStyle = lipgloss.NewStyle().
		Foreground(colorMuted).
		Padding(0, 2)

	dayTabStyle = lipgloss.NewStyle().
		Foreground(colorMuted).
		Padding(0, 1)
	activeDayStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorSecondary).
		Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorSubtle).
		Padding(1, 2)
	activePanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorPrimary).
		Padding(1, 2)

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorFg)
	subtitleStyle = lipgloss.NewStyle().Foreground(colorMuted)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning)
	errorStyle = lipgloss.NewStyle().Foreground(colorError)
	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)
	highlightStyle = lipgloss.NewStyle().Foreground(colorHighlight)
	doneStyle = lipgloss.NewStyle().Foreground(colorMuted).Strikethrough(true)

	headerStyle = lipgloss.NewStyle().Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1)

	selectedItemStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	normalItemStyle = lipgloss.NewStyle().Foreground(colorFg)
}

// percentStyle colors a completion percentage.
func percentStyle(pct int) lipgloss.Style {
	switch {
	case pct >= 75:
		return successStyle
	case pct >= 40:
		return warningStyle
	default:
		return errorStyle
	}
}
