package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// viewState represents the currently active view.
type viewState int

const (
	viewWeek viewState = iota
	viewHistory
	viewSettings
)

var viewNames = []string{"Week", "History", "Settings"}

// --- Messages ---

type statusMsg struct {
	text    string
	isError bool
}

type exportDoneMsg struct {
	path string
}

// settingsSavedMsg is sent after the settings form wrote its values.
type settingsSavedMsg struct {
	warning string
}

// --- Helpers ---

func statusCmd(text string, isError bool) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text, isError: isError} }
}

func errorCmd(err error) tea.Cmd {
	return statusCmd(capitalize(err.Error()), true)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func formatPercent(p int) string {
	return fmt.Sprintf("%d%%", p)
}

// progressBar renders pct as a bar width cells wide.
func progressBar(pct, width int) string {
	if width < 1 {
		return ""
	}
	filled := pct * width / 100
	filled = max(0, min(filled, width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func formatHour(h int) string {
	return fmt.Sprintf("%02dh", h)
}
