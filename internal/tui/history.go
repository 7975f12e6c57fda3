package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/todoo/internal/planner"
)

type historyModel struct {
	planner *planner.Planner
	width   int
	height  int

	archives []planner.Archive
	points   []planner.Point
	cursor   int
	detail   bool

	chart barchart.Model
}

func newHistoryModel(p *planner.Planner) historyModel {
	return historyModel{
		planner: p,
		chart:   barchart.New(60, 12),
	}
}

func (h *historyModel) setSize(w, height int) {
	h.width = w
	h.height = height
	h.buildChart()
}

// refresh reloads archives from the planner and redraws the chart. The
// cursor starts on the most recent week.
func (h *historyModel) refresh() {
	h.archives = h.planner.Archives()
	h.points = h.planner.History()
	h.cursor = max(0, len(h.archives)-1)
	h.detail = false
	h.buildChart()
}

func (h historyModel) update(msg tea.Msg) (historyModel, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	if h.detail {
		if key.Matches(km, keys.Back) || key.Matches(km, keys.Enter) {
			h.detail = false
		}
		return h, nil
	}

	switch {
	case key.Matches(km, keys.Up), key.Matches(km, keys.Left):
		if h.cursor > 0 {
			h.cursor--
			h.buildChart()
		}
	case key.Matches(km, keys.Down), key.Matches(km, keys.Right):
		if h.cursor < len(h.archives)-1 {
			h.cursor++
			h.buildChart()
		}
	case key.Matches(km, keys.Enter):
		if len(h.archives) > 0 {
			h.detail = true
		}
	}
	return h, nil
}

func (h *historyModel) buildChart() {
	chartWidth := max(h.width-8, 20)
	chartHeight := 10
	if h.height > 30 {
		chartHeight = 14
	}

	h.chart = barchart.New(chartWidth, chartHeight)

	var bars []barchart.BarData
	for i, p := range h.points {
		style := lipgloss.NewStyle().Foreground(colorPrimary)
		if i == h.cursor {
			style = lipgloss.NewStyle().Foreground(colorSecondary)
		}
		bars = append(bars, barchart.BarData{
			Label: chartLabel(p.Label),
			Values: []barchart.BarValue{{
				Name:  p.Label,
				Value: float64(p.Value),
				Style: style,
			}},
		})
	}

	h.chart.PushAll(bars)
	h.chart.Draw()
}

func (h historyModel) view() string {
	w := h.width - 4

	if h.detail && h.cursor < len(h.archives) {
		return activePanelStyle.Width(w).Render(h.renderDetail(h.archives[h.cursor]))
	}

	rows := []string{titleStyle.Render("History")}
	if h.planner.Settings().HourMode {
		rows = append(rows, warningStyle.Render(planner.HourModeWarning))
	}
	rows = append(rows, "")

	if len(h.archives) == 0 {
		rows = append(rows, mutedStyle.Render("  No archived weeks yet"))
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	}

	rows = append(rows,
		h.chart.View(), "",
		h.renderList(), "",
		mutedStyle.Render("  ↑/↓: select week  enter: details"),
	)
	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (h historyModel) renderList() string {
	var rows []string
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-12s %10s %8s", "Week of", "Done", "Score")))
	rows = append(rows, mutedStyle.Render("  "+strings.Repeat("─", 32)))

	for i, a := range h.archives {
		completed, total := planner.Counts(a.Tasks)
		pct := h.points[i].Value
		line := fmt.Sprintf("%-12s %10s %8s",
			a.WeekStart, fmt.Sprintf("%d/%d", completed, total), formatPercent(pct))
		if i == h.cursor {
			rows = append(rows, selectedItemStyle.Render("> "+line))
		} else {
			rows = append(rows, "  "+line)
		}
	}
	return strings.Join(rows, "\n")
}

func (h historyModel) renderDetail(a planner.Archive) string {
	pct := planner.Productivity(a.Tasks)
	rows := []string{
		lipgloss.JoinHorizontal(lipgloss.Bottom,
			titleStyle.Render("Week of "+string(a.WeekStart)), "  ",
			percentStyle(pct).Render(formatPercent(pct)),
		),
		"",
	}

	for _, d := range planner.Weekdays {
		day := a.Tasks[d]
		if day == nil {
			continue
		}
		p := planner.DayProgress(day)
		head := highlightStyle.Render(dayTitle(d))
		if p.Total > 0 {
			head += mutedStyle.Render(fmt.Sprintf("  %d/%d", p.Completed, p.Total))
		}
		rows = append(rows, head)

		if len(day.Normal) == 0 && len(day.Hourly) == 0 {
			rows = append(rows, mutedStyle.Render("  nothing planned"))
		}
		for _, t := range day.Normal {
			if t.Completed {
				rows = append(rows, "  [x] "+doneStyle.Render(t.Text))
			} else {
				rows = append(rows, "  [ ] "+t.Text)
			}
		}
		for _, hour := range sortedHours(day.Hourly) {
			rows = append(rows, "  "+formatHour(hour)+"  "+day.Hourly[hour])
		}
	}

	rows = append(rows, "", mutedStyle.Render("  esc: back"))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// chartLabel shortens an ISO week start to month-day.
func chartLabel(date string) string {
	if len(date) == len("2006-01-02") {
		return date[5:]
	}
	return date
}

func sortedHours(m map[int]string) []int {
	hours := make([]int, 0, len(m))
	for h, text := range m {
		if text != "" {
			hours = append(hours, h)
		}
	}
	sort.Ints(hours)
	return hours
}
