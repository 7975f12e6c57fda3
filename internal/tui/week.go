package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/todoo/internal/planner"
)

type weekForm int

const (
	formNone weekForm = iota
	formTask
	formSlot
)

type weekModel struct {
	planner *planner.Planner
	width   int
	height  int

	day    int // index into planner.Weekdays
	cursor int // task index, or slot offset from the start hour in hour mode

	formActive bool
	formKind   weekForm
	form       *huh.Form
	slotHour   int

	// Form values as pointers (survive value copies)
	taskText *string
	slotText *string
}

func newWeekModel(p *planner.Planner, today planner.Weekday) weekModel {
	tt, st := "", ""
	m := weekModel{
		planner:  p,
		taskText: &tt,
		slotText: &st,
	}
	for i, d := range planner.Weekdays {
		if d == today {
			m.day = i
		}
	}
	return m
}

func (w *weekModel) setSize(width, height int) {
	w.width = width
	w.height = height
}

func (w weekModel) weekday() planner.Weekday {
	return planner.Weekdays[w.day]
}

// rows is the number of selectable lines for the current day.
func (w weekModel) rows() int {
	s := w.planner.Settings()
	if s.HourMode {
		return s.EndHour - s.StartHour + 1
	}
	day, err := w.planner.Day(w.weekday())
	if err != nil {
		return 0
	}
	return len(day.Normal)
}

// clampCursor keeps the cursor on a visible row after the task list or the
// hour range shrank underneath it.
func (w *weekModel) clampCursor() {
	w.cursor = max(0, min(w.cursor, w.rows()-1))
}

func (w weekModel) update(msg tea.Msg) (weekModel, tea.Cmd) {
	if w.formActive && w.form != nil {
		return w.updateForm(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return w, nil
	}
	w.clampCursor()

	hourMode := w.planner.Settings().HourMode
	switch {
	case key.Matches(km, keys.Left):
		w.day = (w.day + len(planner.Weekdays) - 1) % len(planner.Weekdays)
		w.cursor = 0
	case key.Matches(km, keys.Right):
		w.day = (w.day + 1) % len(planner.Weekdays)
		w.cursor = 0
	case key.Matches(km, keys.Up):
		if w.cursor > 0 {
			w.cursor--
		}
	case key.Matches(km, keys.Down):
		if w.cursor < w.rows()-1 {
			w.cursor++
		}
	case key.Matches(km, keys.New):
		if hourMode {
			return w, errorCmd(planner.ErrHourModeActive)
		}
		return w.showTaskForm()
	case key.Matches(km, keys.Toggle):
		if hourMode {
			return w, nil
		}
		if err := w.planner.ToggleTaskAt(w.weekday(), w.cursor); err != nil {
			return w, errorCmd(err)
		}
	case key.Matches(km, keys.Enter):
		if hourMode {
			return w.showSlotForm()
		}
		if err := w.planner.ToggleTaskAt(w.weekday(), w.cursor); err != nil {
			return w, errorCmd(err)
		}
	case key.Matches(km, keys.Delete):
		if hourMode {
			return w.clearSlot()
		}
		if err := w.planner.RemoveTaskAt(w.weekday(), w.cursor); err != nil {
			return w, errorCmd(err)
		}
		if n := w.rows(); w.cursor >= n && n > 0 {
			w.cursor = n - 1
		}
	}
	return w, nil
}

func (w weekModel) showTaskForm() (weekModel, tea.Cmd) {
	*w.taskText = ""
	w.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("New task for %s", dayTitle(w.weekday()))).
				Placeholder("What needs doing?").
				Value(w.taskText),
		),
	).WithShowHelp(true).WithShowErrors(true)

	w.formActive = true
	w.formKind = formTask
	return w, w.form.Init()
}

func (w weekModel) showSlotForm() (weekModel, tea.Cmd) {
	w.slotHour = w.planner.Settings().StartHour + w.cursor
	*w.slotText = ""
	if day, err := w.planner.Day(w.weekday()); err == nil {
		*w.slotText = day.Hourly[w.slotHour]
	}

	w.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("%s at %s", dayTitle(w.weekday()), formatHour(w.slotHour))).
				Value(w.slotText),
		),
	).WithShowHelp(true).WithShowErrors(true)

	w.formActive = true
	w.formKind = formSlot
	return w, w.form.Init()
}

func (w weekModel) clearSlot() (weekModel, tea.Cmd) {
	hour := w.planner.Settings().StartHour + w.cursor
	if err := w.planner.SetHourlySlot(w.weekday(), hour, ""); err != nil {
		return w, errorCmd(err)
	}
	return w, nil
}

func (w weekModel) updateForm(msg tea.Msg) (weekModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			w.formActive = false
			w.form = nil
			return w, nil
		}
	}

	form, cmd := w.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		w.form = f
	}

	if w.form.State == huh.StateCompleted {
		w.formActive = false
		w.form = nil
		return w, w.submitForm()
	}

	return w, cmd
}

func (w weekModel) submitForm() tea.Cmd {
	switch w.formKind {
	case formTask:
		if err := w.planner.AddTask(w.weekday(), strings.TrimSpace(*w.taskText)); err != nil {
			return errorCmd(err)
		}
		return statusCmd("Task added", false)
	case formSlot:
		if err := w.planner.SetHourlySlot(w.weekday(), w.slotHour, *w.slotText); err != nil {
			return errorCmd(err)
		}
	}
	return nil
}

func (w weekModel) view() string {
	width := w.width - 4

	if w.formActive && w.form != nil {
		return activePanelStyle.Width(width).Render(w.form.View())
	}

	settings := w.planner.Settings()
	day, err := w.planner.Day(w.weekday())
	if err != nil {
		return errorStyle.Render(err.Error())
	}

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render(dayTitle(w.weekday())), "  ", mutedStyle.Render(w.dateLabel()),
	)

	var body string
	if settings.HourMode {
		body = w.renderSlots(day, settings)
	} else {
		body = w.renderTasks(day)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		w.renderDayTabs(settings.HourMode),
		panelStyle.Width(width).Render(
			lipgloss.JoinVertical(lipgloss.Left,
				header, "", body, "", w.renderProgress(settings.HourMode),
			),
		),
		w.renderWeekSummary(settings.HourMode),
	)
}

func (w weekModel) renderDayTabs(hourMode bool) string {
	var tabs []string
	for i, d := range planner.Weekdays {
		label := d.Short()
		if !hourMode {
			if p := w.planner.DayProgress(d); p.Total > 0 {
				label += " " + formatPercent(p.Percent)
			}
		}
		if i == w.day {
			tabs = append(tabs, activeDayStyle.Render("["+label+"]"))
		} else {
			tabs = append(tabs, dayTabStyle.Render(" "+label+" "))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)
}

func (w weekModel) renderTasks(day *planner.Day) string {
	if len(day.Normal) == 0 {
		return mutedStyle.Render("  No tasks yet. Press n to add one.")
	}

	var rows []string
	for i, t := range day.Normal {
		cursor := "  "
		if i == w.cursor {
			cursor = "> "
		}
		box := "[ ] "
		text := normalItemStyle.Render(t.Text)
		if t.Completed {
			box = "[x] "
			text = doneStyle.Render(t.Text)
		}
		if i == w.cursor {
			rows = append(rows, selectedItemStyle.Render(cursor+box)+text)
		} else {
			rows = append(rows, cursor+box+text)
		}
	}
	return strings.Join(rows, "\n")
}

func (w weekModel) renderSlots(day *planner.Day, s planner.Settings) string {
	var rows []string
	for h := s.StartHour; h <= s.EndHour; h++ {
		cursor := "  "
		style := normalItemStyle
		if h-s.StartHour == w.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		text := day.Hourly[h]
		if text == "" {
			text = mutedStyle.Render("-")
		}
		rows = append(rows, style.Render(cursor+formatHour(h)+"  ")+text)
	}
	return strings.Join(rows, "\n")
}

func (w weekModel) renderProgress(hourMode bool) string {
	if hourMode {
		return mutedStyle.Render("Hour mode enabled")
	}
	p := w.planner.DayProgress(w.weekday())
	if p.Total == 0 {
		return mutedStyle.Render("No tasks")
	}
	bar := percentStyle(p.Percent).Render(progressBar(p.Percent, 20))
	return fmt.Sprintf("Completion: %s %s  %s",
		formatPercent(p.Percent), bar,
		mutedStyle.Render(fmt.Sprintf("%d/%d done", p.Completed, p.Total)),
	)
}

func (w weekModel) renderWeekSummary(hourMode bool) string {
	if hourMode {
		return ""
	}
	pct := w.planner.Productivity()
	return footerStyle.Render("Week productivity: ") + percentStyle(pct).Render(formatPercent(pct))
}

// dateLabel is the calendar date of the selected day within the current week.
func (w weekModel) dateLabel() string {
	start, err := w.planner.CurrentWeek().Time()
	if err != nil {
		return ""
	}
	return start.AddDate(0, 0, w.day).Format("Jan 02")
}

func dayTitle(d planner.Weekday) string {
	return capitalize(string(d))
}
