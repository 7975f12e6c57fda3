package tui

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/todoo/internal/planner"
)

type settingsModel struct {
	planner *planner.Planner
	width   int
	height  int

	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	darkMode  *bool
	hourMode  *bool
	startHour *string
	endHour   *string
}

func newSettingsModel(p *planner.Planner) settingsModel {
	dm, hm := false, false
	sh, eh := "", ""
	return settingsModel{
		planner:   p,
		darkMode:  &dm,
		hourMode:  &hm,
		startHour: &sh,
		endHour:   &eh,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.New):
			return s.showForm()
		}
	}
	return s, nil
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	cur := s.planner.Settings()
	*s.darkMode = cur.DarkMode
	*s.hourMode = cur.HourMode
	*s.startHour = strconv.Itoa(cur.StartHour)
	*s.endHour = strconv.Itoa(cur.EndHour)

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().Title("Dark mode").Affirmative("On").Negative("Off").Value(s.darkMode),
			huh.NewConfirm().Title("Hour mode").
				Description("Plan each day hour by hour instead of with a task list").
				Affirmative("On").Negative("Off").Value(s.hourMode),
		).Title("Display"),
		huh.NewGroup(
			huh.NewInput().Title("Start hour (0-23)").Value(s.startHour).Validate(validateHour),
			huh.NewInput().Title("End hour (0-23)").Value(s.endHour).Validate(validateHour),
		).Title("Hour mode range"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		s.form = nil
		return s, s.saveSettings()
	}

	return s, cmd
}

// saveSettings applies the form values. Hour mode is only toggled when it
// changed, since enabling it clears every hourly slot.
func (s settingsModel) saveSettings() tea.Cmd {
	cur := s.planner.Settings()

	if *s.darkMode != cur.DarkMode {
		if err := s.planner.SetDarkMode(*s.darkMode); err != nil {
			return errorCmd(err)
		}
	}

	start, _ := strconv.Atoi(*s.startHour)
	end, _ := strconv.Atoi(*s.endHour)
	if start != cur.StartHour || end != cur.EndHour {
		if err := s.applyHourRange(start, end); err != nil {
			return errorCmd(err)
		}
	}

	var warning string
	if *s.hourMode != cur.HourMode {
		w, err := s.planner.SetHourMode(*s.hourMode)
		if err != nil {
			return errorCmd(err)
		}
		warning = w
	}

	return func() tea.Msg { return settingsSavedMsg{warning: warning} }
}

// applyHourRange stores a valid pair as is. Otherwise each bound goes
// through the clamping setter, start first.
func (s settingsModel) applyHourRange(start, end int) error {
	err := s.planner.SetHourRange(start, end)
	if !errors.Is(err, planner.ErrInvalidHourRange) {
		return err
	}
	if err := s.planner.SetSetting(planner.SettingStartHour, start); err != nil {
		return err
	}
	return s.planner.SetSetting(planner.SettingEndHour, end)
}

func (s settingsModel) view() string {
	w := s.width - 4

	if s.formActive && s.form != nil {
		title := titleStyle.Render("Settings")
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", s.form.View()),
		)
	}

	cur := s.planner.Settings()
	rows := []string{titleStyle.Render("Settings"), ""}
	for _, kv := range [][2]string{
		{"Dark mode", onOff(cur.DarkMode)},
		{"Hour mode", onOff(cur.HourMode)},
		{"Start hour", formatHour(cur.StartHour)},
		{"End hour", formatHour(cur.EndHour)},
		{"Current week", weekLabel(s.planner.CurrentWeek())},
	} {
		label := lipgloss.NewStyle().Width(16).Render(kv[0])
		rows = append(rows, fmt.Sprintf("  %s %s", label, highlightStyle.Render(kv[1])))
	}
	rows = append(rows, "", mutedStyle.Render("Press enter to edit settings"))

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func validateHour(v string) error {
	h, err := strconv.Atoi(v)
	if err != nil {
		return errors.New("enter a whole number")
	}
	if h < planner.MinHour || h > planner.MaxHour {
		return fmt.Errorf("hour must be between %d and %d", planner.MinHour, planner.MaxHour)
	}
	return nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// weekLabel renders an unset week as a dash.
func weekLabel(d planner.Date) string {
	if d.IsZero() {
		return "-"
	}
	return string(d)
}
