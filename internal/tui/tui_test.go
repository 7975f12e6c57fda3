package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/todoo/internal/logging"
	"github.com/sadopc/todoo/internal/planner"
	"github.com/sadopc/todoo/internal/store"
)

func newTestPlanner(t *testing.T) *planner.Planner {
	t.Helper()
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	p, err := planner.Open(s, "todoo-data", logging.Nop())
	if err != nil {
		t.Fatalf("open planner: %v", err)
	}
	if _, err := p.CheckRollover(monday()); err != nil {
		t.Fatalf("first rollover: %v", err)
	}
	return p
}

func monday() time.Time {
	return time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)
}

func newTestApp(t *testing.T) App {
	t.Helper()
	app := NewApp(newTestPlanner(t), monday(), planner.RolloverResult{})
	app.width = 120
	app.height = 40
	return app
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
	leftKey  = tea.KeyMsg{Type: tea.KeyLeft}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
)

// archivedPlanner returns a planner with one archived week (1 of 2 done).
func archivedPlanner(t *testing.T) *planner.Planner {
	t.Helper()
	p := newTestPlanner(t)
	if err := p.AddTask(planner.Monday, "write report"); err != nil {
		t.Fatal(err)
	}
	if err := p.AddTask(planner.Tuesday, "call bank"); err != nil {
		t.Fatal(err)
	}
	if err := p.ToggleTaskAt(planner.Monday, 0); err != nil {
		t.Fatal(err)
	}
	res, err := p.CheckRollover(monday().AddDate(0, 0, 7))
	if err != nil {
		t.Fatal(err)
	}
	if !res.Archived {
		t.Fatal("expected an archive")
	}
	return p
}

// ============================================================
// Helpers
// ============================================================

func TestFormatPercent(t *testing.T) {
	if got := formatPercent(67); got != "67%" {
		t.Fatalf("expected 67%%, got %q", got)
	}
}

func TestFormatHour(t *testing.T) {
	tests := []struct {
		h    int
		want string
	}{
		{0, "00h"},
		{8, "08h"},
		{23, "23h"},
	}
	for _, tt := range tests {
		if got := formatHour(tt.h); got != tt.want {
			t.Errorf("formatHour(%d) = %q, want %q", tt.h, got, tt.want)
		}
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		pct, width int
		want       string
	}{
		{0, 4, "░░░░"},
		{50, 4, "██░░"},
		{100, 4, "████"},
		{150, 4, "████"},
		{50, 0, ""},
	}
	for _, tt := range tests {
		if got := progressBar(tt.pct, tt.width); got != tt.want {
			t.Errorf("progressBar(%d, %d) = %q, want %q", tt.pct, tt.width, got, tt.want)
		}
	}
}

func TestCapitalize(t *testing.T) {
	if got := capitalize("monday"); got != "Monday" {
		t.Fatalf("got %q", got)
	}
	if got := capitalize(""); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestChartLabel(t *testing.T) {
	if got := chartLabel("2024-01-08"); got != "01-08" {
		t.Fatalf("got %q", got)
	}
	if got := chartLabel("week"); got != "week" {
		t.Fatalf("got %q", got)
	}
}

func TestSortedHoursSkipsEmpty(t *testing.T) {
	got := sortedHours(map[int]string{14: "gym", 9: "standup", 10: ""})
	if len(got) != 2 || got[0] != 9 || got[1] != 14 {
		t.Fatalf("unexpected hours %v", got)
	}
}

func TestValidateHour(t *testing.T) {
	for _, v := range []string{"0", "12", "23"} {
		if err := validateHour(v); err != nil {
			t.Errorf("validateHour(%q) = %v", v, err)
		}
	}
	for _, v := range []string{"-1", "24", "abc", ""} {
		if err := validateHour(v); err == nil {
			t.Errorf("validateHour(%q) should fail", v)
		}
	}
}

func TestRolloverStatus(t *testing.T) {
	tests := []struct {
		name string
		res  planner.RolloverResult
		want string
	}{
		{"skipped", planner.RolloverResult{Skipped: true}, ""},
		{"first run", planner.RolloverResult{FirstRun: true}, ""},
		{"archived", planner.RolloverResult{Archived: true, From: "2024-01-01"}, "Week of 2024-01-01 archived"},
		{"hour mode", planner.RolloverResult{HourlyCleared: true}, "New week: hourly plan cleared"},
		{"clock", planner.RolloverResult{Skipped: true, ClockWentBack: true}, "System clock is behind the current week; nothing archived"},
	}
	for _, tt := range tests {
		if got := rolloverStatus(tt.res); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestViewNames(t *testing.T) {
	if len(viewNames) != 3 {
		t.Fatalf("expected 3 view names, got %d", len(viewNames))
	}
	if viewNames[viewWeek] != "Week" || viewNames[viewHistory] != "History" || viewNames[viewSettings] != "Settings" {
		t.Fatalf("unexpected view names %v", viewNames)
	}
}

// ============================================================
// Week view
// ============================================================

func TestWeekStartsOnToday(t *testing.T) {
	p := newTestPlanner(t)
	w := newWeekModel(p, planner.Wednesday)
	if w.weekday() != planner.Wednesday {
		t.Fatalf("expected wednesday, got %s", w.weekday())
	}
}

func TestWeekDayNavigationWraps(t *testing.T) {
	p := newTestPlanner(t)
	w := newWeekModel(p, planner.Monday)

	w, _ = w.update(leftKey)
	if w.weekday() != planner.Sunday {
		t.Fatalf("left from monday should wrap to sunday, got %s", w.weekday())
	}
	w, _ = w.update(tea.KeyMsg{Type: tea.KeyRight})
	if w.weekday() != planner.Monday {
		t.Fatalf("right from sunday should wrap to monday, got %s", w.weekday())
	}
}

func TestWeekSubmitTaskForm(t *testing.T) {
	p := newTestPlanner(t)
	w := newWeekModel(p, planner.Friday)
	w.formKind = formTask
	*w.taskText = "  buy milk  "

	cmd := w.submitForm()
	if cmd == nil {
		t.Fatal("expected a status command")
	}
	if msg := cmd().(statusMsg); msg.isError {
		t.Fatalf("unexpected error status %q", msg.text)
	}

	day, _ := p.Day(planner.Friday)
	if len(day.Normal) != 1 || day.Normal[0].Text != "buy milk" {
		t.Fatalf("unexpected tasks %+v", day.Normal)
	}
}

func TestWeekSubmitEmptyTaskReportsError(t *testing.T) {
	p := newTestPlanner(t)
	w := newWeekModel(p, planner.Monday)
	w.formKind = formTask
	*w.taskText = "   "

	msg := w.submitForm()().(statusMsg)
	if !msg.isError {
		t.Fatal("empty task should report an error")
	}
	day, _ := p.Day(planner.Monday)
	if len(day.Normal) != 0 {
		t.Fatal("empty task should not be stored")
	}
}

func TestWeekToggleAndDeleteKeys(t *testing.T) {
	p := newTestPlanner(t)
	p.AddTask(planner.Monday, "a")
	p.AddTask(planner.Monday, "b")
	w := newWeekModel(p, planner.Monday)

	w, _ = w.update(downKey)
	if w.cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", w.cursor)
	}
	w, _ = w.update(spaceKey)
	day, _ := p.Day(planner.Monday)
	if day.Normal[0].Completed || !day.Normal[1].Completed {
		t.Fatalf("space should toggle the task under the cursor: %+v", day.Normal)
	}

	w, _ = w.update(enterKey)
	day, _ = p.Day(planner.Monday)
	if day.Normal[1].Completed {
		t.Fatal("enter should toggle back")
	}

	w, _ = w.update(runeKey("d"))
	day, _ = p.Day(planner.Monday)
	if len(day.Normal) != 1 || day.Normal[0].Text != "a" {
		t.Fatalf("delete should remove b: %+v", day.Normal)
	}
	if w.cursor != 0 {
		t.Fatalf("cursor should move back into range, got %d", w.cursor)
	}
}

func TestWeekDeleteOnEmptyDayIsNoop(t *testing.T) {
	p := newTestPlanner(t)
	w := newWeekModel(p, planner.Monday)

	_, cmd := w.update(runeKey("d"))
	if cmd != nil {
		t.Fatal("deleting from an empty day should not report anything")
	}
}

func TestWeekNewOpensForm(t *testing.T) {
	p := newTestPlanner(t)
	w := newWeekModel(p, planner.Monday)

	w, _ = w.update(runeKey("n"))
	if !w.formActive || w.formKind != formTask {
		t.Fatal("n should open the task form")
	}

	w, _ = w.update(escKey)
	if w.formActive {
		t.Fatal("esc should close the form")
	}
}

func TestWeekNewInHourModeReportsError(t *testing.T) {
	p := newTestPlanner(t)
	p.SetHourMode(true)
	w := newWeekModel(p, planner.Monday)

	w, cmd := w.update(runeKey("n"))
	if w.formActive {
		t.Fatal("task form should not open in hour mode")
	}
	if cmd == nil {
		t.Fatal("expected a status command")
	}
	msg := cmd().(statusMsg)
	if !msg.isError || !strings.Contains(msg.text, "hour mode") {
		t.Fatalf("unexpected status %+v", msg)
	}
}

func TestWeekRowsHourModeInclusive(t *testing.T) {
	p := newTestPlanner(t)
	p.SetHourMode(true)
	if err := p.SetHourRange(8, 10); err != nil {
		t.Fatal(err)
	}
	w := newWeekModel(p, planner.Monday)

	if got := w.rows(); got != 3 {
		t.Fatalf("expected 3 slots for 8..10, got %d", got)
	}
}

func TestWeekSlotFormAndClear(t *testing.T) {
	p := newTestPlanner(t)
	p.SetHourMode(true)
	w := newWeekModel(p, planner.Tuesday)

	w, _ = w.update(downKey)
	w, _ = w.update(enterKey)
	if !w.formActive || w.formKind != formSlot {
		t.Fatal("enter should open the slot form in hour mode")
	}
	if w.slotHour != 9 {
		t.Fatalf("expected slot hour 9, got %d", w.slotHour)
	}

	*w.slotText = "gym"
	if cmd := w.submitForm(); cmd != nil {
		t.Fatalf("unexpected status %+v", cmd())
	}
	day, _ := p.Day(planner.Tuesday)
	if day.Hourly[9] != "gym" {
		t.Fatalf("expected slot 9 = gym, got %v", day.Hourly)
	}

	w.formActive = false
	w, _ = w.update(runeKey("d"))
	day, _ = p.Day(planner.Tuesday)
	if day.Hourly[9] != "" {
		t.Fatalf("d should clear the slot, got %q", day.Hourly[9])
	}
}

func TestWeekCursorClampedAfterRangeShrinks(t *testing.T) {
	p := newTestPlanner(t)
	p.SetHourMode(true)
	w := newWeekModel(p, planner.Monday)

	// 8..22 gives 15 slots; park the cursor on 22h.
	for i := 0; i < 14; i++ {
		w, _ = w.update(downKey)
	}
	if w.cursor != 14 {
		t.Fatalf("expected cursor 14, got %d", w.cursor)
	}

	if err := p.SetHourRange(8, 10); err != nil {
		t.Fatal(err)
	}
	w, _ = w.update(enterKey)
	if !w.formActive {
		t.Fatal("enter should open the slot form")
	}
	if w.slotHour != 10 {
		t.Fatalf("slot form should target the last visible hour 10, got %d", w.slotHour)
	}

	w.formActive = false
	p.SetHourlySlot(planner.Monday, 10, "review")
	w, cmd := w.update(runeKey("d"))
	if cmd != nil {
		t.Fatalf("clearing should not report an error: %+v", cmd())
	}
	day, _ := p.Day(planner.Monday)
	if day.Hourly[10] != "" {
		t.Fatalf("d should clear the last visible slot, got %q", day.Hourly[10])
	}
}

func TestAppSettingsSavedClampsWeekCursor(t *testing.T) {
	app := newTestApp(t)
	app.planner.SetHourMode(true)
	app.week.cursor = 14

	if err := app.planner.SetHourRange(9, 11); err != nil {
		t.Fatal(err)
	}
	m, _ := app.Update(settingsSavedMsg{})
	app = m.(App)
	if app.week.cursor != 2 {
		t.Fatalf("expected cursor clamped to 2, got %d", app.week.cursor)
	}
}

func TestWeekRenderProgress(t *testing.T) {
	p := newTestPlanner(t)
	w := newWeekModel(p, planner.Monday)

	if got := w.renderProgress(false); !strings.Contains(got, "No tasks") {
		t.Fatalf("expected 'No tasks', got %q", got)
	}

	p.AddTask(planner.Monday, "a")
	p.AddTask(planner.Monday, "b")
	p.ToggleTaskAt(planner.Monday, 0)
	if got := w.renderProgress(false); !strings.Contains(got, "Completion: 50%") {
		t.Fatalf("expected 'Completion: 50%%', got %q", got)
	}

	if got := w.renderProgress(true); !strings.Contains(got, "Hour mode enabled") {
		t.Fatalf("expected hour mode label, got %q", got)
	}
}

func TestWeekDateLabel(t *testing.T) {
	p := newTestPlanner(t)
	w := newWeekModel(p, planner.Wednesday)
	if got := w.dateLabel(); got != "Jan 03" {
		t.Fatalf("expected Jan 03, got %q", got)
	}
}

// ============================================================
// History view
// ============================================================

func TestHistoryRefresh(t *testing.T) {
	p := archivedPlanner(t)
	h := newHistoryModel(p)
	h.setSize(100, 30)
	h.refresh()

	if len(h.archives) != 1 || len(h.points) != 1 {
		t.Fatalf("expected one archive, got %d", len(h.archives))
	}
	if h.points[0].Value != 50 {
		t.Fatalf("expected 50%%, got %d", h.points[0].Value)
	}
	if h.cursor != 0 {
		t.Fatalf("cursor should sit on the latest week, got %d", h.cursor)
	}
}

func TestHistoryDetailToggle(t *testing.T) {
	p := archivedPlanner(t)
	h := newHistoryModel(p)
	h.setSize(100, 30)
	h.refresh()

	h, _ = h.update(enterKey)
	if !h.detail {
		t.Fatal("enter should open the detail view")
	}
	out := h.renderDetail(h.archives[0])
	for _, want := range []string{"Week of 2024-01-01", "write report", "call bank"} {
		if !strings.Contains(out, want) {
			t.Errorf("detail missing %q", want)
		}
	}

	h, _ = h.update(escKey)
	if h.detail {
		t.Fatal("esc should close the detail view")
	}
}

func TestHistoryEnterWithoutArchives(t *testing.T) {
	p := newTestPlanner(t)
	h := newHistoryModel(p)
	h.setSize(100, 30)
	h.refresh()

	h, _ = h.update(enterKey)
	if h.detail {
		t.Fatal("detail should stay closed without archives")
	}
	if !strings.Contains(h.view(), "No archived weeks yet") {
		t.Fatal("empty history should say so")
	}
}

func TestHistoryViewWarnsInHourMode(t *testing.T) {
	p := archivedPlanner(t)
	p.SetHourMode(true)
	h := newHistoryModel(p)
	h.setSize(100, 30)
	h.refresh()

	if !strings.Contains(h.view(), planner.HourModeWarning) {
		t.Fatal("history should carry the hour mode warning")
	}
}

// ============================================================
// Settings view
// ============================================================

func TestSettingsSaveHourModeWarning(t *testing.T) {
	p := newTestPlanner(t)
	s := newSettingsModel(p)
	s, _ = s.showForm()
	*s.hourMode = true

	msg := s.saveSettings()().(settingsSavedMsg)
	if msg.warning != planner.HourModeWarning {
		t.Fatalf("expected hour mode warning, got %q", msg.warning)
	}
	if !p.Settings().HourMode {
		t.Fatal("hour mode should be on")
	}
}

func TestSettingsSaveUnchangedHourModeKeepsSlots(t *testing.T) {
	p := newTestPlanner(t)
	p.SetHourMode(true)
	p.SetHourlySlot(planner.Monday, 9, "standup")

	s := newSettingsModel(p)
	s, _ = s.showForm()
	*s.darkMode = true

	msg := s.saveSettings()().(settingsSavedMsg)
	if msg.warning != "" {
		t.Fatalf("unexpected warning %q", msg.warning)
	}
	day, _ := p.Day(planner.Monday)
	if day.Hourly[9] != "standup" {
		t.Fatal("saving without toggling hour mode should keep slots")
	}
	if !p.Settings().DarkMode {
		t.Fatal("dark mode should be on")
	}
}

func TestSettingsSaveValidRange(t *testing.T) {
	p := newTestPlanner(t)
	s := newSettingsModel(p)
	s, _ = s.showForm()
	*s.startHour = "6"
	*s.endHour = "12"

	s.saveSettings()()
	got := p.Settings()
	if got.StartHour != 6 || got.EndHour != 12 {
		t.Fatalf("expected 6..12, got %d..%d", got.StartHour, got.EndHour)
	}
}

func TestSettingsSaveInvalidRangeClamps(t *testing.T) {
	p := newTestPlanner(t)
	s := newSettingsModel(p)
	s, _ = s.showForm()
	*s.startHour = "23"
	*s.endHour = "5"

	s.saveSettings()()
	got := p.Settings()
	if got.StartHour >= got.EndHour {
		t.Fatalf("range must stay ordered, got %d..%d", got.StartHour, got.EndHour)
	}
	if got.StartHour != 21 || got.EndHour != 22 {
		t.Fatalf("expected 21..22, got %d..%d", got.StartHour, got.EndHour)
	}
}

func TestWeekLabel(t *testing.T) {
	if got := weekLabel(""); got != "-" {
		t.Fatalf("got %q", got)
	}
	if got := weekLabel("2024-01-01"); got != "2024-01-01" {
		t.Fatalf("got %q", got)
	}
}

// ============================================================
// App model
// ============================================================

func TestNewApp(t *testing.T) {
	app := newTestApp(t)

	if app.activeView != viewWeek {
		t.Fatal("default view should be week")
	}
	if app.showHelp {
		t.Fatal("help should be hidden by default")
	}
	if app.exportPicking {
		t.Fatal("export picker should be hidden by default")
	}
	if app.isFormActive() {
		t.Fatal("no forms should be active initially")
	}
}

func TestNewAppStartupStatus(t *testing.T) {
	p := newTestPlanner(t)
	app := NewApp(p, monday(), planner.RolloverResult{Archived: true, From: "2023-12-25"})
	if app.status != "Week of 2023-12-25 archived" {
		t.Fatalf("unexpected status %q", app.status)
	}
}

func TestAppViewStates(t *testing.T) {
	app := newTestApp(t)

	for _, v := range []viewState{viewWeek, viewHistory, viewSettings} {
		app.activeView = v
		if app.View() == "" {
			t.Fatalf("view %d rendered empty", v)
		}
	}
}

func TestAppTabCyclesViews(t *testing.T) {
	app := newTestApp(t)

	want := []viewState{viewHistory, viewSettings, viewWeek}
	for _, v := range want {
		m, _ := app.Update(tabKey)
		app = m.(App)
		if app.activeView != v {
			t.Fatalf("expected view %d, got %d", v, app.activeView)
		}
	}
}

func TestAppHistoryNoticeInHourMode(t *testing.T) {
	app := newTestApp(t)
	app.planner.SetHourMode(true)

	m, cmd := app.Update(runeKey("2"))
	app = m.(App)
	if app.activeView != viewHistory {
		t.Fatal("2 should open history")
	}
	if cmd == nil {
		t.Fatal("expected the hour mode notice")
	}
	if msg := cmd().(statusMsg); msg.text != planner.HourModeWarning {
		t.Fatalf("unexpected notice %q", msg.text)
	}
}

func TestAppSettingsSavedAppliesWarning(t *testing.T) {
	app := newTestApp(t)

	m, _ := app.Update(settingsSavedMsg{warning: planner.HourModeWarning})
	app = m.(App)
	if app.status != planner.HourModeWarning {
		t.Fatalf("unexpected status %q", app.status)
	}

	m, _ = app.Update(settingsSavedMsg{})
	app = m.(App)
	if app.status != "Settings saved" {
		t.Fatalf("unexpected status %q", app.status)
	}
}

func TestAppExportPicker(t *testing.T) {
	app := newTestApp(t)

	m, _ := app.Update(runeKey("e"))
	app = m.(App)
	if !app.exportPicking {
		t.Fatal("e should open the export picker")
	}
	m, _ = app.Update(downKey)
	app = m.(App)
	if app.exportCursor != 1 {
		t.Fatalf("expected cursor 1, got %d", app.exportCursor)
	}
	m, _ = app.Update(escKey)
	app = m.(App)
	if app.exportPicking {
		t.Fatal("esc should close the export picker")
	}
}

func TestAppRenderHeaderContainsAllTabs(t *testing.T) {
	app := newTestApp(t)

	header := app.renderHeader()
	for _, name := range viewNames {
		if !strings.Contains(header, name) {
			t.Fatalf("header missing tab %q", name)
		}
	}
}

func TestAppLoadingState(t *testing.T) {
	app := NewApp(newTestPlanner(t), monday(), planner.RolloverResult{})
	if out := app.View(); out != "Loading..." {
		t.Fatalf("expected 'Loading...', got %q", out)
	}
}

func TestAppStatusMessage(t *testing.T) {
	app := newTestApp(t)

	m, _ := app.Update(statusMsg{text: "test status", isError: true})
	app = m.(App)
	if !app.statusErr {
		t.Fatal("status should be flagged as error")
	}
	if !strings.Contains(app.renderFooter(), "test status") {
		t.Fatal("footer should contain status message")
	}
}

// ============================================================
// Key bindings
// ============================================================

func TestKeyMapShortHelp(t *testing.T) {
	if len(keys.ShortHelp()) == 0 {
		t.Fatal("short help should have bindings")
	}
}

func TestKeyMapFullHelp(t *testing.T) {
	groups := keys.FullHelp()
	if len(groups) == 0 {
		t.Fatal("full help should have groups")
	}
	for i, g := range groups {
		if len(g) == 0 {
			t.Fatalf("full help group %d is empty", i)
		}
	}
}

// ============================================================
// Styles
// ============================================================

func TestApplyThemeSwitchesPalette(t *testing.T) {
	t.Cleanup(func() { applyTheme(false) })

	applyTheme(true)
	if colorPrimary != darkPalette.primary {
		t.Fatal("dark theme should use the dark palette")
	}
	applyTheme(false)
	if colorPrimary != lightPalette.primary {
		t.Fatal("light theme should use the light palette")
	}
}

func TestPercentStyle(t *testing.T) {
	if percentStyle(90).GetForeground() != colorSuccess {
		t.Fatal("high scores should render as success")
	}
	if percentStyle(10).GetForeground() != colorError {
		t.Fatal("low scores should render as error")
	}
}

func TestStylesRender(t *testing.T) {
	styles := []struct {
		name string
		fn   func() string
	}{
		{"activeTab", func() string { return activeTabStyle.Render("test") }},
		{"inactiveTab", func() string { return inactiveTabStyle.Render("test") }},
		{"dayTab", func() string { return dayTabStyle.Render("test") }},
		{"activeDay", func() string { return activeDayStyle.Render("test") }},
		{"panel", func() string { return panelStyle.Render("test") }},
		{"activePanel", func() string { return activePanelStyle.Render("test") }},
		{"title", func() string { return titleStyle.Render("test") }},
		{"subtitle", func() string { return subtitleStyle.Render("test") }},
		{"success", func() string { return successStyle.Render("test") }},
		{"warning", func() string { return warningStyle.Render("test") }},
		{"error", func() string { return errorStyle.Render("test") }},
		{"muted", func() string { return mutedStyle.Render("test") }},
		{"highlight", func() string { return highlightStyle.Render("test") }},
		{"done", func() string { return doneStyle.Render("test") }},
		{"header", func() string { return headerStyle.Render("test") }},
		{"footer", func() string { return footerStyle.Render("test") }},
		{"selectedItem", func() string { return selectedItemStyle.Render("test") }},
		{"normalItem", func() string { return normalItemStyle.Render("test") }},
	}

	for _, s := range styles {
		if s.fn() == "" {
			t.Fatalf("style %q rendered empty", s.name)
		}
	}
}
