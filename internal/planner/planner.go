// Package planner owns the weekly task state: loading and repairing the
// persisted document, closing weeks into archives, computing productivity
// and applying user edits. Every edit is flushed to the store before the
// call returns.
package planner

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Persister reads and writes whole documents by key.
type Persister interface {
	Load(key string) ([]byte, bool, error)
	Save(key string, value []byte) error
}

// Setting keys accepted by SetSetting.
const (
	SettingDarkMode  = "darkMode"
	SettingHourMode  = "hourMode"
	SettingStartHour = "startHour"
	SettingEndHour   = "endHour"
)

type Planner struct {
	state *State
	store Persister
	key   string
	log   *zap.Logger

	newID func() string
}

// Open loads the document stored under key. A missing or unreadable document
// yields the default state; only a failing store is reported as an error.
func Open(store Persister, key string, log *zap.Logger) (*Planner, error) {
	if log == nil {
		log = zap.NewNop()
	}
	raw, ok, err := store.Load(key)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}

	state := Default()
	if ok {
		state, err = Decode(raw)
		switch {
		case errors.Is(err, ErrStateRepaired):
			log.Warn("repaired stored state", zap.String("key", key), zap.Error(err))
		case err != nil:
			log.Warn("discarding unreadable state", zap.String("key", key), zap.Error(err))
		}
	}

	return &Planner{
		state: state,
		store: store,
		key:   key,
		log:   log,
		newID: uuid.NewString,
	}, nil
}

// CheckRollover compares the stored week with the week containing now and
// closes the stored week when they differ. It is meant to run once per
// session, at startup.
func (p *Planner) CheckRollover(now time.Time) (RolloverResult, error) {
	today := WeekStart(now)
	current := p.state.CurrentWeek

	if current == today {
		return RolloverResult{From: current, To: today, Skipped: true}, nil
	}
	if !current.IsZero() && today.Before(current) {
		p.log.Warn("clock is behind the current week, not archiving",
			zap.String("current_week", string(current)),
			zap.String("today_week", string(today)))
		return RolloverResult{From: current, To: today, Skipped: true, ClockWentBack: true}, nil
	}

	res := Rollover(p.state, today)
	p.state.CurrentWeek = today
	p.log.Info("week rollover",
		zap.String("from", string(res.From)),
		zap.String("to", string(res.To)),
		zap.Bool("archived", res.Archived),
		zap.Bool("hourly_cleared", res.HourlyCleared))

	if err := p.flush(); err != nil {
		return res, err
	}
	return res, nil
}

// --- Accessors ---

func (p *Planner) Settings() Settings { return p.state.Settings }

func (p *Planner) CurrentWeek() Date { return p.state.CurrentWeek }

// Day returns a copy of one day's data.
func (p *Planner) Day(d Weekday) (*Day, error) {
	if !d.Valid() {
		return nil, ErrInvalidDay
	}
	return p.state.Tasks[d].clone(), nil
}

// Week returns a copy of the live week.
func (p *Planner) Week() Week { return p.state.Tasks.Clone() }

// Archives returns a copy of the archive list in creation order.
func (p *Planner) Archives() []Archive {
	out := make([]Archive, len(p.state.Archives))
	for i, a := range p.state.Archives {
		out[i] = Archive{WeekStart: a.WeekStart, Tasks: a.Tasks.Clone()}
	}
	return out
}

// History returns the productivity series of all archived weeks.
func (p *Planner) History() []Point { return History(p.state.Archives) }

// Productivity returns the live week's completion percentage.
func (p *Planner) Productivity() int { return Productivity(p.state.Tasks) }

func (p *Planner) DayProgress(d Weekday) Progress {
	if !d.Valid() {
		return Progress{}
	}
	return DayProgress(p.state.Tasks[d])
}

// --- Tasks ---

// AddTask appends an unchecked task to day.
func (p *Planner) AddTask(day Weekday, text string) error {
	if !day.Valid() {
		return ErrInvalidDay
	}
	if strings.TrimSpace(text) == "" {
		return ErrEmptyTask
	}
	if p.state.Settings.HourMode {
		return ErrHourModeActive
	}
	d := p.state.Tasks[day]
	d.Normal = append(d.Normal, Task{ID: p.newID(), Text: text})
	return p.flush()
}

// RemoveTask deletes the first task of day whose text equals text. Nothing
// happens when there is none.
func (p *Planner) RemoveTask(day Weekday, text string) error {
	i, err := p.find(day, text)
	if err != nil || i < 0 {
		return err
	}
	return p.RemoveTaskAt(day, i)
}

// ToggleTask flips the first task of day whose text equals text.
func (p *Planner) ToggleTask(day Weekday, text string) error {
	i, err := p.find(day, text)
	if err != nil || i < 0 {
		return err
	}
	return p.ToggleTaskAt(day, i)
}

// RemoveTaskAt deletes the task at index i. Out of range is a no-op.
func (p *Planner) RemoveTaskAt(day Weekday, i int) error {
	if !day.Valid() {
		return ErrInvalidDay
	}
	d := p.state.Tasks[day]
	if i < 0 || i >= len(d.Normal) {
		return nil
	}
	d.Normal = append(d.Normal[:i], d.Normal[i+1:]...)
	return p.flush()
}

// ToggleTaskAt flips the task at index i. Out of range is a no-op.
func (p *Planner) ToggleTaskAt(day Weekday, i int) error {
	if !day.Valid() {
		return ErrInvalidDay
	}
	d := p.state.Tasks[day]
	if i < 0 || i >= len(d.Normal) {
		return nil
	}
	d.Normal[i].Completed = !d.Normal[i].Completed
	return p.flush()
}

func (p *Planner) find(day Weekday, text string) (int, error) {
	if !day.Valid() {
		return -1, ErrInvalidDay
	}
	for i, t := range p.state.Tasks[day].Normal {
		if t.Text == text {
			return i, nil
		}
	}
	return -1, nil
}

// --- Hourly slots ---

// SetHourlySlot stores text for hour on day. An empty text is stored as is.
func (p *Planner) SetHourlySlot(day Weekday, hour int, text string) error {
	if !day.Valid() {
		return ErrInvalidDay
	}
	if !validHour(hour) {
		return ErrInvalidHour
	}
	p.state.Tasks[day].Hourly[hour] = text
	return p.flush()
}

// --- Settings ---

// SetSetting updates one settings field. Hours are clamped to 0..23; when an
// edit would break startHour < endHour, the edited bound is moved to one hour
// away from the other one.
func (p *Planner) SetSetting(key string, value any) error {
	switch key {
	case SettingDarkMode:
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("%s: %w", key, ErrInvalidValue)
		}
		return p.SetDarkMode(b)
	case SettingHourMode:
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("%s: %w", key, ErrInvalidValue)
		}
		_, err := p.SetHourMode(b)
		return err
	case SettingStartHour, SettingEndHour:
		h, ok := value.(int)
		if !ok {
			return fmt.Errorf("%s: %w", key, ErrInvalidValue)
		}
		p.setHour(key, h)
		return p.flush()
	}
	return fmt.Errorf("%q: %w", key, ErrUnknownSetting)
}

func (p *Planner) setHour(key string, h int) {
	h = clamp(h, MinHour, MaxHour)
	s := &p.state.Settings
	if key == SettingStartHour {
		if h >= s.EndHour {
			h = s.EndHour - 1
		}
		s.StartHour = h
		return
	}
	if h <= s.StartHour {
		h = s.StartHour + 1
	}
	s.EndHour = h
}

// SetHourRange replaces both bounds at once. Unlike SetSetting it rejects an
// invalid range instead of clamping it.
func (p *Planner) SetHourRange(start, end int) error {
	if !validHourRange(start, end) {
		return ErrInvalidHourRange
	}
	p.state.Settings.StartHour = start
	p.state.Settings.EndHour = end
	return p.flush()
}

func (p *Planner) SetDarkMode(enabled bool) error {
	p.state.Settings.DarkMode = enabled
	return p.flush()
}

// SetHourMode switches scheduling modes. Enabling it clears every hourly slot
// through a rollover pass and returns HourModeWarning for the user.
func (p *Planner) SetHourMode(enabled bool) (warning string, err error) {
	p.state.Settings.HourMode = enabled
	if enabled {
		Rollover(p.state, p.state.CurrentWeek)
		warning = HourModeWarning
	}
	if err := p.flush(); err != nil {
		return warning, err
	}
	return warning, nil
}

// flush writes the whole state to the store.
func (p *Planner) flush() error {
	data, err := Encode(p.state)
	if err != nil {
		return err
	}
	if err := p.store.Save(p.key, data); err != nil {
		p.log.Error("persist state failed", zap.String("key", p.key), zap.Error(err))
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
