package planner

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	DefaultStartHour = 8
	DefaultEndHour   = 22
	MinHour          = 0
	MaxHour          = 23
)

// legacyDayKeys maps the French weekday keys of the legacy flat layout.
var legacyDayKeys = map[string]Weekday{
	"lundi":    Monday,
	"mardi":    Tuesday,
	"mercredi": Wednesday,
	"jeudi":    Thursday,
	"vendredi": Friday,
	"samedi":   Saturday,
	"dimanche": Sunday,
}

// Default returns a fresh state: default settings, no current week, no
// archives and seven empty days.
func Default() *State {
	return &State{
		Settings: Settings{
			StartHour: DefaultStartHour,
			EndHour:   DefaultEndHour,
		},
		Archives: []Archive{},
		Tasks:    newWeek(),
	}
}

// document is the on-disk shape. It accepts both the current layout and the
// legacy one where settings live at the top level.
type document struct {
	Settings *Settings `json:"settings"`

	DarkMode  *bool `json:"darkMode"`
	HourMode  *bool `json:"hourMode"`
	StartHour *int  `json:"startHour"`
	EndHour   *int  `json:"endHour"`

	CurrentWeek Date              `json:"currentWeek"`
	Archives    []archiveDocument `json:"archives"`
	Tasks       map[string]*Day   `json:"tasks"`
}

type archiveDocument struct {
	WeekStart Date            `json:"weekStart"`
	Tasks     map[string]*Day `json:"tasks"`
}

var errNotObject = errors.New("state document is not a JSON object")

// ErrStateRepaired marks a Decode error where the document was readable but
// some stored values had to be replaced. The returned state is still the
// document's, minus the replaced values.
var ErrStateRepaired = errors.New("stored state repaired")

// legacyDateLayout also accepts dates without zero padding.
const legacyDateLayout = "2006-1-2"

// Decode parses a persisted document. Missing weekdays are repaired with empty
// days. When raw cannot be parsed the default state is returned together with
// the error, so callers can log it and carry on. Replaced values (an invalid
// hour range, an unreadable current week) are reported with ErrStateRepaired.
func Decode(raw []byte) (*State, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return Default(), nil
	}
	if !strings.HasPrefix(trimmed, "{") {
		return Default(), errNotObject
	}

	var doc document
	if err := json.Unmarshal([]byte(trimmed), &doc); err != nil {
		return Default(), fmt.Errorf("decode state: %w", err)
	}

	s := Default()
	if doc.Settings != nil {
		s.Settings = *doc.Settings
	}
	if doc.DarkMode != nil {
		s.Settings.DarkMode = *doc.DarkMode
	}
	if doc.HourMode != nil {
		s.Settings.HourMode = *doc.HourMode
	}
	if doc.StartHour != nil {
		s.Settings.StartHour = *doc.StartHour
	}
	if doc.EndHour != nil {
		s.Settings.EndHour = *doc.EndHour
	}
	var repairs []error
	if !validHourRange(s.Settings.StartHour, s.Settings.EndHour) {
		repairs = append(repairs, fmt.Errorf("%w: hour range %d-%d reset to %d-%d", ErrStateRepaired,
			s.Settings.StartHour, s.Settings.EndHour, DefaultStartHour, DefaultEndHour))
		s.Settings.StartHour = DefaultStartHour
		s.Settings.EndHour = DefaultEndHour
	}

	week, err := normalizeWeek(doc.CurrentWeek)
	if err != nil {
		repairs = append(repairs, fmt.Errorf("%w: current week %q dropped", ErrStateRepaired, string(doc.CurrentWeek)))
	}
	s.CurrentWeek = week
	s.Tasks = repairWeek(doc.Tasks)
	for _, a := range doc.Archives {
		s.Archives = append(s.Archives, Archive{
			WeekStart: a.WeekStart,
			Tasks:     repairWeek(a.Tasks),
		})
	}
	return s, errors.Join(repairs...)
}

// normalizeWeek turns a stored week into the Monday it belongs to. An
// unreadable date comes back as zero, which the next rollover check treats
// as a first run.
func normalizeWeek(d Date) (Date, error) {
	if d.IsZero() {
		return d, nil
	}
	t, err := time.Parse(legacyDateLayout, strings.TrimSpace(string(d)))
	if err != nil {
		return "", err
	}
	return WeekStart(t), nil
}

// Encode serializes the state in the current layout.
func Encode(s *State) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return data, nil
}

// repairWeek maps known keys onto weekdays and fills in any missing day. When
// a day is present under both its English and its legacy key, the English one
// wins.
func repairWeek(raw map[string]*Day) Week {
	w := make(Week, len(Weekdays))
	english := make(map[Weekday]bool, len(Weekdays))
	for k, d := range raw {
		key := strings.ToLower(k)
		day, legacy := legacyDayKeys[key]
		if !legacy {
			day = Weekday(key)
		}
		if !day.Valid() || d == nil {
			continue
		}
		if legacy && english[day] {
			continue
		}
		if !legacy {
			english[day] = true
		}
		if d.Normal == nil {
			d.Normal = []Task{}
		}
		if d.Hourly == nil {
			d.Hourly = map[int]string{}
		}
		w[day] = d
	}
	for _, d := range Weekdays {
		if w[d] == nil {
			w[d] = newDay()
		}
	}
	return w
}

func validHour(h int) bool {
	return h >= MinHour && h <= MaxHour
}

func validHourRange(start, end int) bool {
	return validHour(start) && validHour(end) && start < end
}
