package planner

import "time"

// WeekStart returns the Monday of the week containing now, in now's location.
// Weeks run Monday to Sunday, so a Sunday maps to the Monday six days earlier.
func WeekStart(now time.Time) Date {
	y, m, d := now.Date()
	wd := int(now.Weekday())
	offset := wd - 1
	if wd == 0 {
		offset = 6
	}
	monday := time.Date(y, m, d-offset, 0, 0, 0, 0, now.Location())
	return DateOf(monday)
}

// RolloverResult describes what a rollover pass did.
type RolloverResult struct {
	From Date // week that was current before the pass
	To   Date // week the caller is moving to

	Archived      bool
	HourlyCleared bool
	FirstRun      bool

	// Skipped is set by CheckRollover when no pass was needed, or when the
	// clock went backwards.
	Skipped       bool
	ClockWentBack bool
}

// Rollover closes the current week. In hour mode nothing is archived and every
// hourly slot is cleared, each time it is called. Otherwise the live tasks are
// snapshotted into a new archive for CurrentWeek and every normal task is
// unchecked, keeping text and order. Setting CurrentWeek to today is left to
// the caller.
func Rollover(s *State, today Date) RolloverResult {
	res := RolloverResult{From: s.CurrentWeek, To: today}

	if s.Settings.HourMode {
		for _, d := range Weekdays {
			s.Tasks[d].Hourly = map[int]string{}
		}
		res.HourlyCleared = true
		return res
	}

	if s.CurrentWeek.IsZero() {
		res.FirstRun = true
		return res
	}

	s.Archives = append(s.Archives, Archive{
		WeekStart: s.CurrentWeek,
		Tasks:     s.Tasks.Clone(),
	})
	for _, d := range Weekdays {
		day := s.Tasks[d]
		for i := range day.Normal {
			day.Normal[i].Completed = false
		}
	}
	res.Archived = true
	return res
}
