package planner

import (
	"testing"
	"time"
)

func TestWeekStart(t *testing.T) {
	tests := []struct {
		now  time.Time
		want Date
	}{
		{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "2024-01-01"},    // Monday
		{time.Date(2024, 1, 3, 15, 4, 5, 0, time.UTC), "2024-01-01"},   // Wednesday
		{time.Date(2024, 1, 7, 23, 59, 59, 0, time.UTC), "2024-01-01"}, // Sunday
		{time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), "2024-01-08"},    // next Monday
		{time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), "2024-02-26"},   // across month, leap year
		{time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC), "2022-12-26"},   // Sunday across year
	}
	for _, tt := range tests {
		if got := WeekStart(tt.now); got != tt.want {
			t.Errorf("WeekStart(%s) = %q, want %q", tt.now.Format(time.RFC3339), got, tt.want)
		}
	}
}

func TestWeekStartAlwaysMondayAndStableWithinWeek(t *testing.T) {
	base := time.Date(2023, 12, 18, 0, 0, 0, 0, time.UTC) // Monday
	for week := 0; week < 60; week++ {
		monday := base.AddDate(0, 0, 7*week)
		want := WeekStart(monday)
		for h := 0; h < 7*24; h += 5 {
			ts := monday.Add(time.Duration(h) * time.Hour)
			got := WeekStart(ts)
			if got != want {
				t.Fatalf("WeekStart(%s) = %q, want %q", ts, got, want)
			}
			d, err := got.Time()
			if err != nil {
				t.Fatal(err)
			}
			if d.Weekday() != time.Monday {
				t.Fatalf("%q is a %s", got, d.Weekday())
			}
		}
	}
}

func TestWeekStartUsesLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	// Monday 01:00 in Tokyo is still Sunday in UTC.
	now := time.Date(2024, 1, 8, 1, 0, 0, 0, tokyo)
	if got := WeekStart(now); got != "2024-01-08" {
		t.Fatalf("WeekStart = %q, want 2024-01-08", got)
	}
}

func TestRolloverFirstRun(t *testing.T) {
	s := Default()
	s.Tasks[Monday].Normal = []Task{{Text: "A", Completed: true}}

	res := Rollover(s, "2024-01-08")
	if !res.FirstRun || res.Archived {
		t.Fatalf("unexpected result: %+v", res)
	}
	if len(s.Archives) != 0 {
		t.Fatal("nothing should be archived on first run")
	}
	if !s.Tasks[Monday].Normal[0].Completed {
		t.Fatal("first run should not reset tasks")
	}
	if !s.CurrentWeek.IsZero() {
		t.Fatal("Rollover must leave CurrentWeek to the caller")
	}
}

func TestRolloverArchivesAndResets(t *testing.T) {
	s := Default()
	s.CurrentWeek = "2024-01-01"
	s.Tasks[Monday].Normal = []Task{{Text: "A", Completed: true}, {Text: "B"}}
	s.Tasks[Friday].Normal = []Task{{Text: "C", Completed: true}}

	res := Rollover(s, "2024-01-08")
	if !res.Archived || res.From != "2024-01-01" || res.To != "2024-01-08" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if len(s.Archives) != 1 {
		t.Fatalf("expected 1 archive, got %d", len(s.Archives))
	}
	a := s.Archives[0]
	if a.WeekStart != "2024-01-01" {
		t.Fatalf("weekStart = %q", a.WeekStart)
	}
	if Productivity(a.Tasks) != 67 {
		t.Fatalf("archived productivity = %d, want 67", Productivity(a.Tasks))
	}

	// Text and order kept, flags cleared.
	mon := s.Tasks[Monday].Normal
	if len(mon) != 2 || mon[0].Text != "A" || mon[1].Text != "B" {
		t.Fatalf("tasks changed: %+v", mon)
	}
	for _, d := range Weekdays {
		for _, task := range s.Tasks[d].Normal {
			if task.Completed {
				t.Fatalf("%s %q still completed", d, task.Text)
			}
		}
	}

	// Snapshot is independent of live state.
	s.Tasks[Monday].Normal[0].Text = "changed"
	if a.Tasks[Monday].Normal[0].Text != "A" || !a.Tasks[Monday].Normal[0].Completed {
		t.Fatal("archive shares memory with live tasks")
	}
}

// Hourly slots are cleared each time Rollover runs in hour mode, even when
// the week did not change. CheckRollover is what gates on the week.
func TestRolloverHourModeClearsEveryCall(t *testing.T) {
	s := Default()
	s.CurrentWeek = "2024-01-08"
	s.Settings.HourMode = true
	s.Tasks[Monday].Normal = []Task{{Text: "A", Completed: true}}

	for i := 0; i < 2; i++ {
		s.Tasks[Tuesday].Hourly[9] = "standup"
		res := Rollover(s, "2024-01-08")
		if !res.HourlyCleared {
			t.Fatal("expected hourly clear")
		}
		if len(s.Tasks[Tuesday].Hourly) != 0 {
			t.Fatalf("call %d: hourly not cleared", i)
		}
	}
	if len(s.Archives) != 0 {
		t.Fatal("hour mode must not archive")
	}
	if !s.Tasks[Monday].Normal[0].Completed {
		t.Fatal("hour mode must not reset normal tasks")
	}
}

func TestDateJSON(t *testing.T) {
	var d Date
	if err := d.UnmarshalJSON([]byte(`"2024-01-01"`)); err != nil || d != "2024-01-01" {
		t.Fatalf("unmarshal: %q %v", d, err)
	}
	if err := d.UnmarshalJSON([]byte(`null`)); err != nil || !d.IsZero() {
		t.Fatal("null should reset the date")
	}
	b, _ := Date("").MarshalJSON()
	if string(b) != "null" {
		t.Fatalf("zero date = %s", b)
	}
	if _, err := Date("nope").Time(); err == nil {
		t.Fatal("expected parse error")
	}
}
