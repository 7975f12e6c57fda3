package planner

import (
	"encoding/json"
	"fmt"
	"time"
)

// Weekday identifies one column of the week. Values double as JSON keys.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays lists the days in calendar order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Valid reports whether d is one of the seven known days.
func (d Weekday) Valid() bool {
	for _, w := range Weekdays {
		if w == d {
			return true
		}
	}
	return false
}

// Short returns a three letter label such as "Mon".
func (d Weekday) Short() string {
	if len(d) < 3 {
		return string(d)
	}
	return string(d[0]-'a'+'A') + string(d[1:3])
}

// WeekdayOf maps a time to its Weekday.
func WeekdayOf(t time.Time) Weekday {
	wd := int(t.Weekday()) // 0 = Sunday
	if wd == 0 {
		return Sunday
	}
	return Weekdays[wd-1]
}

// Date is an ISO calendar date ("2006-01-02"). The zero value means "not set"
// and is encoded as JSON null.
type Date string

const dateLayout = "2006-01-02"

func DateOf(t time.Time) Date {
	return Date(t.Format(dateLayout))
}

func (d Date) IsZero() bool { return d == "" }

func (d Date) Time() (time.Time, error) {
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", string(d), err)
	}
	return t, nil
}

// Before compares two dates. ISO dates sort lexically.
func (d Date) Before(o Date) bool { return d < o }

func (d Date) MarshalJSON() ([]byte, error) {
	if d == "" {
		return []byte("null"), nil
	}
	return json.Marshal(string(d))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*d = Date(s)
	return nil
}

type Settings struct {
	DarkMode  bool `json:"darkMode"`
	HourMode  bool `json:"hourMode"`
	StartHour int  `json:"startHour"`
	EndHour   int  `json:"endHour"`
}

type Task struct {
	ID        string `json:"id,omitempty"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Day holds both scheduling modes. Only one is shown at a time but both are
// kept so switching modes never loses data.
type Day struct {
	Normal []Task         `json:"normal"`
	Hourly map[int]string `json:"hourly"`
}

func newDay() *Day {
	return &Day{Normal: []Task{}, Hourly: map[int]string{}}
}

func (d *Day) clone() *Day {
	c := &Day{
		Normal: make([]Task, len(d.Normal)),
		Hourly: make(map[int]string, len(d.Hourly)),
	}
	copy(c.Normal, d.Normal)
	for h, v := range d.Hourly {
		c.Hourly[h] = v
	}
	return c
}

// Week maps every weekday to its tasks.
type Week map[Weekday]*Day

func newWeek() Week {
	w := make(Week, len(Weekdays))
	for _, d := range Weekdays {
		w[d] = newDay()
	}
	return w
}

// Clone returns a deep copy sharing nothing with w.
func (w Week) Clone() Week {
	c := make(Week, len(w))
	for k, d := range w {
		if d == nil {
			c[k] = newDay()
			continue
		}
		c[k] = d.clone()
	}
	return c
}

// Archive is the frozen task set of one finished week.
type Archive struct {
	WeekStart Date `json:"weekStart"`
	Tasks     Week `json:"tasks"`
}

// State is the whole persisted document.
type State struct {
	Settings    Settings  `json:"settings"`
	CurrentWeek Date      `json:"currentWeek"`
	Archives    []Archive `json:"archives"`
	Tasks       Week      `json:"tasks"`
}
