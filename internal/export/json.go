package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/todoo/internal/planner"
)

type jsonExport struct {
	ExportedAt string     `json:"exported_at"`
	Count      int        `json:"count"`
	Weeks      []jsonWeek `json:"weeks"`
}

type jsonWeek struct {
	WeekStart    string              `json:"week_start"`
	Completed    int                 `json:"completed"`
	Total        int                 `json:"total"`
	Productivity int                 `json:"productivity"`
	Days         map[string][]string `json:"days,omitempty"`
}

// ToJSON writes the archived weeks with their productivity and, per day, the
// task texts that were completed ("[x] ") or not ("[ ] ").
func ToJSON(archives []planner.Archive, path string) error {
	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(archives),
		Weeks:      []jsonWeek{},
	}

	for _, a := range archives {
		completed, total := planner.Counts(a.Tasks)
		week := jsonWeek{
			WeekStart:    string(a.WeekStart),
			Completed:    completed,
			Total:        total,
			Productivity: planner.Productivity(a.Tasks),
		}
		for _, d := range planner.Weekdays {
			day := a.Tasks[d]
			if day == nil || len(day.Normal) == 0 {
				continue
			}
			if week.Days == nil {
				week.Days = map[string][]string{}
			}
			for _, t := range day.Normal {
				mark := "[ ] "
				if t.Completed {
					mark = "[x] "
				}
				week.Days[string(d)] = append(week.Days[string(d)], mark+t.Text)
			}
		}
		export.Weeks = append(export.Weeks, week)
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
