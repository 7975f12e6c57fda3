package planner

import "math"

// Counts returns how many normal tasks exist across the week and how many of
// them are completed. Hourly slots are not counted.
func Counts(w Week) (completed, total int) {
	for _, d := range Weekdays {
		day := w[d]
		if day == nil {
			continue
		}
		for _, t := range day.Normal {
			total++
			if t.Completed {
				completed++
			}
		}
	}
	return completed, total
}

// Productivity returns the rounded percentage of completed normal tasks in w,
// or 0 when w has none.
func Productivity(w Week) int {
	completed, total := Counts(w)
	return percent(completed, total)
}

// Progress is the completion state of a single day.
type Progress struct {
	Completed int
	Total     int
	Percent   int
}

func DayProgress(d *Day) Progress {
	if d == nil {
		return Progress{}
	}
	p := Progress{Total: len(d.Normal)}
	for _, t := range d.Normal {
		if t.Completed {
			p.Completed++
		}
	}
	p.Percent = percent(p.Completed, p.Total)
	return p
}

// Point is one entry of the productivity series.
type Point struct {
	Label string
	Value int
}

// History returns one point per archive, in archive order, labelled with the
// archive's week start.
func History(archives []Archive) []Point {
	points := make([]Point, 0, len(archives))
	for _, a := range archives {
		points = append(points, Point{
			Label: string(a.WeekStart),
			Value: Productivity(a.Tasks),
		})
	}
	return points
}

func percent(n, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(n) / float64(total) * 100))
}
