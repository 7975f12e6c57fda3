package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/sadopc/todoo/internal/planner"
)

// ToCSV writes one row per archived week, in archive order.
func ToCSV(archives []planner.Archive, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}

	if err := writeCSV(f, archives); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close csv file: %w", err)
	}
	return nil
}

func writeCSV(out io.Writer, archives []planner.Archive) error {
	w := csv.NewWriter(out)

	// Header
	if err := w.Write([]string{"Week Start", "Completed", "Total", "Productivity (%)", "Bar"}); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	for _, a := range archives {
		completed, total := planner.Counts(a.Tasks)
		pct := planner.Productivity(a.Tasks)
		row := []string{
			string(a.WeekStart),
			fmt.Sprintf("%d", completed),
			fmt.Sprintf("%d", total),
			fmt.Sprintf("%d", pct),
			formatBar(pct),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// formatBar renders a percentage as a ten-cell text gauge.
func formatBar(pct int) string {
	filled := pct / 10
	bar := make([]rune, 10)
	for i := range bar {
		if i < filled {
			bar[i] = '#'
		} else {
			bar[i] = '.'
		}
	}
	return string(bar)
}
