package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sadopc/todoo/internal/export"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export archived weeks as CSV or JSON",
		Long: `Write the productivity history to a file.

Each archived week becomes one record with its completed and total task
counts and the productivity percentage. JSON output also lists the tasks of
every day.`,
		Args: cobra.NoArgs,
		RunE: runExport,
	}

	cmd.Flags().StringP("format", "f", "csv", "Output format (csv, json)")
	cmd.Flags().StringP("out", "o", "", "Output file (default ~/todoo-history-<date>.<format>)")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	out, _ := cmd.Flags().GetString("out")
	if format != "csv" && format != "json" {
		return fmt.Errorf("unknown format %q: use csv or json", format)
	}

	sess, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer sess.close()

	// A week that ended since the last launch belongs in the history.
	if _, err := sess.planner.CheckRollover(time.Now()); err != nil {
		return err
	}

	if out == "" {
		out, err = defaultExportPath(format, time.Now())
		if err != nil {
			return err
		}
	}

	archives := sess.planner.Archives()
	switch format {
	case "csv":
		err = export.ToCSV(archives, out)
	case "json":
		err = export.ToJSON(archives, out)
	}
	if err != nil {
		return err
	}

	sess.log.Info("history exported",
		zap.String("format", format),
		zap.String("path", out),
		zap.Int("weeks", len(archives)),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d weeks to %s\n", len(archives), out)
	return nil
}

func defaultExportPath(format string, now time.Time) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, fmt.Sprintf("todoo-history-%s.%s", now.Format("2006-01-02"), format)), nil
}
