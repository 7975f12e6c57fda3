package main

import (
	"fmt"
	"strings"

	"github.com/sadopc/todoo/internal/planner"
	"github.com/spf13/cobra"
)

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show where data lives and what is stored",
		Long: `Display the storage status:
- config, database and log paths
- stored documents with their revision and last write
- current week, archived weeks and this week's productivity`,
		Args: cobra.NoArgs,
		RunE: runStatus,
	}
}

func runStatus(cmd *cobra.Command, args []string) error {
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer sess.close()

	out := cmd.OutOrStdout()
	configPath, _ := cmd.Flags().GetString("config")

	fmt.Fprintln(out, "todoo status")
	fmt.Fprintln(out, strings.Repeat("=", 40))

	fmt.Fprintln(out, "\nPaths:")
	fmt.Fprintf(out, "  Config:    %s\n", configPath)
	fmt.Fprintf(out, "  Database:  %s\n", sess.cfg.DBPath)
	fmt.Fprintf(out, "  Log:       %s\n", sess.cfg.LogFile)

	docs, err := sess.store.ListDocuments()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "\nDocuments:")
	if len(docs) == 0 {
		fmt.Fprintln(out, "  (none yet)")
	}
	for _, d := range docs {
		marker := " "
		if d.Key == sess.cfg.DocumentKey {
			marker = "*"
		}
		fmt.Fprintf(out, " %s%-16s rev %-5d %7d bytes  %s\n",
			marker, d.Key, d.Revision, len(d.Value), d.UpdatedAt.Local().Format("2006-01-02 15:04"))
	}

	settings := sess.planner.Settings()
	fmt.Fprintln(out, "\nPlanner:")
	fmt.Fprintf(out, "  Week:      %s\n", weekOrUnset(sess.planner.CurrentWeek()))
	fmt.Fprintf(out, "  Archived:  %d weeks\n", len(sess.planner.Archives()))
	if settings.HourMode {
		fmt.Fprintf(out, "  Mode:      hourly (%02dh-%02dh)\n", settings.StartHour, settings.EndHour)
	} else {
		fmt.Fprintf(out, "  Mode:      tasks, %d%% done this week\n", sess.planner.Productivity())
	}
	return nil
}

func weekOrUnset(d planner.Date) string {
	if d.IsZero() {
		return "not started"
	}
	return string(d)
}
