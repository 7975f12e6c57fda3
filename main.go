package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/todoo/internal/config"
	"github.com/sadopc/todoo/internal/logging"
	"github.com/sadopc/todoo/internal/planner"
	"github.com/sadopc/todoo/internal/store"
	"github.com/sadopc/todoo/internal/tui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var Version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "todoo",
		Short:         "Weekly task tracker for the terminal",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTUI,
	}

	cmd.PersistentFlags().String("config", config.ResolveConfigPath(), "Path to config file")
	cmd.AddCommand(exportCmd())
	cmd.AddCommand(statusCmd())

	return cmd
}

func runTUI(cmd *cobra.Command, args []string) error {
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer sess.close()

	now := time.Now()
	startup, err := sess.planner.CheckRollover(now)
	if err != nil {
		return err
	}

	app := tui.NewApp(sess.planner, now, startup)
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// session bundles everything a command needs to work on the saved state.
type session struct {
	cfg     config.Config
	log     *zap.Logger
	store   *store.Store
	planner *planner.Planner
}

func openSession(cmd *cobra.Command) (*session, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadOrCreate(path)
	if err != nil {
		return nil, err
	}

	log, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	s, err := store.New(cfg.DBPath)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("open database: %w", err)
	}

	p, err := planner.Open(s, cfg.DocumentKey, log)
	if err != nil {
		s.Close()
		log.Sync()
		return nil, err
	}

	log.Info("session opened",
		zap.String("db", cfg.DBPath),
		zap.String("key", cfg.DocumentKey),
		zap.String("version", Version),
	)
	return &session{cfg: cfg, log: log, store: s, planner: p}, nil
}

func (s *session) close() {
	if err := s.store.Close(); err != nil {
		s.log.Warn("close database", zap.Error(err))
	}
	s.log.Sync()
}
