// Package cli wires the pomod command tree.
package cli

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/sandeepkv93/pomod/internal/config"
	"github.com/sandeepkv93/pomod/internal/idgen"
	"github.com/sandeepkv93/pomod/internal/logging"
	"github.com/sandeepkv93/pomod/internal/notify"
	"github.com/sandeepkv93/pomod/internal/pomodoro"
	"github.com/sandeepkv93/pomod/internal/storage"
	"github.com/sandeepkv93/pomod/internal/tasklist"
	"github.com/sandeepkv93/pomod/internal/theme"
	"github.com/sandeepkv93/pomod/internal/update"
	"github.com/spf13/cobra"
)

type options struct {
	configPath     string
	storageBackend string
	storagePath    string
	logLevel       string
	workMinutes    int
	breakMinutes   int
	noNotify       bool
}

// NewRootCommand builds the command tree. Running it without a subcommand
// starts the TUI.
func NewRootCommand(version string) *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "pomod",
		Short:         "Pomodoro timer with a persisted task list",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "config file (default ~/.config/pomod/pomod.toml)")
	pf.StringVar(&opts.storageBackend, "storage", "", "storage backend: sqlite or file")
	pf.StringVar(&opts.storagePath, "db", "", "storage path")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.Flags().IntVar(&opts.workMinutes, "work", 0, "work phase length in minutes")
	root.Flags().IntVar(&opts.breakMinutes, "break", 0, "break phase length in minutes")
	root.Flags().BoolVar(&opts.noNotify, "no-notify", false, "disable desktop notifications")

	root.AddCommand(newTasksCommand(opts))
	root.AddCommand(newThemeCommand(opts))
	root.AddCommand(newConfigCommand(opts))
	root.AddCommand(newVersionCommand(version))
	return root
}

// Execute runs the root command
func Execute(version string) error {
	if err := NewRootCommand(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// loadConfig layers explicitly set flags over file and environment values.
func loadConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("storage") {
		cfg.StorageBackend = opts.storageBackend
	}
	if flags.Changed("db") {
		cfg.StoragePath = opts.storagePath
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("work") && opts.workMinutes > 0 {
		cfg.WorkMinutes = opts.workMinutes
	}
	if flags.Changed("break") && opts.breakMinutes > 0 {
		cfg.BreakMinutes = opts.breakMinutes
	}
	if flags.Changed("no-notify") && opts.noNotify {
		cfg.DesktopNotifications = false
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func openStore(cfg config.Config) (storage.Store, error) {
	switch cfg.StorageBackend {
	case config.BackendFile:
		return storage.OpenFile(cfg.StoragePath)
	default:
		return storage.OpenSQLite(cfg.StoragePath)
	}
}

func loggerOptions(cfg config.Config) logging.Options {
	opts := logging.DefaultOptions()
	opts.Level = logging.ParseLevel(cfg.LogLevel)
	opts.Formatter = logging.ParseFormatter(cfg.LogFormat)
	return opts
}

// consoleLogger is used by the one-shot subcommands, which do not own the
// terminal.
func consoleLogger(cmd *cobra.Command, cfg config.Config) *log.Logger {
	opts := loggerOptions(cfg)
	opts.ReportTimestamp = false
	if opts.Level < log.WarnLevel {
		opts.Level = log.WarnLevel
	}
	return logging.New(cmd.ErrOrStderr(), opts)
}

func runTUI(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	logger, closer, err := logging.OpenFile(cfg.LogPath, loggerOptions(cfg))
	if err != nil {
		return err
	}
	defer closer.Close()

	store, err := openStore(cfg)
	if err != nil {
		logger.Error("open store failed", "backend", cfg.StorageBackend, "path", cfg.StoragePath, "err", err)
		return err
	}
	defer store.Close()

	logger.Info("starting", "backend", cfg.StorageBackend, "work", cfg.WorkMinutes, "break", cfg.BreakMinutes)
	m := update.NewModel(update.Deps{
		Tasks:  tasklist.New(store, logger),
		Theme:  theme.NewManager(store, theme.TerminalDetector(), logger),
		Notify: notify.NewCenter(notify.NewExecNotifier(), cfg.DesktopNotifications, logger),
		IDs:    idgen.NewUUIDGenerator(),
		Durations: pomodoro.Durations{
			Work:  minutes(cfg.WorkMinutes),
			Break: minutes(cfg.BreakMinutes),
		},
		Logger: logger,
	})

	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithReportFocus())
	final, err := program.Run()
	if fm, ok := final.(update.Model); ok {
		fm.Shutdown()
	}
	if err != nil {
		logger.Error("tui exited", "err", err)
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func minutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}
