// pattern: Imperative Shell
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	flag "github.com/spf13/pflag"

	"sweeper/internal/config"
	"sweeper/internal/events"
	"sweeper/internal/instance"
	"sweeper/internal/logging"
	"sweeper/internal/progress"
	"sweeper/internal/scan"
	"sweeper/internal/sweep"
	"sweeper/internal/tui"
)

var version = "dev"

func main() {
	configDir := flag.StringP("config-dir", "c", "", "config directory (default: ~/.config/sweeper)")
	dryRun := flag.Bool("dry-run", false, "list what would be deleted and cleaned, mutate nothing")
	force := flag.Bool("force", false, "skip the deletion confirmation")
	parallel := flag.Int("parallel", 0, "clean-phase workers (overrides config)")
	deleteParallel := flag.Int("delete-parallel", 0, "delete-phase workers (overrides config)")
	noTUI := flag.Bool("no-tui", false, "plain line output even on a terminal")
	showVersion := flag.BoolP("version", "V", false, "print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sweeper [flags] [root]\n\n")
		fmt.Fprintf(os.Stderr, "Reclaims disk space under root (default: current directory) by deleting\n")
		fmt.Fprintf(os.Stderr, "build and cache directories, then refreshes every discovered project.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("sweeper %s\n", version)
		return
	}

	root := "."
	if flag.NArg() > 0 {
		root = flag.Arg(0)
	}
	root, err := filepath.Abs(root)
	if err != nil {
		fatal("invalid root path: %v", err)
	}
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		fatal("root path %s does not exist or is not a directory", root)
	}

	cfg, err := loadConfig(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
	}
	if *parallel > 0 {
		cfg.MaxParallel = *parallel
	}
	if *deleteParallel > 0 {
		cfg.MaxDeleteParallel = *deleteParallel
	}

	dataDir := config.ResolveDataDir("")

	// Two concurrent runs deleting from the same tree is never what anyone
	// wants; one lock per user keeps it simple.
	fl, err := instance.Lock(dataDir)
	if err != nil {
		fatal("%v", err)
	}
	defer instance.Release(fl)

	logManager, err := logging.NewManager(logging.Config{
		FilePath:       filepath.Join(dataDir, "sweeper.log"),
		MaxSizeMB:      10,
		MaxBackups:     3,
		MaxAgeDays:     7,
		ChannelBufSize: 1000,
		Level:          cfg.LogLevel,
	})
	if err != nil {
		fatal("failed to initialize logging: %v", err)
	}
	defer func() { _ = logManager.Close() }()

	appLogger := logManager.For("app")
	appLogger.Info("run starting", "version", version, "root", root, "dry_run", *dryRun, "force", *force)

	opts := runOptions{Root: root, DryRun: *dryRun, Force: *force}

	useTUI := !*noTUI && !*dryRun && isatty.IsTerminal(os.Stdout.Fd())

	var sum sweep.RunSummary
	if useTUI {
		sum, err = runWithTUI(cfg, opts, logManager)
	} else {
		sum, err = runPlain(cfg, opts, logManager)
	}

	if err != nil {
		if errors.Is(err, sweep.ErrAborted) {
			fmt.Fprintln(os.Stderr, "Aborted. Nothing was deleted.")
			os.Exit(1)
		}
		appLogger.Error("run failed", "error", err)
		fatal("%v", err)
	}
	appLogger.Info("run finished",
		"elapsed", sum.Elapsed.String(),
		"scanned", sum.Scanned,
		"freed_bytes", sum.FreedBytes,
		"projects_cleaned", sum.ProjectsCleaned,
		"failed_deletions", len(sum.FailedDeletions))
}

// loadConfig loads the configuration from the specified directory or the
// default location.
func loadConfig(configDir string) (config.Config, error) {
	if configDir != "" {
		return config.LoadFromDir(configDir)
	}
	return config.Load()
}

// runWithTUI drives the pipeline behind the interactive progress UI. The
// pipeline runs in its own goroutine and feeds the model via Program.Send.
func runWithTUI(cfg config.Config, opts runOptions, logManager *logging.Manager) (sweep.RunSummary, error) {
	model := tui.NewModel(cfg.Theme, logManager.Entries())
	p := tea.NewProgram(model, tea.WithAltScreen())

	pipeline := buildPipeline(cfg, opts, logManager, &tuiConfirmer{program: p},
		func(n scan.Notification) { p.Send(events.ScanProgressMsg{Note: n}) },
		func(s progress.Snapshot) { p.Send(events.PoolProgressMsg{Snapshot: s}) },
		nil)
	pipeline.OnScanDone = func(r scan.Result) { p.Send(events.ScanDoneMsg{Result: r}) }

	done := make(chan events.RunDoneMsg, 1)
	go func() {
		sum, err := pipeline.Run(opts.Root)
		msg := events.RunDoneMsg{Summary: sum, Err: err}
		done <- msg
		p.Send(msg)
	}()

	if _, err := p.Run(); err != nil {
		return sweep.RunSummary{}, err
	}
	select {
	case msg := <-done:
		return msg.Summary, msg.Err
	default:
		// UI was quit while workers were still running.
		return sweep.RunSummary{}, errors.New("interrupted")
	}
}

// tuiConfirmer routes the confirmation prompt through the TUI's modal
// dialog and blocks the pipeline goroutine until the user answers.
type tuiConfirmer struct {
	program *tea.Program
}

func (c *tuiConfirmer) Confirm(message string) bool {
	reply := make(chan bool, 1)
	c.program.Send(events.ConfirmRequestMsg{Message: message, Reply: reply})
	return <-reply
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
