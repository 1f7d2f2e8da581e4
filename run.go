// pattern: Imperative Shell
package main

import (
	"io"
	"os"

	"sweeper/internal/config"
	"sweeper/internal/fsops"
	"sweeper/internal/logging"
	"sweeper/internal/progress"
	"sweeper/internal/scan"
	"sweeper/internal/sweep"
	"sweeper/internal/toolchain"
)

// runOptions are the per-invocation knobs from the command line.
type runOptions struct {
	Root   string
	DryRun bool
	Force  bool
}

// buildPipeline wires the real collaborators into the three-phase pipeline.
// out receives dry-run listings; nil means stdout.
func buildPipeline(
	cfg config.Config,
	opts runOptions,
	logs logging.LoggerProvider,
	confirm sweep.Confirmer,
	scanNotify func(scan.Notification),
	observe func(progress.Snapshot),
	out io.Writer,
) *sweep.Pipeline {
	if out == nil {
		out = os.Stdout
	}

	fs := fsops.New(logs.For("fsops"))
	runner := toolchain.NewRunner(cfg.CleanCommand, cfg.FetchCommand, logs.For("toolchain"))
	scanner := scan.NewScanner(scan.Options{
		TrashNames:   cfg.TrashNames,
		SkipNames:    cfg.SkipNames,
		HiddenPrefix: cfg.HiddenPrefix,
		MarkerFile:   cfg.MarkerFile,
		Notify:       scanNotify,
	})

	return &sweep.Pipeline{
		Scanner: scanner,
		Delete: &sweep.DeletionCoordinator{
			Sizer:    fs,
			Deleter:  fs,
			Confirm:  confirm,
			Parallel: cfg.MaxDeleteParallel,
			DryRun:   opts.DryRun,
			Force:    opts.Force,
			Out:      out,
			Logger:   logs.For("sweep.delete"),
			Observe:  observe,
		},
		Clean: &sweep.ProjectTaskCoordinator{
			Runner:   runner,
			Parallel: cfg.MaxParallel,
			DryRun:   opts.DryRun,
			Out:      out,
			Logger:   logs.For("sweep.clean"),
			Observe:  observe,
		},
		Logger: logs.For("pipeline"),
	}
}

// runPlain drives the pipeline with line-oriented progress on stderr, for
// non-TTY use and --no-tui.
func runPlain(cfg config.Config, opts runOptions, logs logging.LoggerProvider) (sweep.RunSummary, error) {
	rep := newPlainReporter(os.Stderr)
	confirm := &stdinConfirmer{in: os.Stdin, out: os.Stderr}

	pipeline := buildPipeline(cfg, opts, logs, confirm, rep.ScanNote, rep.Pool, os.Stdout)
	pipeline.OnScanDone = rep.ScanDone

	sum, err := pipeline.Run(opts.Root)
	if err != nil {
		return sum, err
	}
	rep.Summary(sum, opts.DryRun)
	return sum, nil
}
