// Package app implements the application layer for grind.
package app

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/grind/internal/adapters/fs"
	"go.trai.ch/grind/internal/core/domain"
	"go.trai.ch/grind/internal/core/ports"
	"go.trai.ch/grind/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	pipeline     *pipeline.Pipeline
	logger       ports.Logger

	stdout io.Writer
	stderr io.Writer
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, p *pipeline.Pipeline, log ports.Logger) *App {
	return &App{
		configLoader: loader,
		pipeline:     p,
		logger:       log,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
	}
}

// WithOutput redirects the application's output streams. Used for testing.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	// Force bypasses the staleness check and always recompiles.
	Force bool
	// ConfigFile is the path to the configuration file. Empty means the
	// loader's default location.
	ConfigFile string
}

// Build runs one build-verify cycle: load configuration, run the
// pipeline, and report the classified outcome.
//
// A classified failure (compile or check) is reported with the failing
// stage's full stdout and stderr, then returned as
// domain.ErrBuildFailed. Fatal errors (unusable configuration, tool
// unavailable) pass through unclassified.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	cfg, err := a.configLoader.Load(opts.ConfigFile)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	if opts.Force {
		cfg.ForceRebuild = true
	}

	outcome, err := a.pipeline.Run(ctx, cfg)
	if err != nil {
		return err
	}

	a.report(cfg, outcome)

	if outcome.Failed() {
		return errors.Join(domain.ErrBuildFailed,
			zerr.With(zerr.New("pipeline ended in failure"), "status", string(outcome.Status())))
	}
	return nil
}

// report surfaces the outcome to the user: the captured streams of the
// stage that produced the terminal result are written in full,
// unfiltered and untruncated, so the result is diagnosable without
// re-running.
func (a *App) report(cfg domain.Config, outcome domain.BuildOutcome) {
	if failing := outcome.FailingResult(); failing != nil {
		a.echo(failing)
		a.logger.Error(zerr.With(
			zerr.With(zerr.New("build verification failed"), "status", string(outcome.Status())),
			"exit_code", failing.ExitCode))
		return
	}

	// The checker prints its report even on a clean run; reprint it so
	// the verdict is visible without re-running.
	if outcome.Check != nil {
		a.echo(outcome.Check)
	}

	summary := "build " + string(outcome.Build) + ", check passed"
	if digest, err := fs.Digest(artifactPath(cfg)); err == nil {
		summary += " (artifact " + cfg.Artifact + " xxh64:" + digest + ")"
	}
	a.logger.Info(summary)
}

// echo writes a tool's captured streams to the application's own,
// keeping stdout and stderr separate.
func (a *App) echo(result *domain.ToolResult) {
	if result.Stdout != "" {
		_, _ = io.WriteString(a.stdout, result.Stdout)
	}
	if result.Stderr != "" {
		_, _ = io.WriteString(a.stderr, result.Stderr)
	}
}

func artifactPath(cfg domain.Config) string {
	if cfg.WorkingDir == "" || filepath.IsAbs(cfg.Artifact) {
		return cfg.Artifact
	}
	return filepath.Join(cfg.WorkingDir, cfg.Artifact)
}
