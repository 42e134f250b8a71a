// Package pipeline implements the build-verify orchestration: it
// decides whether to recompile, invokes the compiler when needed, and
// runs the resulting artifact under the memory checker.
package pipeline

import (
	"context"
	"path/filepath"
	"strings"

	"go.trai.ch/grind/internal/core/domain"
	"go.trai.ch/grind/internal/core/ports"
	"go.trai.ch/zerr"
)

// Pipeline sequences compilation (conditionally) and verification, and
// classifies the end-to-end result. It is strictly sequential: each
// tool invocation blocks until the process exits and its streams are
// fully captured.
type Pipeline struct {
	invoker ports.Invoker
	oracle  ports.RebuildOracle
	logger  ports.Logger
	tracer  ports.Telemetry
}

// New creates a new Pipeline.
func New(
	invoker ports.Invoker,
	oracle ports.RebuildOracle,
	logger ports.Logger,
	tracer ports.Telemetry,
) *Pipeline {
	return &Pipeline{
		invoker: invoker,
		oracle:  oracle,
		logger:  logger,
		tracer:  tracer,
	}
}

// Run executes one build-verify cycle.
//
// The returned error is reserved for fatal conditions: invalid
// configuration or a tool that could not be launched
// (domain.ErrToolUnavailable). Compile and check failures are
// classified into the BuildOutcome, never surfaced as errors, and the
// checker is never run against an artifact that failed to compile.
func (p *Pipeline) Run(ctx context.Context, cfg domain.Config) (domain.BuildOutcome, error) {
	if err := cfg.Validate(); err != nil {
		return domain.BuildOutcome{}, err
	}

	outcome, err := p.compile(ctx, cfg)
	if err != nil || outcome.Build == domain.StatusCompileFailed {
		return outcome, err
	}

	return p.verify(ctx, cfg, outcome)
}

// compile consults the staleness oracle and conditionally runs the
// compiler, recording the build phase of the outcome.
func (p *Pipeline) compile(ctx context.Context, cfg domain.Config) (domain.BuildOutcome, error) {
	var outcome domain.BuildOutcome

	_, vertex := p.tracer.Record(ctx, "compile "+cfg.Artifact)

	if !cfg.ForceRebuild && !p.oracle.NeedsRebuild(p.path(cfg, cfg.Artifact), p.sourcePaths(cfg)) {
		outcome.Build = domain.StatusSkipped
		vertex.Cached()
		p.logger.Info("artifact " + cfg.Artifact + " is up to date, skipping compilation")
		return outcome, nil
	}

	p.logger.Info("compiling " + strings.Join(cfg.Sources, ", ") + " into " + cfg.Artifact)

	result, err := p.invoker.Invoke(ctx, cfg.WorkingDir, cfg.Compiler.Path, compileArgs(cfg))
	if err != nil {
		vertex.Complete(err)
		return outcome, err
	}

	record(vertex, result)
	outcome.Compile = &result

	if !result.Ok() {
		outcome.Build = domain.StatusCompileFailed
		vertex.Complete(zerr.With(zerr.New("compiler exited non-zero"), "exit_code", result.ExitCode))
		return outcome, nil
	}

	outcome.Build = domain.StatusRebuilt
	vertex.Complete(nil)
	return outcome, nil
}

// verify runs the checker against the artifact and records the verify
// phase of the outcome.
func (p *Pipeline) verify(ctx context.Context, cfg domain.Config, outcome domain.BuildOutcome) (domain.BuildOutcome, error) {
	_, vertex := p.tracer.Record(ctx, "check "+cfg.Artifact)

	p.logger.Info("verifying " + cfg.Artifact + " with " + cfg.Checker.Path)

	result, err := p.invoker.Invoke(ctx, cfg.WorkingDir, cfg.Checker.Path, checkArgs(cfg))
	if err != nil {
		vertex.Complete(err)
		return outcome, err
	}

	record(vertex, result)
	outcome.Check = &result

	if !result.Ok() {
		// The checker folds "program misbehaved" and "memory violation
		// detected" into one exit code; both classify as CheckFailed.
		outcome.Verify = domain.StatusCheckFailed
		vertex.Complete(zerr.With(zerr.New("checker exited non-zero"), "exit_code", result.ExitCode))
		return outcome, nil
	}

	outcome.Verify = domain.StatusCheckPassed
	vertex.Complete(nil)
	return outcome, nil
}

// compileArgs assembles the compiler argv in the toolchain's expected
// order: flags, then sources in declared link order, then the output
// flag, then link flags.
func compileArgs(cfg domain.Config) []string {
	args := make([]string, 0, len(cfg.Compiler.Flags)+len(cfg.Sources)+2+len(cfg.LinkFlags))
	args = append(args, cfg.Compiler.Flags...)
	args = append(args, cfg.Sources...)
	args = append(args, "-o", cfg.Artifact)
	args = append(args, cfg.LinkFlags...)
	return args
}

// checkArgs assembles the checker argv: checker flags, the artifact,
// then any runtime arguments the program under test expects.
func checkArgs(cfg domain.Config) []string {
	args := make([]string, 0, len(cfg.Checker.Flags)+1+len(cfg.RunArgs))
	args = append(args, cfg.Checker.Flags...)
	args = append(args, artifactRunPath(cfg.Artifact))
	args = append(args, cfg.RunArgs...)
	return args
}

// artifactRunPath qualifies a bare artifact name so the checker runs
// the freshly built binary rather than resolving the name on PATH.
func artifactRunPath(artifact string) string {
	if filepath.IsAbs(artifact) || strings.ContainsRune(artifact, filepath.Separator) {
		return artifact
	}
	return "." + string(filepath.Separator) + artifact
}

// path resolves a configured path against the working directory for
// filesystem checks; tool invocations already run in the working
// directory.
func (p *Pipeline) path(cfg domain.Config, name string) string {
	if cfg.WorkingDir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(cfg.WorkingDir, name)
}

func (p *Pipeline) sourcePaths(cfg domain.Config) []string {
	if cfg.WorkingDir == "" {
		return cfg.Sources
	}
	paths := make([]string, len(cfg.Sources))
	for i, src := range cfg.Sources {
		paths[i] = p.path(cfg, src)
	}
	return paths
}

// record copies a tool's captured streams onto the vertex, keeping
// stdout and stderr separate.
func record(vertex ports.Vertex, result domain.ToolResult) {
	if result.Stdout != "" {
		_, _ = vertex.Stdout().Write([]byte(result.Stdout))
	}
	if result.Stderr != "" {
		_, _ = vertex.Stderr().Write([]byte(result.Stderr))
	}
}
