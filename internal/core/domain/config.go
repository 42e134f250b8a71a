// Package domain contains the core types for the grind build tool.
package domain

// Tool describes one external executable and the fixed flags it is
// always invoked with.
type Tool struct {
	Path  string
	Flags []string
}

// Config is the immutable configuration for a single build-verify
// invocation. It replaces process-wide constants with an explicit value
// passed into the pipeline at construction time.
type Config struct {
	Compiler Tool
	// LinkFlags are appended after the output flag, matching the
	// compiler's expected `flags... sources... -o artifact ldflags...`
	// argument order.
	LinkFlags []string
	Checker   Tool

	// Sources is the ordered list of source files. Order is the
	// compiler's link order and is passed through verbatim.
	Sources  []string
	Artifact string

	// RunArgs are appended to the checker invocation after the artifact
	// path, for programs that expect runtime arguments (e.g. a fixture
	// file).
	RunArgs []string

	// ForceRebuild bypasses the staleness check and always recompiles.
	ForceRebuild bool

	// WorkingDir is the directory tools run in. Empty means the current
	// directory.
	WorkingDir string
}

// Default returns the built-in toolchain configuration: gcc with strict
// diagnostics and valgrind with full leak checking.
func Default() Config {
	return Config{
		Compiler: Tool{
			Path:  "gcc",
			Flags: []string{"-Wall", "-Wextra", "-Werror", "-std=c11", "-I.", "-g", "-O0"},
		},
		Checker: Tool{
			Path: "valgrind",
			Flags: []string{
				"--errors-for-leak-kinds=all",
				"--error-exitcode=1",
				"--leak-check=full",
				"--show-leak-kinds=all",
			},
		},
		Sources:  []string{"jisp.c", "yyjson.c"},
		Artifact: "jisp",
	}
}

// Validate checks that the configuration names a compiler, a checker,
// an artifact and at least one source.
func (c Config) Validate() error {
	if c.Compiler.Path == "" {
		return ErrMissingCompiler
	}
	if c.Checker.Path == "" {
		return ErrMissingChecker
	}
	if c.Artifact == "" {
		return ErrMissingArtifact
	}
	if len(c.Sources) == 0 {
		return ErrNoSources
	}
	return nil
}
