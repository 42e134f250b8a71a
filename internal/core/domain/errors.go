package domain

import "go.trai.ch/zerr"

var (
	// ErrToolUnavailable is returned when the compiler or checker
	// executable could not be launched at all. It is a fatal
	// configuration error, distinct from a classified compile or check
	// failure.
	ErrToolUnavailable = zerr.New("tool unavailable")

	// ErrBuildFailed is returned by the application layer when the
	// pipeline ends in CompileFailed or CheckFailed.
	ErrBuildFailed = zerr.New("build verification failed")

	// ErrMissingCompiler is returned when the configuration names no
	// compiler executable.
	ErrMissingCompiler = zerr.New("missing compiler")

	// ErrMissingChecker is returned when the configuration names no
	// checker executable.
	ErrMissingChecker = zerr.New("missing checker")

	// ErrMissingArtifact is returned when the configuration names no
	// build artifact.
	ErrMissingArtifact = zerr.New("missing artifact")

	// ErrNoSources is returned when the configuration declares an empty
	// source list.
	ErrNoSources = zerr.New("no sources specified")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")
)
