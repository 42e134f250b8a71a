package domain

// ToolResult captures the observable result of one external process
// run: its exit status and both output streams, kept separate. It is
// produced once per invocation and never mutated.
type ToolResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Ok reports whether the tool exited with status zero.
func (r ToolResult) Ok() bool {
	return r.ExitCode == 0
}

// Status classifies one stage of the build-verify cycle.
type Status string

const (
	// StatusSkipped indicates the artifact was fresh and compilation was
	// not attempted.
	StatusSkipped Status = "Skipped"
	// StatusRebuilt indicates the compiler ran and exited zero.
	StatusRebuilt Status = "Rebuilt"
	// StatusCompileFailed indicates the compiler ran and exited non-zero.
	StatusCompileFailed Status = "CompileFailed"
	// StatusCheckPassed indicates the checker ran and exited zero.
	StatusCheckPassed Status = "CheckPassed"
	// StatusCheckFailed indicates the checker ran and exited non-zero.
	// A misbehaving program and a detected memory violation share this
	// classification; the checker reports both through one exit code.
	StatusCheckFailed Status = "CheckFailed"
)

// BuildOutcome is the classified end-to-end result of one pipeline run.
// Build records how the artifact was obtained; Verify records what the
// checker concluded, and is empty when the checker never ran.
type BuildOutcome struct {
	Build  Status
	Verify Status

	// Compile holds the compiler's captured result when it ran.
	Compile *ToolResult
	// Check holds the checker's captured result when it ran.
	Check *ToolResult
}

// Status returns the terminal classification of the run: CompileFailed,
// CheckFailed or CheckPassed.
func (o BuildOutcome) Status() Status {
	if o.Build == StatusCompileFailed {
		return StatusCompileFailed
	}
	return o.Verify
}

// Failed reports whether the run ended in a classified failure.
func (o BuildOutcome) Failed() bool {
	s := o.Status()
	return s == StatusCompileFailed || s == StatusCheckFailed
}

// FailingResult returns the captured streams of the stage that produced
// the terminal failure, or nil if the run did not fail.
func (o BuildOutcome) FailingResult() *ToolResult {
	switch o.Status() {
	case StatusCompileFailed:
		return o.Compile
	case StatusCheckFailed:
		return o.Check
	default:
		return nil
	}
}
