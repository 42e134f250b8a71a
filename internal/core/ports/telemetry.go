package ports

import (
	"context"
	"io"
)

// Telemetry is the entry point for recording build stage vertices.
//
//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Telemetry interface {
	// Record starts recording a new vertex for a pipeline stage.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one unit of recorded work.
type Vertex interface {
	// Stdout returns a writer capturing the stage's standard output.
	Stdout() io.Writer
	// Stderr returns a writer capturing the stage's error output.
	Stderr() io.Writer
	// Complete marks the vertex as finished, successfully or with an error.
	Complete(err error)
	// Cached marks the vertex as skipped because its output was fresh.
	Cached()
}
