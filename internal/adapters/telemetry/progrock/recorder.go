// Package progrock provides the Progrock implementation of the
// telemetry adapter.
package progrock

import (
	"context"
	"io"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/grind/internal/core/ports"
)

// Recorder implements ports.Telemetry using the progrock library. Stage
// vertices accumulate on an in-memory tape that is rendered to the sink
// when the recorder is closed.
type Recorder struct {
	rec  *progrock.Recorder
	tape *progrock.Tape
	sink io.Writer
}

// New creates a new Recorder rendering to the given sink on Close.
func New(sink io.Writer) *Recorder {
	tape := progrock.NewTape()
	return &Recorder{
		rec:  progrock.NewRecorder(tape),
		tape: tape,
		sink: sink,
	}
}

// Record starts recording a new vertex for a pipeline stage.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	d := digest.FromString(name)
	v := r.rec.Vertex(d, name)
	return ctx, &Vertex{vertex: v}
}

// Close completes the recording session and renders the accumulated
// stage summary to the sink.
func (r *Recorder) Close() error {
	r.rec.Complete()
	if err := r.rec.Close(); err != nil {
		return err
	}
	return r.tape.Render(r.sink, progrock.DefaultUI())
}
