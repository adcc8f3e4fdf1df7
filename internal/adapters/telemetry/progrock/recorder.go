// Package progrock records view rendering as Progrock vertices.
package progrock

import (
	"context"
	"io"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/views/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry on a progrock recorder.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a Recorder feeding a ProgressWriter. It stays silent until SetProgressOutput is called.
func New() *Recorder {
	return NewRecorder(NewProgressWriter())
}

// NewRecorder creates a Recorder writing to w.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Record starts a vertex. The digest is derived from the display name, so repeated renders
// of the same template update one vertex.
func (r *Recorder) Record(ctx context.Context, name string, opts ...ports.VertexOption) (context.Context, ports.Vertex) {
	cfg := ports.VertexConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Group != "" {
		name = cfg.Group + " / " + name
	}

	v := &Vertex{vertex: r.rec.Vertex(digest.FromString(name), name)}
	return ports.ContextWithVertex(ctx, v), v
}

// SetProgressOutput prints completed vertices to w when the recorder feeds a ProgressWriter.
func (r *Recorder) SetProgressOutput(w io.Writer) {
	if p, ok := r.w.(*ProgressWriter); ok {
		p.SetOutput(w)
	}
}

// Close closes the underlying writer when it supports it.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
