package progrock

import (
	"fmt"
	"io"
	"sync"

	"github.com/vito/progrock"
)

var _ progrock.Writer = (*ProgressWriter)(nil)

// ProgressWriter prints one line per completed vertex. Nothing is printed until an output is set.
type ProgressWriter struct {
	mu  sync.Mutex
	out io.Writer
}

// NewProgressWriter creates a silent ProgressWriter.
func NewProgressWriter() *ProgressWriter {
	return &ProgressWriter{}
}

// SetOutput starts printing to w. A nil w silences the writer again.
func (p *ProgressWriter) SetOutput(w io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.out = w
}

// WriteStatus implements progrock.Writer.
func (p *ProgressWriter) WriteStatus(update *progrock.StatusUpdate) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.out == nil {
		return nil
	}

	for _, v := range update.Vertexes {
		if v.Completed == nil {
			continue
		}
		switch {
		case v.Error != nil:
			_, _ = fmt.Fprintf(p.out, "FAIL   %s: %s\n", v.Name, *v.Error)
		case v.Cached:
			_, _ = fmt.Fprintf(p.out, "cached %s\n", v.Name)
		default:
			_, _ = fmt.Fprintf(p.out, "done   %s\n", v.Name)
		}
	}
	return nil
}

// Close implements progrock.Writer.
func (p *ProgressWriter) Close() error {
	return nil
}
